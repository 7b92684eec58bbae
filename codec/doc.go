// Package codec defines the extension-to-codec registry used to decode
// and encode configuration files.
//
// A Codec translates between raw file content and the generic
// map[string]any shape the validation engine consumes. Format support
// is explicit: each extension is registered against a codec, and
// looking up an unregistered extension simply fails, so adding a format
// never touches this package.
//
//	reg := codec.NewRegistry()
//	reg.MustRegister("yaml", yaml.New())
//	reg.MustRegister("json", json.New())
//
// The yaml, json, and toml subpackages provide codecs for the three
// formats supported out of the box.
package codec
