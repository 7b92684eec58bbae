// Package file provides a file-backed source for configuration data.
//
// A Source reads its file once at construction time and caches the
// contents; an absent file yields an empty source rather than an error,
// since a configuration may legitimately start from schema defaults.
// Write persists encoded configuration back to the same path.
package file
