// Package json provides the JSON codec for the codec registry.
//
// It uses github.com/goccy/go-json. JSON numbers decode to float64;
// the validation engine coerces integral floats back to int where the
// schema declares an int.
package json
