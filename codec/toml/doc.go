// Package toml provides the TOML codec for the codec registry.
//
// It uses github.com/BurntSushi/toml. TOML integers decode to int64 and
// table arrays to typed slices; the validation engine normalizes both.
package toml
