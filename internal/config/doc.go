// Package config loads, normalizes, and validates scoutbase configuration.
//
// Settings come from a TOML file (default ~/.config/scoutbase/config.toml,
// or ./scoutbase.toml in the working directory), with repository defaults
// filling everything a file omits. Paths are tilde-expanded and made
// absolute during normalization, so downstream code never sees a relative
// or unexpanded path.
package config
