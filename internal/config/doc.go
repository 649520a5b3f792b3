// Package config loads scribe's settings.
//
// Settings come from three sources, later ones overriding earlier:
//
//  1. Built-in defaults (Default)
//  2. A TOML file, scribe.toml unless another path is given
//  3. SCRIBE_* environment variables
//
// Command line flags are applied by the caller on top of the result.
//
// File format:
//
//	[buffer]
//	line_ending = "lf"     # lf | crlf | cr; empty detects from content
//	offset_unit = "rune"   # rune | grapheme
//
//	[log]
//	level = "info"         # debug | info | warn | error
//
// A missing file is not an error. Unknown keys and unsupported values are.
package config
