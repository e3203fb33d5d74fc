// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates sandshell configuration.
//
// Configuration lives in a CUE file under the platform config directory
// (e.g. ~/.config/sandshell/config.cue on Linux). Files are validated
// against the embedded #Config schema before being merged into Viper and
// unmarshaled; constraints CUE cannot express are checked by Validate().
// A missing config file is not an error; built-in defaults apply.
package config
