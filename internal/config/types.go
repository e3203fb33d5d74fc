// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// SyncModeSync writes every remote-backed mutation through immediately.
	SyncModeSync SyncMode = "sync"
	// SyncModeFlush batches remote-backed mutations until an explicit flush.
	SyncModeFlush SyncMode = "flush"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidSyncMode is returned when a SyncMode value is not recognized.
	ErrInvalidSyncMode = errors.New("invalid sync mode")
	// ErrInvalidSnapshotPath is returned when a snapshot path is whitespace-only.
	ErrInvalidSnapshotPath = errors.New("invalid snapshot path")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// SyncMode specifies how a remote-backed filesystem propagates writes.
	SyncMode string

	// InvalidSyncModeError is returned when a SyncMode value is not
	// recognized. It wraps ErrInvalidSyncMode for errors.Is() compatibility.
	InvalidSyncModeError struct {
		Value SyncMode
	}

	// InvalidConfigError is returned when a Config has invalid fields. It
	// wraps ErrInvalidConfig and collects field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// UIConfig holds presentation settings for the REPL.
	UIConfig struct {
		// ColorScheme selects auto, dark, or light rendering.
		ColorScheme ColorScheme `mapstructure:"color_scheme" toml:"color_scheme"`
		// Verbose enables debug-level logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
		// Prompt is the REPL prompt text.
		Prompt string `mapstructure:"prompt" toml:"prompt"`
	}

	// SnapshotConfig controls session persistence of the virtual filesystem.
	SnapshotConfig struct {
		// AutoLoad restores the last saved snapshot at session start.
		AutoLoad bool `mapstructure:"auto_load" toml:"auto_load"`
		// Path overrides the default snapshot file location. Empty means
		// <config dir>/snapshot.json.
		Path string `mapstructure:"path" toml:"path"`
	}

	// RemoteConfig configures the optional remote-backed filesystem mirror.
	RemoteConfig struct {
		// Mode is sync (write-through) or flush (batched).
		Mode SyncMode `mapstructure:"mode" toml:"mode"`
	}

	// SSHConfig configures the wish-based REPL server.
	SSHConfig struct {
		// Addr is the listen address for sandshell serve.
		Addr string `mapstructure:"addr" toml:"addr"`
		// HostKeyPath is where the server host key lives.
		HostKeyPath string `mapstructure:"host_key_path" toml:"host_key_path"`
	}

	// Config is the root sandshell configuration.
	Config struct {
		// HistorySize bounds the REPL history ring.
		HistorySize int            `mapstructure:"history_size" toml:"history_size"`
		UI          UIConfig       `mapstructure:"ui" toml:"ui"`
		Snapshot    SnapshotConfig `mapstructure:"snapshot" toml:"snapshot"`
		Remote      RemoteConfig   `mapstructure:"remote" toml:"remote"`
		SSH         SSHConfig      `mapstructure:"ssh" toml:"ssh"`
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("%v: %q (valid: auto, dark, light)", ErrInvalidColorScheme, e.Value)
}

// Unwrap supports errors.Is matching on the sentinel.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// Error implements the error interface.
func (e *InvalidSyncModeError) Error() string {
	return fmt.Sprintf("%v: %q (valid: sync, flush)", ErrInvalidSyncMode, e.Value)
}

// Unwrap supports errors.Is matching on the sentinel.
func (e *InvalidSyncModeError) Unwrap() error { return ErrInvalidSyncMode }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%v: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Unwrap supports errors.Is matching on the sentinel.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks that the color scheme is a known value.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	}
	return &InvalidColorSchemeError{Value: c}
}

// Validate checks that the sync mode is a known value.
func (m SyncMode) Validate() error {
	switch m {
	case SyncModeSync, SyncModeFlush:
		return nil
	}
	return &InvalidSyncModeError{Value: m}
}

// Validate checks constraints the CUE schema cannot express and aggregates
// field-level failures.
func (c *Config) Validate() error {
	var fieldErrs []error

	if err := c.UI.ColorScheme.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if err := c.Remote.Mode.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if c.HistorySize < 0 {
		fieldErrs = append(fieldErrs, fmt.Errorf("history_size must not be negative, got %d", c.HistorySize))
	}
	if c.Snapshot.Path != "" && strings.TrimSpace(c.Snapshot.Path) == "" {
		fieldErrs = append(fieldErrs, ErrInvalidSnapshotPath)
	}

	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}

// DefaultConfig returns the built-in defaults used when no config file is
// present.
func DefaultConfig() *Config {
	return &Config{
		HistorySize: 500,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			Prompt:      "sandshell> ",
		},
		Snapshot: SnapshotConfig{
			AutoLoad: false,
			Path:     "",
		},
		Remote: RemoteConfig{
			Mode: SyncModeSync,
		},
		SSH: SSHConfig{
			Addr:        "localhost:23234",
			HostKeyPath: "",
		},
	}
}
