// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	for _, valid := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if err := valid.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", valid, err)
		}
	}

	err := ColorScheme("sepia").Validate()
	if !errors.Is(err, ErrInvalidColorScheme) {
		t.Errorf("Validate(sepia) = %v, want ErrInvalidColorScheme", err)
	}
}

func TestSyncMode_Validate(t *testing.T) {
	t.Parallel()

	for _, valid := range []SyncMode{SyncModeSync, SyncModeFlush} {
		if err := valid.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", valid, err)
		}
	}

	err := SyncMode("eventually").Validate()
	if !errors.Is(err, ErrInvalidSyncMode) {
		t.Errorf("Validate(eventually) = %v, want ErrInvalidSyncMode", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config Validate() = %v", err)
	}

	cfg.HistorySize = -1
	cfg.UI.ColorScheme = "sepia"
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	var invalid *InvalidConfigError
	if !errors.As(err, &invalid) || len(invalid.FieldErrors) != 2 {
		t.Errorf("FieldErrors = %v", err)
	}
}
