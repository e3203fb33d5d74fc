// SPDX-License-Identifier: MPL-2.0

package builtins

import "testing"

func TestEchoCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"words", []string{"echo", "hello", "world"}, "hello world\n"},
		{"empty", []string{"echo"}, "\n"},
		{"no newline", []string{"echo", "-n", "raw"}, "raw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, env := newTestEnv(t, nil)
			if err := newEchoCommand().Run(ctx, tt.args); err != nil {
				t.Fatalf("Run() returned error: %v", err)
			}
			if got := env.stdout.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
