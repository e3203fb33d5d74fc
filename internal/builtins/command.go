// SPDX-License-Identifier: MPL-2.0

package builtins

import "context"

type (
	// Command defines the interface for builtin utility implementations.
	// Each utility (cat, ls, grep, diff, ...) implements this interface.
	Command interface {
		// Name returns the command name (e.g. "cat", "ls", "diff").
		Name() string

		// Run executes the command with the given context and arguments.
		// The context carries the HandlerContext with stdin/stdout/stderr
		// and the virtual filesystem. args[0] is the command name (for
		// error messages), args[1:] are the arguments. Returns nil on
		// success, or an error prefixed with "[builtin] <cmd>:".
		Run(ctx context.Context, args []string) error

		// SupportedFlags returns the flags this implementation supports.
		// Unsupported flags are silently ignored during execution. This is
		// used for documentation and introspection.
		SupportedFlags() []FlagInfo
	}

	// FlagInfo describes a supported flag for a builtin command.
	FlagInfo struct {
		// Name is the flag name without dashes (e.g. "r" for -r).
		Name string
		// Description explains what the flag does.
		Description string
		// TakesValue indicates if the flag requires a value (e.g. -n 10).
		TakesValue bool
	}
)
