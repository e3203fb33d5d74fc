// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"sandshell/internal/vfs"
)

// rmCommand implements the rm utility over the virtual filesystem.
type rmCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newRmCommand())
}

// newRmCommand creates a new rm command.
func newRmCommand() *rmCommand {
	return &rmCommand{
		name: "rm",
		flags: []FlagInfo{
			{Name: "r", Description: "remove directories and their contents recursively"},
			{Name: "f", Description: "ignore missing operands, never prompt"},
		},
	}
}

// Name returns the command name.
func (c *rmCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *rmCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the rm command.
func (c *rmCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	recursive := fs.Bool("r", false, "recursive")
	force := fs.Bool("f", false, "force")
	_ = fs.Parse(args[1:]) //nolint:errcheck // Intentionally ignoring unsupported flags

	if len(fs.Args()) == 0 {
		return wrapError(c.name, fmt.Errorf("missing operand"))
	}

	for _, arg := range fs.Args() {
		err := hc.FS.Remove(hc.Resolve(arg), *recursive)
		if err != nil {
			if *force && errors.Is(err, vfs.ErrNotFound) {
				continue
			}
			return wrapError(c.name, err)
		}
	}
	return nil
}
