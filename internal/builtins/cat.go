// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"io"
)

// catCommand implements the cat utility over the virtual filesystem.
type catCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newCatCommand())
}

// newCatCommand creates a new cat command.
func newCatCommand() *catCommand {
	return &catCommand{
		name: "cat",
		flags: []FlagInfo{
			{Name: "u", Description: "ignored (for compatibility)"},
		},
	}
}

// Name returns the command name.
func (c *catCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *catCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the cat command.
func (c *catCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	files := args[1:]
	if len(files) > 0 && files[0] == "-u" {
		files = files[1:]
	}

	return ProcessFilesOrStdin(hc, files, c.name,
		func(r io.Reader, _ string, _, _ int) error {
			if _, err := io.Copy(hc.Stdout, r); err != nil {
				return wrapError(c.name, err)
			}
			return nil
		})
}
