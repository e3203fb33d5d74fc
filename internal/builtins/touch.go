// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"fmt"

	"sandshell/internal/vfs"
)

// touchCommand implements the touch utility over the virtual filesystem.
// Touching an existing file rewrites its content in place, refreshing the
// modification time; a missing file is created empty.
type touchCommand struct {
	name string
}

func init() {
	RegisterDefault(&touchCommand{name: "touch"})
}

// Name returns the command name.
func (c *touchCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *touchCommand) SupportedFlags() []FlagInfo {
	return nil
}

// Run executes the touch command.
func (c *touchCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) < 2 {
		return wrapError(c.name, fmt.Errorf("missing operand"))
	}

	for _, arg := range args[1:] {
		path := hc.Resolve(arg)
		if f, ok := hc.FS.Resolve(path).(*vfs.File); ok {
			if err := hc.FS.WriteFile(path, f.Content()); err != nil {
				return wrapError(c.name, err)
			}
			continue
		}
		if err := hc.FS.CreateFile(path, nil); err != nil {
			return wrapError(c.name, err)
		}
	}
	return nil
}
