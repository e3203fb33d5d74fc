// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"fmt"
)

// mvCommand implements the mv utility over the virtual filesystem.
type mvCommand struct {
	name string
}

func init() {
	RegisterDefault(&mvCommand{name: "mv"})
}

// Name returns the command name.
func (c *mvCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *mvCommand) SupportedFlags() []FlagInfo {
	return nil
}

// Run executes the mv command.
func (c *mvCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	if len(args) != 3 {
		return wrapError(c.name, fmt.Errorf("usage: mv <source> <dest>"))
	}
	if err := hc.FS.Move(hc.Resolve(args[1]), hc.Resolve(args[2])); err != nil {
		return wrapError(c.name, err)
	}
	return nil
}
