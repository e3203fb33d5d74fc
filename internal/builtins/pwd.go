// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"fmt"
)

// pwdCommand prints the working directory.
type pwdCommand struct {
	name string
}

func init() {
	RegisterDefault(&pwdCommand{name: "pwd"})
}

// Name returns the command name.
func (c *pwdCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *pwdCommand) SupportedFlags() []FlagInfo {
	return nil
}

// Run executes the pwd command.
func (c *pwdCommand) Run(ctx context.Context, _ []string) error {
	hc := GetHandlerContext(ctx)
	fmt.Fprintln(hc.Stdout, hc.Dir)
	return nil
}
