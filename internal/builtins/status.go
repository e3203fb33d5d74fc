// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"errors"
)

// statusCommand implements true and false: fixed exit status, no output.
// Connector tests (&&, ||) lean on these.
type statusCommand struct {
	name string
	fail bool
}

func init() {
	RegisterDefault(&statusCommand{name: "true"})
	RegisterDefault(&statusCommand{name: "false", fail: true})
}

// Name returns the command name.
func (c *statusCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *statusCommand) SupportedFlags() []FlagInfo {
	return nil
}

// Run executes the command.
func (c *statusCommand) Run(_ context.Context, _ []string) error {
	if c.fail {
		return errors.New("false")
	}
	return nil
}
