// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"fmt"
	"strings"
)

// echoCommand implements the echo utility.
type echoCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newEchoCommand())
}

// newEchoCommand creates a new echo command.
func newEchoCommand() *echoCommand {
	return &echoCommand{
		name: "echo",
		flags: []FlagInfo{
			{Name: "n", Description: "do not output the trailing newline"},
		},
	}
}

// Name returns the command name.
func (c *echoCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *echoCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the echo command.
func (c *echoCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	words := args[1:]
	noNewline := false
	if len(words) > 0 && words[0] == "-n" {
		noNewline = true
		words = words[1:]
	}

	if _, err := fmt.Fprint(hc.Stdout, strings.Join(words, " ")); err != nil {
		return wrapError(c.name, err)
	}
	if !noNewline {
		fmt.Fprintln(hc.Stdout)
	}
	return nil
}
