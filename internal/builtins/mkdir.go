// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// mkdirCommand implements the mkdir utility over the virtual filesystem.
type mkdirCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newMkdirCommand())
}

// newMkdirCommand creates a new mkdir command.
func newMkdirCommand() *mkdirCommand {
	return &mkdirCommand{
		name: "mkdir",
		flags: []FlagInfo{
			{Name: "p", Description: "create parent directories as needed"},
		},
	}
}

// Name returns the command name.
func (c *mkdirCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *mkdirCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the mkdir command.
func (c *mkdirCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	parents := fs.Bool("p", false, "create parents")
	_ = fs.Parse(args[1:]) //nolint:errcheck // Intentionally ignoring unsupported flags

	if len(fs.Args()) == 0 {
		return wrapError(c.name, fmt.Errorf("missing operand"))
	}

	for _, dir := range fs.Args() {
		path := hc.Resolve(dir)
		var err error
		if *parents {
			err = hc.FS.CreateDirAll(path)
		} else {
			err = hc.FS.CreateDir(path)
		}
		if err != nil {
			return wrapError(c.name, err)
		}
	}
	return nil
}
