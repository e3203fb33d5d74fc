// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"flag"
	"fmt"
	"io"

	"sandshell/internal/vfs"
)

// cpCommand implements the cp utility over the virtual filesystem.
type cpCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newCpCommand())
}

// newCpCommand creates a new cp command.
func newCpCommand() *cpCommand {
	return &cpCommand{
		name: "cp",
		flags: []FlagInfo{
			{Name: "r", Description: "copy directories recursively"},
		},
	}
}

// Name returns the command name.
func (c *cpCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *cpCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the cp command.
func (c *cpCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	recursive := fs.Bool("r", false, "recursive")
	_ = fs.Parse(args[1:]) //nolint:errcheck // Intentionally ignoring unsupported flags

	rest := fs.Args()
	if len(rest) != 2 {
		return wrapError(c.name, fmt.Errorf("usage: cp [-r] <source> <dest>"))
	}

	src := hc.Resolve(rest[0])
	if _, isDir := hc.FS.Resolve(src).(*vfs.Dir); isDir && !*recursive {
		return wrapError(c.name, fmt.Errorf("%s is a directory (use -r)", rest[0]))
	}
	if err := hc.FS.Copy(src, hc.Resolve(rest[1])); err != nil {
		return wrapError(c.name, err)
	}
	return nil
}
