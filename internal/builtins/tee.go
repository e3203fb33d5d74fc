// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"flag"
	"io"
)

// teeCommand implements the tee utility.
// It reads from stdin and writes to both stdout and each named file.
type teeCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newTeeCommand())
}

// newTeeCommand creates a new tee command.
func newTeeCommand() *teeCommand {
	return &teeCommand{
		name: "tee",
		flags: []FlagInfo{
			{Name: "a", Description: "append to the given files, do not overwrite"},
		},
	}
}

// Name returns the command name.
func (c *teeCommand) Name() string { return c.name }

// SupportedFlags returns the flags supported by this command.
func (c *teeCommand) SupportedFlags() []FlagInfo { return c.flags }

// Run executes the tee command.
// Usage: tee [-a] [FILE...]
// Reads stdin and writes to stdout and each FILE. With -a, appends instead of overwriting.
func (c *teeCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	appendMode := fs.Bool("a", false, "append")
	_ = fs.Parse(args[1:]) //nolint:errcheck // Intentionally ignoring unsupported flags

	data, err := io.ReadAll(hc.Stdin)
	if err != nil {
		return wrapError(c.name, err)
	}

	if _, err := hc.Stdout.Write(data); err != nil {
		return wrapError(c.name, err)
	}

	for _, name := range fs.Args() {
		path := hc.Resolve(name)
		if *appendMode {
			err = hc.FS.AppendFile(path, data)
		} else {
			err = hc.FS.WriteFile(path, data)
		}
		if err != nil {
			return wrapError(c.name, err)
		}
	}

	return nil
}
