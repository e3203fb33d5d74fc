// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"flag"
	"fmt"
	"io"

	"sandshell/internal/vfs"
)

// lsCommand implements the ls utility over the virtual filesystem. Entries
// print in the directory's insertion order, one per line.
type lsCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newLsCommand())
}

// newLsCommand creates a new ls command.
func newLsCommand() *lsCommand {
	return &lsCommand{
		name: "ls",
		flags: []FlagInfo{
			{Name: "l", Description: "long listing with size and modification time"},
		},
	}
}

// Name returns the command name.
func (c *lsCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *lsCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the ls command.
func (c *lsCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	long := fs.Bool("l", false, "long listing")
	_ = fs.Parse(args[1:]) //nolint:errcheck // Intentionally ignoring unsupported flags

	targets := fs.Args()
	if len(targets) == 0 {
		targets = []string{"."}
	}

	showHeaders := len(targets) > 1
	for i, target := range targets {
		path := hc.Resolve(target)
		n := hc.FS.Resolve(path)
		if n == nil {
			return wrapError(c.name, fmt.Errorf("%s: %w", target, vfs.ErrNotFound))
		}

		if showHeaders {
			if i > 0 {
				fmt.Fprintln(hc.Stdout)
			}
			fmt.Fprintf(hc.Stdout, "%s:\n", target)
		}

		if file, ok := n.(*vfs.File); ok {
			c.printEntry(hc.Stdout, file, *long)
			continue
		}
		nodes, err := hc.FS.List(path)
		if err != nil {
			return wrapError(c.name, err)
		}
		for _, child := range nodes {
			c.printEntry(hc.Stdout, child, *long)
		}
	}
	return nil
}

func (c *lsCommand) printEntry(out io.Writer, n vfs.Node, long bool) {
	if !long {
		fmt.Fprintln(out, n.Name())
		return
	}
	kind, size := "-", 0
	if f, ok := n.(*vfs.File); ok {
		size = f.Size()
	} else {
		kind = "d"
	}
	fmt.Fprintf(out, "%s %8d %s %s\n", kind, size, n.ModTime().Format("Jan _2 15:04"), n.Name())
}
