// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path"

	"sandshell/internal/vfs"
)

// findCommand implements the find utility over the virtual filesystem.
// It walks the tree depth-first in insertion order.
type findCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newFindCommand())
}

// newFindCommand creates a new find command.
func newFindCommand() *findCommand {
	return &findCommand{
		name: "find",
		flags: []FlagInfo{
			{Name: "name", Description: "match file name pattern", TakesValue: true},
			{Name: "type", Description: "match file type (f, d)", TakesValue: true},
		},
	}
}

// Name returns the command name.
func (c *findCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *findCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the find command.
// Usage: find [PATH...] [-name PATTERN] [-type f|d]
func (c *findCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	// find takes roots before the flags, so split them off first.
	var roots []string
	rest := args[1:]
	for len(rest) > 0 && (len(rest[0]) == 0 || rest[0][0] != '-') {
		roots = append(roots, rest[0])
		rest = rest[1:]
	}
	if len(roots) == 0 {
		roots = []string{"."}
	}

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	namePattern := fs.String("name", "", "name pattern")
	typeFilter := fs.String("type", "", "file type")
	_ = fs.Parse(rest) //nolint:errcheck // Intentionally ignoring unsupported flags

	if *typeFilter != "" && *typeFilter != "f" && *typeFilter != "d" {
		return wrapError(c.name, fmt.Errorf("invalid type %q", *typeFilter))
	}

	for _, root := range roots {
		rootPath := hc.Resolve(root)
		n := hc.FS.Resolve(rootPath)
		if n == nil {
			return wrapError(c.name, fmt.Errorf("%s: %w", root, vfs.ErrNotFound))
		}
		if err := c.walk(hc.Stdout, n, root, *namePattern, *typeFilter); err != nil {
			return wrapError(c.name, err)
		}
	}
	return nil
}

// walk visits node and its children, printing the display path of each match.
// Display paths stay relative to the root argument the way the user wrote it.
func (c *findCommand) walk(out io.Writer, n vfs.Node, display, namePattern, typeFilter string) error {
	if c.matches(n, namePattern, typeFilter) {
		fmt.Fprintln(out, display)
	}

	dir, ok := n.(*vfs.Dir)
	if !ok {
		return nil
	}
	for _, child := range dir.Children() {
		childDisplay := display + "/" + child.Name()
		if display == "/" {
			childDisplay = "/" + child.Name()
		}
		if err := c.walk(out, child, childDisplay, namePattern, typeFilter); err != nil {
			return err
		}
	}
	return nil
}

func (c *findCommand) matches(n vfs.Node, namePattern, typeFilter string) bool {
	_, isFile := n.(*vfs.File)
	if typeFilter == "f" && !isFile {
		return false
	}
	if typeFilter == "d" && isFile {
		return false
	}
	if namePattern != "" {
		name := n.Name()
		if name == "" {
			name = "/"
		}
		ok, err := path.Match(namePattern, name)
		if err != nil || !ok {
			return false
		}
	}
	return true
}
