// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"flag"
	"fmt"
	"io"

	"sandshell/internal/diff"
)

// diffCommand implements the diff utility on top of the line diff engine.
// Output defaults to the normal (ed-style) format.
type diffCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newDiffCommand())
}

// newDiffCommand creates a new diff command.
func newDiffCommand() *diffCommand {
	return &diffCommand{
		name: "diff",
		flags: []FlagInfo{
			{Name: "u", Description: "unified output with 3 lines of context"},
			{Name: "U", Description: "unified output with N lines of context", TakesValue: true},
			{Name: "c", Description: "context output format"},
			{Name: "q", Description: "report only whether the files differ"},
			{Name: "i", Description: "ignore case differences"},
			{Name: "w", Description: "ignore all whitespace"},
			{Name: "b", Description: "ignore changes in the amount of whitespace"},
			{Name: "B", Description: "ignore changes whose lines are all blank"},
		},
	}
}

// Name returns the command name.
func (c *diffCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *diffCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the diff command.
// Usage: diff [-u | -U n | -c | -q] [-i] [-w] [-b] [-B] FILE1 FILE2
func (c *diffCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	unified := fs.Bool("u", false, "unified format")
	contextWidth := fs.Int("U", -1, "unified format with context width")
	contextFmt := fs.Bool("c", false, "context format")
	brief := fs.Bool("q", false, "brief")
	ignoreCase := fs.Bool("i", false, "ignore case")
	ignoreAllSpace := fs.Bool("w", false, "ignore all whitespace")
	ignoreSpaceChange := fs.Bool("b", false, "ignore whitespace amount")
	ignoreBlank := fs.Bool("B", false, "ignore blank lines")
	_ = fs.Parse(splitAttachedValues(args[1:], "U")) //nolint:errcheck // Intentionally ignoring unsupported flags

	rest := fs.Args()
	if len(rest) != 2 {
		return wrapError(c.name, fmt.Errorf("usage: diff [options] <file1> <file2>"))
	}

	oldName, newName := rest[0], rest[1]
	a, err := c.readLines(hc, oldName)
	if err != nil {
		return wrapError(c.name, err)
	}
	b, err := c.readLines(hc, newName)
	if err != nil {
		return wrapError(c.name, err)
	}

	opts := diff.Options{
		IgnoreCase:        *ignoreCase,
		IgnoreAllSpace:    *ignoreAllSpace,
		IgnoreSpaceChange: *ignoreSpaceChange,
		IgnoreBlankLines:  *ignoreBlank,
	}

	width := diff.DefaultContext
	if *contextWidth >= 0 {
		width = *contextWidth
		*unified = true
	}

	var out string
	switch {
	case *brief:
		out = diff.FormatBrief(oldName, newName, a, b, opts)
	case *unified:
		out = diff.FormatUnified(oldName, newName, a, b, opts, width)
	case *contextFmt:
		out = diff.FormatContext(oldName, newName, a, b, opts, width)
	default:
		out = diff.FormatNormal(a, b, opts)
	}

	fmt.Fprint(hc.Stdout, out)
	return nil
}

// readLines loads the operand from the virtual filesystem, or from stdin
// when the operand is "-".
func (c *diffCommand) readLines(hc *HandlerContext, name string) ([]string, error) {
	if name == "-" {
		text, err := readAllString(hc.Stdin)
		if err != nil {
			return nil, err
		}
		return diff.SplitLines(text), nil
	}
	content, err := hc.FS.ReadFile(hc.Resolve(name))
	if err != nil {
		return nil, err
	}
	return diff.SplitLines(string(content)), nil
}
