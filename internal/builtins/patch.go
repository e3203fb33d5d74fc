// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"sandshell/internal/diff"
	"sandshell/internal/vfs"
)

// patchCommand implements the patch utility on top of the patch parser and
// hunk applier. Patch text comes from -i or stdin; targets come from the
// explicit operand or from the patch headers.
type patchCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newPatchCommand())
}

// newPatchCommand creates a new patch command.
func newPatchCommand() *patchCommand {
	return &patchCommand{
		name: "patch",
		flags: []FlagInfo{
			{Name: "i", Description: "read the patch from this file instead of stdin", TakesValue: true},
			{Name: "p", Description: "strip N leading path components from header paths", TakesValue: true},
			{Name: "R", Description: "apply the patch in reverse"},
			{Name: "o", Description: "write the result to this file instead of the target", TakesValue: true},
		},
	}
}

// Name returns the command name.
func (c *patchCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *patchCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the patch command.
// Usage: patch [-p N] [-R] [-i PATCHFILE] [-o OUTFILE] [TARGET]
func (c *patchCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	patchFile := fs.String("i", "", "patch file")
	strip := fs.Int("p", 0, "strip count")
	reverse := fs.Bool("R", false, "reverse")
	outFile := fs.String("o", "", "output file")
	_ = fs.Parse(splitAttachedValues(args[1:], "pio")) //nolint:errcheck // Intentionally ignoring unsupported flags

	rest := fs.Args()
	if len(rest) > 1 {
		return wrapError(c.name, fmt.Errorf("usage: patch [-pN] [-R] [-i patchfile] [-o outfile] [target]"))
	}

	text, err := c.readPatchText(hc, *patchFile)
	if err != nil {
		return wrapError(c.name, err)
	}

	patches, err := diff.ParsePatch(text)
	if err != nil {
		return wrapError(c.name, err)
	}
	if len(patches) == 0 {
		return wrapError(c.name, fmt.Errorf("no patch data found"))
	}

	// An explicit target or -o only makes sense for a single-file patch.
	if len(patches) > 1 && (len(rest) == 1 || *outFile != "") {
		return wrapError(c.name, fmt.Errorf("cannot use an explicit target with a multi-file patch"))
	}

	for _, fp := range patches {
		target := fp.Target(*strip)
		if len(rest) == 1 {
			target = rest[0]
		}
		if target == "" {
			return wrapError(c.name, fmt.Errorf("cannot determine patch target from headers"))
		}

		if err := c.applyOne(hc, fp, target, *outFile, *reverse); err != nil {
			return wrapError(c.name, fmt.Errorf("%s: %w", target, err))
		}
		fmt.Fprintf(hc.Stdout, "patching file %s\n", target)
	}

	return nil
}

// readPatchText loads the patch body from the named file or from stdin.
func (c *patchCommand) readPatchText(hc *HandlerContext, patchFile string) (string, error) {
	if patchFile == "" {
		return readAllString(hc.Stdin)
	}
	content, err := hc.FS.ReadFile(hc.Resolve(patchFile))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// applyOne patches a single target. A missing target is treated as empty so
// new-file patches (old side /dev/null) create it.
func (c *patchCommand) applyOne(hc *HandlerContext, fp diff.FilePatch, target, outFile string, reverse bool) error {
	path := hc.Resolve(target)

	var lines []string
	content, err := hc.FS.ReadFile(path)
	switch {
	case err == nil:
		lines = diff.SplitLines(string(content))
	case errors.Is(err, vfs.ErrNotFound):
		lines = nil
	default:
		return err
	}

	patched, err := diff.Apply(lines, fp.Hunks, reverse)
	if err != nil {
		return err
	}

	dest := path
	if outFile != "" {
		dest = hc.Resolve(outFile)
	}
	return hc.FS.WriteFile(dest, []byte(diff.JoinLines(patched)))
}
