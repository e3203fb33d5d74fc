// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
)

// tailCommand implements the tail utility.
type tailCommand struct {
	name  string
	flags []FlagInfo
}

func init() {
	RegisterDefault(newTailCommand())
}

// newTailCommand creates a new tail command.
func newTailCommand() *tailCommand {
	return &tailCommand{
		name: "tail",
		flags: []FlagInfo{
			{Name: "n", Description: "number of lines to output (or +N to start from line N)", TakesValue: true},
		},
	}
}

// Name returns the command name.
func (c *tailCommand) Name() string {
	return c.name
}

// SupportedFlags returns the flags supported by this command.
func (c *tailCommand) SupportedFlags() []FlagInfo {
	return c.flags
}

// Run executes the tail command.
func (c *tailCommand) Run(ctx context.Context, args []string) error {
	hc := GetHandlerContext(ctx)

	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	numLinesStr := fs.String("n", "10", "number of lines")
	_ = fs.Parse(args[1:]) //nolint:errcheck // Intentionally ignoring unsupported flags

	// Handle the +N syntax for "start from line N"
	numLines, fromStart := parseLineSpec(*numLinesStr)

	return ProcessFilesOrStdin(hc, fs.Args(), c.name,
		func(r io.Reader, filename string, index, total int) error {
			if total > 1 {
				if index > 0 {
					fmt.Fprintln(hc.Stdout)
				}
				fmt.Fprintf(hc.Stdout, "==> %s <==\n", filename)
			}
			return c.processReader(hc.Stdout, r, numLines, fromStart)
		})
}

// parseLineSpec parses a line specification like "10" or "+5".
// Returns the number of lines and whether to start from that line number.
func parseLineSpec(s string) (int, bool) {
	if strings.HasPrefix(s, "+") {
		n := 0
		fmt.Sscanf(s[1:], "%d", &n)
		return n, true
	}
	n := 10
	fmt.Sscanf(s, "%d", &n)
	return n, false
}

// processReader outputs the last n lines from a reader using a ring buffer.
// If fromStart is true, it outputs starting from line n instead.
func (c *tailCommand) processReader(out io.Writer, in io.Reader, n int, fromStart bool) error {
	scanner := bufio.NewScanner(in)

	if fromStart {
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			if lineNum >= n {
				fmt.Fprintln(out, scanner.Text())
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		return nil
	}

	if n <= 0 {
		return nil
	}

	lines := make([]string, n)
	idx := 0
	count := 0

	for scanner.Scan() {
		lines[idx] = scanner.Text()
		idx = (idx + 1) % n
		count++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if count < n {
		for i := range count {
			fmt.Fprintln(out, lines[i])
		}
	} else {
		for i := range n {
			fmt.Fprintln(out, lines[(idx+i)%n])
		}
	}

	return nil
}
