// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"sandshell/internal/builtins"
)

// commandSummaries gives each builtin a one-line description for the docs
// listing. Commands without an entry still appear, just undescribed.
var commandSummaries = map[string]string{
	"basename": "strip directory prefix (and optional suffix) from a path",
	"cat":      "concatenate files to output",
	"cp":       "copy files and directories",
	"diff":     "compare two files line by line",
	"dirname":  "print the directory part of a path",
	"echo":     "print arguments",
	"false":    "do nothing, unsuccessfully",
	"find":     "walk directory trees matching names and types",
	"grep":     "print lines matching a pattern",
	"head":     "print the first lines of files",
	"ls":       "list directory contents",
	"mkdir":    "create directories",
	"mv":       "move or rename files and directories",
	"patch":    "apply a diff to files",
	"pwd":      "print the working directory",
	"rm":       "remove files and directories",
	"sort":     "sort lines",
	"tail":     "print the last lines of files",
	"tee":      "copy input to output and files",
	"touch":    "create empty files or update timestamps",
	"true":     "do nothing, successfully",
	"uniq":     "filter adjacent duplicate lines",
	"wc":       "count lines, words, and bytes",
}

var docsCmd = &cobra.Command{
	Use:   "docs [command]",
	Short: "Show documentation for the builtin commands",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var md string
		if len(args) == 1 {
			var err error
			md, err = commandDoc(args[0])
			if err != nil {
				return err
			}
		} else {
			md = catalogDoc()
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return err
		}
		rendered, err := renderer.Render(md)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// catalogDoc builds the markdown overview of every registered builtin.
func catalogDoc() string {
	var sb strings.Builder
	sb.WriteString("# Builtin commands\n\n")
	for _, name := range builtins.DefaultRegistry.Names() {
		sb.WriteString(fmt.Sprintf("- **%s**: %s\n", name, commandSummaries[name]))
	}
	sb.WriteString("\nRun `sandshell docs <command>` for flags.\n")
	return sb.String()
}

// commandDoc builds the markdown page for a single builtin.
func commandDoc(name string) (string, error) {
	c, ok := builtins.DefaultRegistry.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown command: %s", name)
	}

	var sb strings.Builder
	sb.WriteString("# " + c.Name() + "\n\n")
	if summary := commandSummaries[name]; summary != "" {
		sb.WriteString(summary + "\n\n")
	}

	flags := c.SupportedFlags()
	if len(flags) == 0 {
		sb.WriteString("No flags.\n")
		return sb.String(), nil
	}
	sb.WriteString("## Flags\n\n")
	for _, f := range flags {
		arg := ""
		if f.TakesValue {
			arg = " <value>"
		}
		sb.WriteString(fmt.Sprintf("- `-%s%s`: %s\n", f.Name, arg, f.Description))
	}
	return sb.String(), nil
}
