// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"sandshell/internal/session"
	"sandshell/internal/shell"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session on stdin.

Type commands at the prompt; "exit" or EOF (Ctrl-D) ends the session.
A line that opens a heredoc keeps reading body lines until the
delimiter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}
		sess, err := newSession(cfg, cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		prompt := PromptStyle.Render(cfg.UI.Prompt)
		runREPL(cmd.Context(), sess, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), prompt)

		return persistSession(cfg, sess)
	},
}

// runREPL reads command lines from in until EOF or an explicit exit,
// executing each against sess.
func runREPL(ctx context.Context, sess *session.Session, in io.Reader, out, errOut io.Writer, prompt string) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			return
		}

		if delim, ok := shell.PendingHeredoc(line); ok {
			block, err := readHeredocBody(scanner, out, line, delim)
			if err != nil {
				fmt.Fprintln(errOut, ErrorStyle.Render(err.Error()))
				continue
			}
			line = block
		}

		result, err := sess.Run(ctx, line)
		if result != "" {
			fmt.Fprint(out, result)
		}
		if err != nil {
			fmt.Fprintln(errOut, ErrorStyle.Render(err.Error()))
		}
	}
}

// readHeredocBody collects continuation lines until the delimiter line and
// returns the full block, command line included.
func readHeredocBody(scanner *bufio.Scanner, out io.Writer, first, delim string) (string, error) {
	lines := []string{first}
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return "", fmt.Errorf("unterminated heredoc: missing %q", delim)
		}
		line := scanner.Text()
		lines = append(lines, line)
		if line == delim || strings.HasPrefix(line, delim+" ") || strings.HasPrefix(line, delim+"\t") {
			return strings.Join(lines, "\n"), nil
		}
	}
}
