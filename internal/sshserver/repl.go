// SPDX-License-Identifier: MPL-2.0

package sshserver

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"sandshell/internal/shell"
)

// defaultPrompt is written before each command line when Config.Prompt is
// unset. Continuation lines inside a heredoc get continuationPrompt instead.
const (
	defaultPrompt      = "sandshell> "
	continuationPrompt = "> "
)

// replMiddleware runs the shell REPL for each accepted connection.
func (s *Server) replMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			s.logger.Info("session opened", "user", sess.User(), "remote", sess.RemoteAddr().String())
			s.runREPL(sess.Context(), sess, sess.Stderr())
			s.logger.Info("session closed", "user", sess.User())
			next(sess)
		}
	}
}

// runREPL reads command lines from rw until EOF or an explicit exit,
// executing each against a dedicated session. Heredoc bodies are collected
// across continuation lines before the block is submitted.
func (s *Server) runREPL(ctx context.Context, rw io.ReadWriter, stderr io.Writer) {
	sess := s.newSession()
	scanner := bufio.NewScanner(rw)

	for {
		_, _ = io.WriteString(rw, s.cfg.Prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "exit" {
			return
		}

		if delim, ok := shell.PendingHeredoc(line); ok {
			block, err := collectHeredoc(scanner, rw, line, delim)
			if err != nil {
				fmt.Fprintf(stderr, "%v\n", err)
				continue
			}
			line = block
		}

		out, err := sess.Run(ctx, line)
		if out != "" {
			_, _ = io.WriteString(rw, out)
		}
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
		}
	}
}

// collectHeredoc reads continuation lines until the delimiter line and
// returns the full block, command line included.
func collectHeredoc(scanner *bufio.Scanner, w io.Writer, first, delim string) (string, error) {
	lines := []string{first}
	for {
		_, _ = io.WriteString(w, continuationPrompt)
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
