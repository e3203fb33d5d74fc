// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"sandshell/internal/builtins"
	"sandshell/internal/vfs"
	"sandshell/pkg/vpath"
)

// Runner executes command lines against one virtual filesystem and one
// command registry. A Runner belongs to a single logical session and is not
// safe for concurrent use; callers serialize access.
type Runner struct {
	fs       *vfs.FS
	registry *builtins.Registry
	dir      vpath.Path
	stderr   io.Writer
}

// NewRunner creates a Runner rooted at / using the given registry.
// Stage stderr that is not redirected is written to stderr; pass nil to
// discard it.
func NewRunner(fs *vfs.FS, registry *builtins.Registry, stderr io.Writer) *Runner {
	if stderr == nil {
		stderr = io.Discard
	}
	return &Runner{
		fs:       fs,
		registry: registry,
		dir:      "/",
		stderr:   stderr,
	}
}

// Dir returns the current working directory.
func (r *Runner) Dir() vpath.Path {
	return r.dir
}

// FS returns the filesystem the runner operates on.
func (r *Runner) FS() *vfs.FS {
	return r.fs
}

// ResetDir returns the working directory to the root. Callers that replace
// the filesystem contents wholesale use this since the previous directory
// may no longer exist.
func (r *Runner) ResetDir() {
	r.dir = "/"
}

// Run executes one submitted input, which may span multiple physical lines
// (heredoc bodies, scripts). The captured stdout of the line is returned;
// a failing line surfaces exactly one error.
func (r *Runner) Run(ctx context.Context, input string) (string, error) {
	return r.run(ctx, input, 0)
}

// run is the recursive entry point shared with command substitution; depth
// tracks how many substitution levels deep this call is.
func (r *Runner) run(ctx context.Context, input string, depth int) (string, error) {
	line, heredoc := splitHeredoc(input)

	// Without a heredoc a multi-line input is a script: each chunk runs in
	// sequence and outputs concatenate, first error aborts.
	if heredoc == nil && strings.ContainsRune(line, '\n') {
		var sb strings.Builder
		for _, chunk := range splitScript(line) {
			out, err := r.run(ctx, chunk, depth)
			if err != nil {
				return sb.String(), err
			}
			sb.WriteString(out)
		}
		return sb.String(), nil
	}

	expanded, err := expandSubstitutions(ctx, line, depth, r.run)
	if err != nil {
		return "", err
	}

	tokens := Tokenize(expanded)
	if len(tokens) == 0 {
		return "", nil
	}
	tokens = expandGlobs(r.fs, r.dir, tokens)

	stages, err := ParsePipeline(tokens)
	if err != nil {
		return "", err
	}

	return r.execute(ctx, stages, heredoc)
}

// execute walks the stage list left to right, threading captured output and
// evaluating connectors against each stage's exit status.
func (r *Runner) execute(ctx context.Context, stages []Stage, heredoc *Heredoc) (string, error) {
	var result strings.Builder
	var lastErr error

	stdin := ""
	runNext := true

	for _, stage := range stages {
		if runNext {
			out, redirected, err := r.runStage(ctx, stage, stdin, heredoc)
			if err != nil && isFatal(err) {
				return "", err
			}
			lastErr = err

			if stage.Connector == ConnPipe {
				stdin = out
			} else {
				stdin = ""
				if !redirected {
					result.WriteString(out)
				}
			}
		} else {
			// A skipped stage neither runs nor changes the status the
			// next connector decision sees.
			stdin = ""
		}

		switch stage.Connector {
		case ConnPipe, ConnSeq:
			runNext = true
		case ConnAnd:
			runNext = lastErr == nil
		case ConnOr:
			runNext = lastErr != nil
		case ConnEnd:
		}
	}

	if lastErr != nil {
		return result.String(), lastErr
	}
	return result.String(), nil
}

// runStage dispatches one stage to its handler with redirections applied.
// The returned bool reports whether stdout was redirected into the VFS and
// therefore already consumed.
func (r *Runner) runStage(ctx context.Context, stage Stage, stdin string, heredoc *Heredoc) (string, bool, error) {
	name := stage.Argv[0]

	// cd mutates runner state, so the executor owns it.
	if name == "cd" {
		return "", false, r.changeDir(stage.Argv)
	}

	if _, ok := r.registry.Lookup(name); !ok {
		return "", false, fatalError{fmt.Errorf("%s: command not found", name)}
	}

	input := stdin
	for _, redir := range stage.Redirs {
		switch redir.Kind {
		case RedirIn:
			content, err := r.fs.ReadFile(r.resolve(redir.Target))
			if err != nil {
				return "", false, err
			}
			input = string(content)
		case RedirHeredoc:
			if heredoc == nil || heredoc.Delimiter != redir.Target {
				return "", false, fmt.Errorf("here-document delimited by %q has no body", redir.Target)
			}
			input = heredoc.Content
		}
	}

	var stdout, stderr bytes.Buffer
	hctx := builtins.WithHandlerContext(ctx, &builtins.HandlerContext{
		Stdin:  strings.NewReader(input),
		Stdout: &stdout,
		Stderr: &stderr,
		Dir:    r.dir,
		FS:     r.fs,
	})

	runErr := r.registry.Run(hctx, name, stage.Argv)

	outText := stdout.String()
	redirected := false
	errRedirected := false
	for _, redir := range stage.Redirs {
		var err error
		switch redir.Kind {
		case RedirOut:
			err = r.fs.WriteFile(r.resolve(redir.Target), []byte(outText))
			redirected = true
		case RedirAppend:
			err = r.fs.AppendFile(r.resolve(redir.Target), []byte(outText))
			redirected = true
		case RedirErr:
			err = r.fs.WriteFile(r.resolve(redir.Target), stderr.Bytes())
			errRedirected = true
		case RedirErrToOut:
			err = r.fs.WriteFile(r.resolve(redir.Target), append([]byte(outText), stderr.Bytes()...))
			redirected = true
			errRedirected = true
		}
		if err != nil {
			return "", false, err
		}
	}

	if !errRedirected && stderr.Len() > 0 {
		_, _ = io.Copy(r.stderr, &stderr) //nolint:errcheck // Diagnostic stream
	}

	return outText, redirected, runErr
}

// changeDir implements cd. The target must resolve to an existing directory.
func (r *Runner) changeDir(argv []string) error {
	target := vpath.Path("/")
	if len(argv) > 1 {
		target = r.resolve(argv[1])
	}
	if _, ok := r.fs.Resolve(target).(*vfs.Dir); !ok {
		return fmt.Errorf("cd: %s: no such directory", target)
	}
	r.dir = target
	return nil
}

func (r *Runner) resolve(arg string) vpath.Path {
	return vpath.Resolve(r.dir, vpath.Path(arg))
}

// fatalError aborts the remaining pipeline immediately instead of feeding
// the connector decision. Unknown command names are the one fatal case.
type fatalError struct{ err error }

func (e fatalError) Error() string { return e.err.Error() }
func (e fatalError) Unwrap() error { return e.err }

func isFatal(err error) bool {
	_, ok := err.(fatalError)
	return ok
}
