// SPDX-License-Identifier: MPL-2.0

package session

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"sandshell/internal/builtins"
	"sandshell/internal/config"
	"sandshell/internal/shell"
	"sandshell/internal/vfs"
	"sandshell/pkg/vpath"
)

type (
	// Options configures a new session. The zero value is usable.
	Options struct {
		// Stderr receives unredirected command stderr (default: discard).
		Stderr io.Writer
		// Logger receives session-level events (default: "session"-prefixed
		// logger on os.Stderr, debug level when cfg.UI.Verbose is set).
		Logger *log.Logger
	}

	// Session is one logical shell session: an isolated in-memory
	// filesystem, a command runner bound to it, and a bounded command
	// history. A Session is meant for serialized use by a single caller;
	// it performs no internal locking.
	Session struct {
		cfg     *config.Config
		fs      *vfs.FS
		runner  *shell.Runner
		logger  *log.Logger
		history []string
	}
)

// New creates a session with a fresh, empty filesystem.
func New(cfg *config.Config, opts Options) *Session {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "session",
		})
		if cfg.UI.Verbose {
			opts.Logger.SetLevel(log.DebugLevel)
		}
	}

	fs := vfs.New()
	return &Session{
		cfg:    cfg,
		fs:     fs,
		runner: shell.NewRunner(fs, builtins.DefaultRegistry, opts.Stderr),
		logger: opts.Logger,
	}
}

// FS returns the session filesystem.
func (s *Session) FS() *vfs.FS {
	return s.fs
}

// Dir returns the current working directory.
func (s *Session) Dir() vpath.Path {
	return s.runner.Dir()
}

// Run executes one command line (or script) and returns its output.
// Non-blank lines are recorded in the history whether or not they succeed.
func (s *Session) Run(ctx context.Context, line string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return "", nil
	}
	s.record(line)

	s.logger.Debug("run", "line", line)
	out, err := s.runner.Run(ctx, line)
	if err != nil {
		s.logger.Debug("command failed", "err", err)
	}
	return out, err
}

// History returns a copy of the recorded command lines, oldest first.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) record(line string) {
	s.history = append(s.history, line)
	if limit := s.cfg.HistorySize; limit > 0 && len(s.history) > limit {
		s.history = s.history[len(s.history)-limit:]
	}
}

// SaveSnapshot serializes the filesystem to path on the host. An empty
// path falls back to the configured snapshot location.
func (s *Session) SaveSnapshot(path string) error {
	path, err := s.snapshotPath(path)
	if err != nil {
		return err
	}
	data, err := s.fs.ExportState()
	if err != nil {
		return fmt.Errorf("exporting snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating snapshot dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	s.logger.Info("snapshot saved", "path", path)
	return nil
}

// LoadSnapshot replaces the filesystem contents with a snapshot read from
// path on the host. An empty path falls back to the configured snapshot
// location. The working directory resets to the root since the previous
// one may no longer exist.
func (s *Session) LoadSnapshot(path string) error {
	path, err := s.snapshotPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	if err := s.fs.ImportState(data); err != nil {
		return fmt.Errorf("importing snapshot: %w", err)
	}
	s.runner.ResetDir()
	s.logger.Info("snapshot loaded", "path", path)
	return nil
}

func (s *Session) snapshotPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return s.cfg.SnapshotPath()
}
