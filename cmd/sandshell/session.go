// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"io"
	"io/fs"

	"sandshell/internal/config"
	"sandshell/internal/session"
)

// newSession creates a session for one CLI invocation, loading the
// configured snapshot when auto-load is enabled. A missing snapshot file
// is not an error; the session just starts empty.
func newSession(cfg *config.Config, stderr io.Writer) (*session.Session, error) {
	sess := session.New(cfg, session.Options{Stderr: stderr})
	if cfg.Snapshot.AutoLoad {
		if err := sess.LoadSnapshot(""); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	return sess, nil
}

// persistSession writes the session state back to the configured snapshot
// location when auto-load is enabled, so state carries across invocations.
func persistSession(cfg *config.Config, sess *session.Session) error {
	if !cfg.Snapshot.AutoLoad {
		return nil
	}
	return sess.SaveSnapshot("")
}
