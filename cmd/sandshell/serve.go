// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"

	"sandshell/internal/session"
	"sandshell/internal/sshserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the REPL over SSH",
	Long: `Expose the REPL over SSH.

Each connection gets its own session with its own empty filesystem
(or the configured snapshot when auto-load is enabled). The server
runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Context())
		if err != nil {
			return err
		}

		srv := sshserver.New(sshserver.Config{
			Addr:        cfg.SSH.Addr,
			HostKeyPath: cfg.SSH.HostKeyPath,
			Prompt:      cfg.UI.Prompt,
		}, func() *session.Session {
			sess, err := newSession(cfg, nil)
			if err != nil {
				// Snapshot trouble should not kill the connection; fall
				// back to an empty session.
				return session.New(cfg, session.Options{})
			}
			return sess
		})

		if err := srv.Start(cmd.Context()); err != nil {
			return err
		}

		select {
		case <-cmd.Context().Done():
			return srv.Stop()
		case err, ok := <-srv.Err():
			_ = srv.Stop()
			if ok {
				return err
			}
			return nil
		}
	},
}
