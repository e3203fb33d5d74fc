// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sandshell/internal/vfs"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Move filesystem snapshots in and out of the sandbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	snapshotCmd.AddCommand(&cobra.Command{
		Use:   "export <host-path>",
		Short: "Copy the saved snapshot to a host file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			src, err := cfg.SnapshotPath()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(src)
			if err != nil {
				return fmt.Errorf("reading snapshot: %w", err)
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot to %s\n", args[0])
			return nil
		},
	})

	snapshotCmd.AddCommand(&cobra.Command{
		Use:   "import <host-path>",
		Short: "Install a host file as the saved snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			// Reject malformed snapshots before installing them.
			if err := vfs.New().ImportState(data); err != nil {
				return fmt.Errorf("%s is not a valid snapshot: %w", args[0], err)
			}

			dst, err := cfg.SnapshotPath()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return fmt.Errorf("creating snapshot dir: %w", err)
			}
			if err := os.WriteFile(dst, data, 0o644); err != nil {
				return fmt.Errorf("writing snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported snapshot from %s\n", args[0])
			return nil
		},
	})
}
