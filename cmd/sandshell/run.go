// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// runLine holds the -c command line, if given.
	runLine string

	runCmd = &cobra.Command{
		Use:   "run [script]",
		Short: "Execute a command line or script in the sandbox",
		Long: `Execute a command line or script in the sandbox.

The script file is read from the host, but everything it does happens
on the virtual filesystem. With snapshot auto-load enabled, state
persists across invocations.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (runLine == "") == (len(args) == 0) {
				return fmt.Errorf("provide either -c 'line' or a script file")
			}

			cfg, err := loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			sess, err := newSession(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			input := runLine
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading script: %w", err)
				}
				input = string(data)
			}

			out, runErr := sess.Run(cmd.Context(), input)
			if out != "" {
				fmt.Fprint(cmd.OutOrStdout(), out)
			}
			if runErr != nil {
				return runErr
			}
			return persistSession(cfg, sess)
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&runLine, "command", "c", "", "command line to execute")
}
