// SPDX-License-Identifier: MPL-2.0

// Package cmd implements the sandshell command-line interface: one-shot
// execution, the interactive REPL, configuration management, builtin
// documentation, snapshot transfer, and the SSH server.
package cmd
