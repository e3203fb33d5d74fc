// SPDX-License-Identifier: MPL-2.0

// Package sshserver exposes the shell REPL over SSH using the Wish
// library. Every accepted connection gets its own session and therefore
// its own isolated in-memory filesystem. The server performs no
// authentication; it is meant for local or lab use behind the operator's
// own access control.
package sshserver
