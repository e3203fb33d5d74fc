// SPDX-License-Identifier: MPL-2.0

// Package session ties one virtual filesystem to one command runner and
// adds the conveniences a REPL needs: bounded history, logging, and
// snapshot persistence to the host.
package session
