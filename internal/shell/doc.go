// SPDX-License-Identifier: MPL-2.0

// Package shell implements the command language front-end and execution
// engine: tokenizer, pipeline/redirection/heredoc parser, recursive command
// substitution, glob expansion against the virtual filesystem, and the
// left-to-right pipeline executor with exit-status connectors.
//
// One Runner serves one logical session. Parsing and execution are
// synchronous and single-threaded; stage output materializes fully in memory
// between stages, there is no byte-level streaming between pipeline stages.
package shell
