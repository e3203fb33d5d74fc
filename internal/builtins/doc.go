// SPDX-License-Identifier: MPL-2.0

// Package builtins provides the command handlers available inside the
// sandboxed shell.
//
// Every command operates exclusively on the virtual filesystem carried in the
// HandlerContext; nothing here touches the host. Commands register themselves
// into DefaultRegistry at init time, and the executor dispatches stages to the
// registry by name.
//
// # Supported Commands
//
//   - basename: Strip directory and suffix from filenames
//   - cat: Concatenate and display files
//   - cp: Copy files and directories
//   - diff: Compare two files line by line
//   - dirname: Strip last component from filenames
//   - echo: Display a line of text
//   - find: Search the tree for matching entries
//   - grep: Search for patterns in files
//   - head: Output first N lines
//   - ls: List directory contents
//   - mkdir: Create directories
//   - mv: Move/rename files and directories
//   - patch: Apply a diff to files
//   - pwd: Print the working directory
//   - rm: Remove files and directories
//   - sort: Sort lines of text
//   - tail: Output last N lines
//   - tee: Duplicate standard input to files
//   - touch: Create files or refresh timestamps
//   - true/false: Fixed exit status
//   - uniq: Report or omit repeated lines
//   - wc: Count lines, words, and bytes
//
// # Error Format
//
// All command errors are prefixed with "[builtin]" for clear identification:
//
//	[builtin] cp: /source/file: not found
//	[builtin] patch: hello.txt: hunk #2 failed: context mismatch near line 14
//
// # Unsupported Flags
//
// Flags a command does not implement are silently ignored. Commands execute
// with supported flags only, which keeps scripts written for GNU coreutils
// mostly working.
package builtins
