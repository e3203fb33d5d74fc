// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"errors"
	"fmt"

	"sandshell/pkg/vpath"
)

var (
	// ErrNotFound indicates the path does not exist in the tree.
	ErrNotFound = errors.New("no such file or directory")
	// ErrNotADirectory indicates a path segment resolved to a file where a
	// directory was required.
	ErrNotADirectory = errors.New("not a directory")
	// ErrNotAFile indicates a file operation was attempted on a directory.
	ErrNotAFile = errors.New("is a directory")
	// ErrExists indicates the target path is already occupied.
	ErrExists = errors.New("file exists")
	// ErrDirNotEmpty indicates a non-recursive remove hit a directory with
	// children.
	ErrDirNotEmpty = errors.New("directory not empty")
	// ErrRemoveRoot indicates an attempt to remove the filesystem root.
	ErrRemoveRoot = errors.New("cannot remove root directory")
)

// PathError wraps a filesystem error with the operation and affected path.
type PathError struct {
	Op   string
	Path vpath.Path
	Err  error
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap supports errors.Is/As matching on the underlying sentinel.
func (e *PathError) Unwrap() error {
	return e.Err
}

// pathError builds a *PathError for op on path.
func pathError(op string, path vpath.Path, err error) *PathError {
	return &PathError{Op: op, Path: path, Err: err}
}
