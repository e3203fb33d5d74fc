// SPDX-License-Identifier: MPL-2.0

// Package vfs implements the in-memory virtual filesystem backing the
// sandboxed shell. The tree is a plain directory/file hierarchy addressed by
// `/`-separated paths; all command handlers read and write through the FS
// surface, never the host filesystem. Absence of a path is a normal outcome
// (Resolve returns nil), while structural misuse surfaces as typed errors
// (ErrNotADirectory, ErrNotAFile, ErrExists, ErrDirNotEmpty).
//
// One FS instance belongs to one logical session. There is no internal
// locking; concurrent callers must serialize access themselves.
package vfs

import (
	"strings"

	"sandshell/pkg/vpath"
)

// FS is the virtual filesystem tree.
type FS struct {
	root *Dir
}

// New creates an empty filesystem containing only the root directory.
func New() *FS {
	return &FS{root: newDir("")}
}

// Root returns the root directory node.
func (fs *FS) Root() *Dir { return fs.root }

// Resolve walks path and returns the node it addresses, or nil if any
// component is missing or traverses a file. Resolve never returns an error;
// absence is a normal outcome callers must check.
func (fs *FS) Resolve(path vpath.Path) Node {
	cur := Node(fs.root)
	for _, seg := range vpath.Split(path) {
		dir, ok := cur.(*Dir)
		if !ok {
			return nil
		}
		cur = dir.Child(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// resolveDir resolves path to a directory, distinguishing absence from a
// file occupying the path.
func (fs *FS) resolveDir(op string, path vpath.Path) (*Dir, error) {
	n := fs.Resolve(path)
	if n == nil {
		return nil, pathError(op, path, ErrNotFound)
	}
	dir, ok := n.(*Dir)
	if !ok {
		return nil, pathError(op, path, ErrNotADirectory)
	}
	return dir, nil
}

// resolveFile resolves path to a file.
func (fs *FS) resolveFile(op string, path vpath.Path) (*File, error) {
	n := fs.Resolve(path)
	if n == nil {
		return nil, pathError(op, path, ErrNotFound)
	}
	f, ok := n.(*File)
	if !ok {
		return nil, pathError(op, path, ErrNotAFile)
	}
	return f, nil
}

// ensureDir walks the ancestor chain of path, creating missing directories
// along the way (mkdir -p). It fails with ErrNotADirectory when an existing
// segment is a file.
func (fs *FS) ensureDir(op string, path vpath.Path) (*Dir, error) {
	cur := fs.root
	walked := vpath.Root
	for _, seg := range vpath.Split(path) {
		walked = vpath.JoinStr(walked, seg)
		child := cur.Child(seg)
		if child == nil {
			next := newDir(seg)
			cur.attach(next)
			cur = next
			continue
		}
		dir, ok := child.(*Dir)
		if !ok {
			return nil, pathError(op, walked, ErrNotADirectory)
		}
		cur = dir
	}
	return cur, nil
}

// CreateFile writes content to a new or existing file at path, creating
// missing ancestor directories. Overwriting an existing file is allowed;
// a directory already occupying path is ErrExists, and a file occupying an
// ancestor segment is ErrNotADirectory.
func (fs *FS) CreateFile(path vpath.Path, content []byte) error {
	const op = "create"
	path = vpath.Clean(path)
	if existing := fs.Resolve(path); existing != nil {
		if _, isDir := existing.(*Dir); isDir {
			return pathError(op, path, ErrExists)
		}
	}
	parent, err := fs.ensureDir(op, vpath.Dir(path))
	if err != nil {
		return err
	}
	name := vpath.Base(path)
	if f, ok := parent.Child(name).(*File); ok {
		f.setContent(content)
		return nil
	}
	parent.attach(newFile(name, content))
	return nil
}

// CreateDir creates a single directory. The parent must already exist; an
// occupied target is ErrExists.
func (fs *FS) CreateDir(path vpath.Path) error {
	const op = "mkdir"
	path = vpath.Clean(path)
	if fs.Resolve(path) != nil {
		return pathError(op, path, ErrExists)
	}
	parent, err := fs.resolveDir(op, vpath.Dir(path))
	if err != nil {
		return err
	}
	parent.attach(newDir(vpath.Base(path)))
	return nil
}

// CreateDirAll creates path and any missing ancestors (mkdir -p). It is
// idempotent on existing directories and fails with ErrNotADirectory when any
// segment is occupied by a file.
func (fs *FS) CreateDirAll(path vpath.Path) error {
	_, err := fs.ensureDir("mkdir", vpath.Clean(path))
	return err
}

// Remove deletes the node at path. A non-empty directory requires recursive;
// recursive removal destroys the whole subtree. The root cannot be removed.
func (fs *FS) Remove(path vpath.Path, recursive bool) error {
	const op = "remove"
	path = vpath.Clean(path)
	n := fs.Resolve(path)
	if n == nil {
		return pathError(op, path, ErrNotFound)
	}
	parent := n.parentDir()
	if parent == nil {
		return pathError(op, path, ErrRemoveRoot)
	}
	if dir, ok := n.(*Dir); ok && dir.Len() > 0 && !recursive {
		return pathError(op, path, ErrDirNotEmpty)
	}
	parent.detach(n.Name())
	return nil
}

// ReadFile returns the content of the file at path.
func (fs *FS) ReadFile(path vpath.Path) ([]byte, error) {
	f, err := fs.resolveFile("read", vpath.Clean(path))
	if err != nil {
		return nil, err
	}
	return f.Content(), nil
}

// WriteFile replaces the content of the file at path, creating it (and
// missing ancestors) if absent.
func (fs *FS) WriteFile(path vpath.Path, content []byte) error {
	return fs.CreateFile(path, content)
}

// AppendFile appends content to the file at path, creating it if absent.
func (fs *FS) AppendFile(path vpath.Path, content []byte) error {
	path = vpath.Clean(path)
	n := fs.Resolve(path)
	if n == nil {
		return fs.CreateFile(path, content)
	}
	f, ok := n.(*File)
	if !ok {
		return pathError("append", path, ErrNotAFile)
	}
	f.setContent(append(f.Content(), content...))
	return nil
}

// List returns the children of the directory at path in insertion order.
func (fs *FS) List(path vpath.Path) ([]Node, error) {
	dir, err := fs.resolveDir("list", vpath.Clean(path))
	if err != nil {
		return nil, err
	}
	return dir.Children(), nil
}

// Move relocates the node at src to dst. A file at dst is overwritten; a
// directory at dst receives the node as a child, matching mv semantics.
func (fs *FS) Move(src, dst vpath.Path) error {
	const op = "move"
	src, dst = vpath.Clean(src), vpath.Clean(dst)
	n := fs.Resolve(src)
	if n == nil {
		return pathError(op, src, ErrNotFound)
	}
	if dir, ok := fs.Resolve(dst).(*Dir); ok {
		dst = vpath.JoinStr(NodePath(dir), n.Name())
	}
	if within(src, dst) {
		return pathError(op, dst, ErrExists)
	}
	if err := fs.copyNode(op, n, dst); err != nil {
		return err
	}
	return fs.Remove(src, true)
}

// Copy duplicates the node at src to dst. Directories are copied recursively.
func (fs *FS) Copy(src, dst vpath.Path) error {
	const op = "copy"
	src, dst = vpath.Clean(src), vpath.Clean(dst)
	n := fs.Resolve(src)
	if n == nil {
		return pathError(op, src, ErrNotFound)
	}
	if dir, ok := fs.Resolve(dst).(*Dir); ok {
		dst = vpath.JoinStr(NodePath(dir), n.Name())
	}
	if within(src, dst) {
		return pathError(op, dst, ErrExists)
	}
	return fs.copyNode(op, n, dst)
}

// within reports whether dst lies inside the subtree rooted at src. Copying
// or moving a directory into itself would otherwise recurse without end.
func within(src, dst vpath.Path) bool {
	return dst == src || strings.HasPrefix(string(dst), string(src)+"/")
}

// copyNode clones n (recursively for directories) at dst.
func (fs *FS) copyNode(op string, n Node, dst vpath.Path) error {
	switch src := n.(type) {
	case *File:
		content := make([]byte, len(src.Content()))
		copy(content, src.Content())
		return fs.CreateFile(dst, content)
	case *Dir:
		if err := fs.CreateDirAll(dst); err != nil {
			return err
		}
		for _, child := range src.Children() {
			if err := fs.copyNode(op, child, vpath.JoinStr(dst, child.Name())); err != nil {
				return err
			}
		}
		return nil
	default:
		return pathError(op, dst, ErrNotFound)
	}
}
