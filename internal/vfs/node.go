// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"time"

	"sandshell/pkg/vpath"
)

type (
	// Node is a single entry in the virtual filesystem tree, either a *File
	// or a *Dir.
	Node interface {
		// Name returns the node's path segment name. The root directory's
		// name is the empty string.
		Name() string
		// ModTime returns the last modification time.
		ModTime() time.Time

		// parentDir returns the non-owning back-link used for path
		// reconstruction. It is never consulted for lifetime decisions:
		// removing a directory removes its whole subtree regardless of
		// back-links.
		parentDir() *Dir
		setParent(d *Dir)
	}

	// File is a leaf node holding byte content.
	File struct {
		name    string
		modTime time.Time
		content []byte
		parent  *Dir
	}

	// Dir is an interior node owning an insertion-ordered, name-unique set
	// of children.
	Dir struct {
		name     string
		modTime  time.Time
		order    []string
		children map[string]Node
		parent   *Dir
	}
)

// Name returns the file's path segment name.
func (f *File) Name() string { return f.name }

// ModTime returns the file's last modification time.
func (f *File) ModTime() time.Time { return f.modTime }

// Size returns the content length in bytes.
func (f *File) Size() int { return len(f.content) }

// Content returns the file's bytes. The returned slice is the file's backing
// store; callers that mutate it must go through the FS write operations
// instead.
func (f *File) Content() []byte { return f.content }

func (f *File) parentDir() *Dir   { return f.parent }
func (f *File) setParent(d *Dir)  { f.parent = d }
func (f *File) touch()            { f.modTime = time.Now() }
func (f *File) setContent(b []byte) {
	f.content = b
	f.touch()
}

// newFile creates a detached file node.
func newFile(name string, content []byte) *File {
	return &File{name: name, modTime: time.Now(), content: content}
}

// Name returns the directory's path segment name.
func (d *Dir) Name() string { return d.name }

// ModTime returns the directory's last modification time.
func (d *Dir) ModTime() time.Time { return d.modTime }

// Child returns the named child, or nil if absent.
func (d *Dir) Child(name string) Node {
	return d.children[name]
}

// Children returns the children in insertion order.
func (d *Dir) Children() []Node {
	out := make([]Node, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.children[name])
	}
	return out
}

// Len returns the number of children.
func (d *Dir) Len() int { return len(d.children) }

func (d *Dir) parentDir() *Dir  { return d.parent }
func (d *Dir) setParent(p *Dir) { d.parent = p }
func (d *Dir) touch()           { d.modTime = time.Now() }

// attach adds or replaces a child. Replacement keeps the child's position in
// the listing order; a new name is appended.
func (d *Dir) attach(n Node) {
	name := n.Name()
	if _, ok := d.children[name]; !ok {
		d.order = append(d.order, name)
	}
	d.children[name] = n
	n.setParent(d)
	d.touch()
}

// detach removes the named child if present.
func (d *Dir) detach(name string) {
	child, ok := d.children[name]
	if !ok {
		return
	}
	delete(d.children, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	child.setParent(nil)
	d.touch()
}

// newDir creates a detached, empty directory node.
func newDir(name string) *Dir {
	return &Dir{name: name, modTime: time.Now(), children: make(map[string]Node)}
}

// NodePath reconstructs the absolute path of n by walking parent back-links
// to the root.
func NodePath(n Node) vpath.Path {
	var segs []string
	for cur := n; cur != nil && cur.parentDir() != nil; cur = cur.parentDir() {
		segs = append(segs, cur.Name())
	}
	// Reverse: collected leaf-first.
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return vpath.JoinStr(vpath.Root, segs...)
}
