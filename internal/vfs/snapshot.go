// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"encoding/json"
	"fmt"

	"sandshell/pkg/vpath"
)

const (
	snapshotTypeFile = "file"
	snapshotTypeDir  = "directory"
)

// snapshotNode is the JSON wire form of one tree node. The root serializes
// with name "/".
type snapshotNode struct {
	Type     string          `json:"type"`
	Name     string          `json:"name"`
	Content  *string         `json:"content,omitempty"`
	Children []*snapshotNode `json:"children,omitempty"`
}

// ExportState serializes the whole tree as a JSON snapshot.
func (fs *FS) ExportState() ([]byte, error) {
	root := exportNode(fs.root)
	root.Name = "/"
	return json.MarshalIndent(root, "", "  ")
}

// ImportState replaces the tree with the one described by snapshot. A root
// named "" or "/" is accepted. The previous tree is discarded only after the
// snapshot parses, so a malformed snapshot leaves the filesystem untouched.
func (fs *FS) ImportState(snapshot []byte) error {
	var root snapshotNode
	if err := json.Unmarshal(snapshot, &root); err != nil {
		return fmt.Errorf("parsing snapshot: %w", err)
	}
	if root.Type != snapshotTypeDir {
		return fmt.Errorf("snapshot root must be a directory, got %q", root.Type)
	}
	if root.Name != "" && root.Name != "/" {
		return fmt.Errorf("snapshot root must be named \"\" or \"/\", got %q", root.Name)
	}
	rebuilt := newDir("")
	for _, child := range root.Children {
		if err := importNode(rebuilt, child); err != nil {
			return err
		}
	}
	fs.root = rebuilt
	return nil
}

func exportNode(n Node) *snapshotNode {
	switch v := n.(type) {
	case *File:
		content := string(v.Content())
		return &snapshotNode{Type: snapshotTypeFile, Name: v.Name(), Content: &content}
	case *Dir:
		out := &snapshotNode{Type: snapshotTypeDir, Name: v.Name()}
		for _, child := range v.Children() {
			out.Children = append(out.Children, exportNode(child))
		}
		return out
	}
	return nil
}

func importNode(parent *Dir, sn *snapshotNode) error {
	if sn.Name == "" {
		return fmt.Errorf("snapshot node under %q has no name", NodePath(parent))
	}
	switch sn.Type {
	case snapshotTypeFile:
		var content string
		if sn.Content != nil {
			content = *sn.Content
		}
		parent.attach(newFile(sn.Name, []byte(content)))
		return nil
	case snapshotTypeDir:
		dir := newDir(sn.Name)
		parent.attach(dir)
		for _, child := range sn.Children {
			if err := importNode(dir, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("snapshot node %s: unknown type %q",
			vpath.JoinStr(NodePath(parent), sn.Name), sn.Type)
	}
}
