// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"fmt"
	"os"
	"path/filepath"

	"sandshell/pkg/vpath"
)

// ImportFile copies one host file into the tree at path.
func (fs *FS) ImportFile(hostPath string, path vpath.Path) error {
	data, err := os.ReadFile(hostPath)
	if err != nil {
		return fmt.Errorf("importing %s: %w", hostPath, err)
	}
	return fs.CreateFile(path, data)
}

// ImportGlob imports every host file matching the glob pattern into the
// directory at dest, keyed by base name. A pattern matching nothing is not an
// error.
func (fs *FS) ImportGlob(pattern string, dest vpath.Path) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("importing %s: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return fmt.Errorf("importing %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		if err := fs.ImportFile(m, vpath.JoinStr(dest, filepath.Base(m))); err != nil {
			return err
		}
	}
	return nil
}

// ImportDir copies a host directory into the tree at path. Without recursive
// only the directory's immediate files are imported; with recursive the whole
// subtree is.
func (fs *FS) ImportDir(hostPath string, path vpath.Path, recursive bool) error {
	entries, err := os.ReadDir(hostPath)
	if err != nil {
		return fmt.Errorf("importing %s: %w", hostPath, err)
	}
	if err := fs.CreateDirAll(path); err != nil {
		return err
	}
	for _, entry := range entries {
		hostChild := filepath.Join(hostPath, entry.Name())
		child := vpath.JoinStr(path, entry.Name())
		if entry.IsDir() {
			if !recursive {
				continue
			}
			if err := fs.ImportDir(hostChild, child, true); err != nil {
				return err
			}
			continue
		}
		if err := fs.ImportFile(hostChild, child); err != nil {
			return err
		}
	}
	return nil
}

// ExportFile copies the file at path to hostPath.
func (fs *FS) ExportFile(path vpath.Path, hostPath string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(hostPath, data, 0o644); err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	return nil
}

// ExportDir copies the directory at path to hostPath. Without recursive only
// the directory's immediate files are exported.
func (fs *FS) ExportDir(path vpath.Path, hostPath string, recursive bool) error {
	nodes, err := fs.List(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(hostPath, 0o755); err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	for _, n := range nodes {
		hostChild := filepath.Join(hostPath, n.Name())
		switch child := n.(type) {
		case *Dir:
			if !recursive {
				continue
			}
			if err := fs.ExportDir(NodePath(child), hostChild, true); err != nil {
				return err
			}
		case *File:
			if err := os.WriteFile(hostChild, child.Content(), 0o644); err != nil {
				return fmt.Errorf("exporting %s: %w", NodePath(child), err)
			}
		}
	}
	return nil
}
