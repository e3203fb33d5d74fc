// SPDX-License-Identifier: MPL-2.0

// Package vpath provides typed helpers for virtual filesystem paths. Virtual
// paths always use `/` as the separator regardless of the host platform, so
// these wrappers delegate to the slash-only path package rather than
// path/filepath. Keeping the operations behind a typed Path prevents host
// paths and virtual paths from being mixed up at call sites.
package vpath

import (
	"path"
	"strings"
)

// Path is a virtual filesystem path, absolute or relative, using `/`
// separators. The zero value is the empty path.
type Path string

// Root is the virtual filesystem root.
const Root Path = "/"

// Join joins any number of path elements into a single path, cleaning the
// result.
func Join(elem ...Path) Path {
	strs := make([]string, len(elem))
	for i, e := range elem {
		strs[i] = string(e)
	}
	return Path(path.Join(strs...))
}

// JoinStr joins a typed base path with raw string segments. Use this when
// joining a resolved path with literal names (e.g. directory entries).
func JoinStr(base Path, elem ...string) Path {
	parts := make([]string, 1, 1+len(elem))
	parts[0] = string(base)
	parts = append(parts, elem...)
	return Path(path.Join(parts...))
}

// Clean returns the shortest path name equivalent to p.
func Clean(p Path) Path {
	return Path(path.Clean(string(p)))
}

// Dir returns all but the last element of p.
func Dir(p Path) Path {
	return Path(path.Dir(string(p)))
}

// Base returns the last element of p.
func Base(p Path) string {
	return path.Base(string(p))
}

// IsAbs reports whether p is absolute.
func IsAbs(p Path) bool {
	return strings.HasPrefix(string(p), "/")
}

// Resolve resolves p against the working directory dir: absolute paths are
// cleaned as-is, relative paths are joined onto dir. The result is always
// absolute when dir is absolute.
func Resolve(dir, p Path) Path {
	if IsAbs(p) {
		return Clean(p)
	}
	return Join(dir, p)
}

// Split returns the cleaned path components of p, excluding the root. The
// root itself and the empty path split to no components. `.` and `..` are
// resolved by the clean step, so callers never see them.
func Split(p Path) []string {
	cleaned := string(Clean(p))
	cleaned = strings.TrimPrefix(cleaned, "/")
	if cleaned == "" || cleaned == "." {
		return nil
	}
	return strings.Split(cleaned, "/")
}
