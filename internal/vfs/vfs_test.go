// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"errors"
	"testing"

	"sandshell/pkg/vpath"
)

func TestResolve_AbsenceIsNil(t *testing.T) {
	t.Parallel()

	fs := New()
	if n := fs.Resolve("/missing"); n != nil {
		t.Errorf("Resolve(/missing) = %v, want nil", n)
	}
	if n := fs.Resolve("/"); n == nil {
		t.Error("Resolve(/) = nil, want root directory")
	}
}

func TestCreateFile_CreatesAncestors(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/a/b/c.txt", []byte("hello")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	got, err := fs.ReadFile("/a/b/c.txt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadFile() = %q, want %q", got, "hello")
	}
	if _, ok := fs.Resolve("/a/b").(*Dir); !ok {
		t.Error("ancestor /a/b was not created as a directory")
	}
}

func TestCreateFile_OverwriteSemantics(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/f.txt", []byte("one")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if err := fs.CreateFile("/f.txt", []byte("two")); err != nil {
		t.Fatalf("overwriting existing file should succeed, got %v", err)
	}
	got, _ := fs.ReadFile("/f.txt")
	if string(got) != "two" {
		t.Errorf("content after overwrite = %q, want %q", got, "two")
	}

	if err := fs.CreateDir("/d"); err != nil {
		t.Fatalf("CreateDir() error = %v", err)
	}
	err := fs.CreateFile("/d", []byte("x"))
	if !errors.Is(err, ErrExists) {
		t.Errorf("CreateFile over directory = %v, want ErrExists", err)
	}
}

func TestCreateFile_AncestorIsFile(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/a", []byte("file")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	err := fs.CreateFile("/a/b.txt", []byte("x"))
	if !errors.Is(err, ErrNotADirectory) {
		t.Errorf("CreateFile under file = %v, want ErrNotADirectory", err)
	}
}

func TestCreateDir(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateDir("/a/b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("CreateDir with missing parent = %v, want ErrNotFound", err)
	}
	if err := fs.CreateDir("/a"); err != nil {
		t.Fatalf("CreateDir() error = %v", err)
	}
	if err := fs.CreateDir("/a"); !errors.Is(err, ErrExists) {
		t.Errorf("CreateDir on existing = %v, want ErrExists", err)
	}
}

func TestCreateDirAll(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateDirAll("/x/y/z"); err != nil {
		t.Fatalf("CreateDirAll() error = %v", err)
	}
	// Idempotent on existing directories.
	if err := fs.CreateDirAll("/x/y/z"); err != nil {
		t.Errorf("CreateDirAll() second call error = %v", err)
	}

	if err := fs.CreateFile("/x/file", nil); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if err := fs.CreateDirAll("/x/file/deep"); !errors.Is(err, ErrNotADirectory) {
		t.Errorf("CreateDirAll through file = %v, want ErrNotADirectory", err)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/d/inner.txt", []byte("x")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	if err := fs.Remove("/d", false); !errors.Is(err, ErrDirNotEmpty) {
		t.Errorf("Remove(non-empty, recursive=false) = %v, want ErrDirNotEmpty", err)
	}
	if err := fs.Remove("/d", true); err != nil {
		t.Fatalf("Remove(recursive) error = %v", err)
	}
	if fs.Resolve("/d") != nil {
		t.Error("subtree survived recursive remove")
	}
	if err := fs.Remove("/d", false); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(missing) = %v, want ErrNotFound", err)
	}
}

func TestRemove_Root(t *testing.T) {
	t.Parallel()

	fs := New()
	for _, recursive := range []bool{false, true} {
		if err := fs.Remove("/", recursive); !errors.Is(err, ErrRemoveRoot) {
			t.Errorf("Remove(/, recursive=%v) = %v, want ErrRemoveRoot", recursive, err)
		}
	}
	if fs.Resolve("/") == nil {
		t.Error("root vanished")
	}
}

func TestReadFile_OnDirectory(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateDir("/d"); err != nil {
		t.Fatalf("CreateDir() error = %v", err)
	}
	if _, err := fs.ReadFile("/d"); !errors.Is(err, ErrNotAFile) {
		t.Errorf("ReadFile(directory) = %v, want ErrNotAFile", err)
	}
}

func TestAppendFile(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.AppendFile("/log", []byte("one\n")); err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}
	if err := fs.AppendFile("/log", []byte("two\n")); err != nil {
		t.Fatalf("AppendFile() error = %v", err)
	}
	got, _ := fs.ReadFile("/log")
	if string(got) != "one\ntwo\n" {
		t.Errorf("content = %q, want %q", got, "one\ntwo\n")
	}
}

func TestList_InsertionOrder(t *testing.T) {
	t.Parallel()

	fs := New()
	for _, name := range []string{"b.txt", "a.txt", "c.txt"} {
		if err := fs.CreateFile(vpath.JoinStr("/", name), nil); err != nil {
			t.Fatalf("CreateFile(%s) error = %v", name, err)
		}
	}

	nodes, err := fs.List("/")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"b.txt", "a.txt", "c.txt"}
	for i, n := range nodes {
		if n.Name() != want[i] {
			t.Errorf("List()[%d] = %q, want %q (insertion order)", i, n.Name(), want[i])
		}
	}
}

func TestWriteFile_UpdatesSizeAndModTime(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/f", []byte("ab")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	f := fs.Resolve("/f").(*File)
	before := f.ModTime()

	if err := fs.WriteFile("/f", []byte("abcd")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if f.Size() != 4 {
		t.Errorf("Size() = %d, want 4", f.Size())
	}
	if f.ModTime().Before(before) {
		t.Error("ModTime() went backwards after write")
	}
}

func TestNodePath(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/a/b/c.txt", nil); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	n := fs.Resolve("/a/b/c.txt")
	if got := NodePath(n); got != "/a/b/c.txt" {
		t.Errorf("NodePath() = %q, want %q", got, "/a/b/c.txt")
	}
	if got := NodePath(fs.Root()); got != "/" {
		t.Errorf("NodePath(root) = %q, want %q", got, "/")
	}
}

func TestMove(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/src.txt", []byte("data")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}
	if err := fs.CreateDir("/dst"); err != nil {
		t.Fatalf("CreateDir() error = %v", err)
	}

	if err := fs.Move("/src.txt", "/dst"); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	if fs.Resolve("/src.txt") != nil {
		t.Error("source survived move")
	}
	got, err := fs.ReadFile("/dst/src.txt")
	if err != nil || string(got) != "data" {
		t.Errorf("ReadFile(/dst/src.txt) = %q, %v; want %q, nil", got, err, "data")
	}
}

func TestCopy_Recursive(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateFile("/tree/sub/leaf.txt", []byte("leaf")); err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	if err := fs.Copy("/tree", "/clone"); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	got, err := fs.ReadFile("/clone/sub/leaf.txt")
	if err != nil || string(got) != "leaf" {
		t.Errorf("ReadFile(/clone/sub/leaf.txt) = %q, %v; want %q, nil", got, err, "leaf")
	}

	// Copies are independent of the source.
	if err := fs.WriteFile("/tree/sub/leaf.txt", []byte("changed")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, _ = fs.ReadFile("/clone/sub/leaf.txt")
	if string(got) != "leaf" {
		t.Errorf("copy changed with source: got %q", got)
	}
}

func TestCopy_IntoItselfRejected(t *testing.T) {
	t.Parallel()

	fs := New()
	if err := fs.CreateDirAll("/tree/sub"); err != nil {
		t.Fatalf("CreateDirAll() error = %v", err)
	}
	if err := fs.Copy("/tree", "/tree/sub"); err == nil {
		t.Error("Copy(dir, dir/sub) succeeded, want error")
	}
}
