// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"context"
	"errors"
	"testing"

	"sandshell/pkg/vpath"
)

// fakeRemote records mirrored operations and can be told to fail.
type fakeRemote struct {
	writes  map[string][]byte
	mkdirs  []string
	removes []string
	failing bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{writes: make(map[string][]byte)}
}

var errRemoteDown = errors.New("remote unavailable")

func (f *fakeRemote) ReadFile(_ context.Context, path string) ([]byte, error) {
	data, ok := f.writes[path]
	if !ok {
		return nil, errRemoteDown
	}
	return data, nil
}

func (f *fakeRemote) WriteFile(_ context.Context, path string, data []byte) error {
	if f.failing {
		return errRemoteDown
	}
	f.writes[path] = data
	return nil
}

func (f *fakeRemote) WriteFileText(ctx context.Context, path, text string) error {
	return f.WriteFile(ctx, path, []byte(text))
}

func (f *fakeRemote) Mkdir(_ context.Context, path string) error {
	if f.failing {
		return errRemoteDown
	}
	f.mkdirs = append(f.mkdirs, path)
	return nil
}

func (f *fakeRemote) ReadDir(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

func (f *fakeRemote) Stat(_ context.Context, _ string) (RemoteInfo, error) {
	return RemoteInfo{}, errRemoteDown
}

func (f *fakeRemote) Unlink(_ context.Context, path string) error {
	return f.Rm(context.Background(), path, false)
}

func (f *fakeRemote) Rm(_ context.Context, path string, _ bool) error {
	if f.failing {
		return errRemoteDown
	}
	f.removes = append(f.removes, path)
	return nil
}

func TestRemoteFS_SyncModeWritesThrough(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	r := NewRemote(New(), remote, ModeSync)

	if err := r.WriteFile(context.Background(), "/a.txt", []byte("x")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if string(remote.writes["/a.txt"]) != "x" {
		t.Errorf("remote content = %q, want %q", remote.writes["/a.txt"], "x")
	}
	if len(r.Dirty()) != 0 {
		t.Errorf("dirty set after sync write = %v, want empty", r.Dirty())
	}
}

func TestRemoteFS_FlushModeBatches(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	r := NewRemote(New(), remote, ModeFlush)
	ctx := context.Background()

	if err := r.WriteFile(ctx, "/a.txt", []byte("x")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := r.CreateDirAll(ctx, "/d"); err != nil {
		t.Fatalf("CreateDirAll() error = %v", err)
	}
	if len(remote.writes) != 0 || len(remote.mkdirs) != 0 {
		t.Error("flush mode pushed before Flush()")
	}
	if got := len(r.Dirty()); got != 2 {
		t.Fatalf("dirty count = %d, want 2", got)
	}

	if err := r.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if string(remote.writes["/a.txt"]) != "x" {
		t.Error("file not mirrored on flush")
	}
	if len(remote.mkdirs) != 1 || remote.mkdirs[0] != "/d" {
		t.Errorf("mkdirs = %v, want [/d]", remote.mkdirs)
	}
	if len(r.Dirty()) != 0 {
		t.Errorf("dirty set after flush = %v, want empty", r.Dirty())
	}
}

func TestRemoteFS_FailedFlushKeepsDirtySet(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	r := NewRemote(New(), remote, ModeFlush)
	ctx := context.Background()

	if err := r.WriteFile(ctx, "/a.txt", []byte("x")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	remote.failing = true
	if err := r.Flush(ctx); err == nil {
		t.Fatal("Flush() succeeded, want error")
	}
	if got := r.Dirty(); len(got) != 1 || got[0] != vpath.Path("/a.txt") {
		t.Fatalf("dirty set after failed flush = %v, want [/a.txt]", got)
	}

	// Retry succeeds once the remote recovers: at-least-once delivery.
	remote.failing = false
	if err := r.Flush(ctx); err != nil {
		t.Fatalf("retry Flush() error = %v", err)
	}
	if string(remote.writes["/a.txt"]) != "x" {
		t.Error("file not mirrored on retry")
	}
}

func TestRemoteFS_RemovePropagates(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote()
	r := NewRemote(New(), remote, ModeFlush)
	ctx := context.Background()

	if err := r.WriteFile(ctx, "/gone.txt", nil); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := r.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if err := r.Remove(ctx, "/gone.txt", false); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := r.Flush(ctx); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(remote.removes) != 1 || remote.removes[0] != "/gone.txt" {
		t.Errorf("removes = %v, want [/gone.txt]", remote.removes)
	}
}
