// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"context"
	"sort"
	"time"

	"sandshell/pkg/vpath"
)

type (
	// RemoteClient is the injected transport used to mirror tree mutations
	// to a remote store. Implementations live outside this module; the core
	// only depends on this surface. All calls block until the remote
	// operation completes.
	RemoteClient interface {
		ReadFile(ctx context.Context, path string) ([]byte, error)
		WriteFile(ctx context.Context, path string, data []byte) error
		WriteFileText(ctx context.Context, path, text string) error
		Mkdir(ctx context.Context, path string) error
		ReadDir(ctx context.Context, path string) ([]string, error)
		Stat(ctx context.Context, path string) (RemoteInfo, error)
		Unlink(ctx context.Context, path string) error
		Rm(ctx context.Context, path string, recursive bool) error
	}

	// RemoteInfo describes one remote entry.
	RemoteInfo struct {
		Name    string
		Size    int64
		IsDir   bool
		ModTime time.Time
	}

	// SyncMode selects when local mutations reach the remote store.
	SyncMode int

	// RemoteFS wraps an in-memory FS and mirrors mutations to a
	// RemoteClient. Every mutated path enters the dirty set; ModeSync
	// flushes after each mutation, ModeFlush batches until Flush. A path
	// leaves the dirty set only once its remote write succeeds, so a failed
	// flush keeps pending work for retry (at-least-once, never dropped).
	RemoteFS struct {
		*FS
		client RemoteClient
		mode   SyncMode
		dirty  map[vpath.Path]struct{}
	}
)

const (
	// ModeSync writes through to the remote store after every mutation.
	ModeSync SyncMode = iota
	// ModeFlush batches mutations until an explicit Flush call.
	ModeFlush
)

// NewRemote wraps fs with remote mirroring through client.
func NewRemote(fs *FS, client RemoteClient, mode SyncMode) *RemoteFS {
	return &RemoteFS{
		FS:     fs,
		client: client,
		mode:   mode,
		dirty:  make(map[vpath.Path]struct{}),
	}
}

// Dirty returns the pending paths in sorted order.
func (r *RemoteFS) Dirty() []vpath.Path {
	out := make([]vpath.Path, 0, len(r.dirty))
	for p := range r.dirty {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WriteFile writes locally and marks the path dirty.
func (r *RemoteFS) WriteFile(ctx context.Context, path vpath.Path, content []byte) error {
	if err := r.FS.WriteFile(path, content); err != nil {
		return err
	}
	return r.mark(ctx, vpath.Clean(path))
}

// AppendFile appends locally and marks the path dirty.
func (r *RemoteFS) AppendFile(ctx context.Context, path vpath.Path, content []byte) error {
	if err := r.FS.AppendFile(path, content); err != nil {
		return err
	}
	return r.mark(ctx, vpath.Clean(path))
}

// CreateDirAll creates directories locally and marks the path dirty.
func (r *RemoteFS) CreateDirAll(ctx context.Context, path vpath.Path) error {
	if err := r.FS.CreateDirAll(path); err != nil {
		return err
	}
	return r.mark(ctx, vpath.Clean(path))
}

// Remove removes locally and marks the path dirty so the deletion propagates.
func (r *RemoteFS) Remove(ctx context.Context, path vpath.Path, recursive bool) error {
	if err := r.FS.Remove(path, recursive); err != nil {
		return err
	}
	return r.mark(ctx, vpath.Clean(path))
}

// mark records path as dirty and, in sync mode, flushes immediately. A sync
// flush failure leaves the path dirty; the local mutation stands either way.
func (r *RemoteFS) mark(ctx context.Context, path vpath.Path) error {
	r.dirty[path] = struct{}{}
	if r.mode == ModeSync {
		return r.Flush(ctx)
	}
	return nil
}

// Flush pushes every dirty path to the remote store in sorted order, so
// parent directories are created before their children. A path is removed
// from the dirty set only after its remote write succeeds; on the first
// failure Flush returns, leaving the failed path and all remaining paths
// dirty for retry.
func (r *RemoteFS) Flush(ctx context.Context) error {
	for _, path := range r.Dirty() {
		if err := r.push(ctx, path); err != nil {
			return err
		}
		delete(r.dirty, path)
	}
	return nil
}

// push mirrors the current local state of path: absent locally means remote
// removal, a directory maps to Mkdir, a file maps to WriteFile.
func (r *RemoteFS) push(ctx context.Context, path vpath.Path) error {
	switch n := r.FS.Resolve(path).(type) {
	case nil:
		return r.client.Rm(ctx, string(path), true)
	case *Dir:
		return r.client.Mkdir(ctx, string(path))
	case *File:
		return r.client.WriteFile(ctx, string(path), n.Content())
	}
	return nil
}
