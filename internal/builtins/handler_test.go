// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"sandshell/internal/vfs"
	"sandshell/pkg/vpath"
)

// testEnv bundles a virtual filesystem with captured output streams.
type testEnv struct {
	fs     *vfs.FS
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newTestEnv seeds a fresh filesystem with the given files and returns a
// context carrying a HandlerContext rooted at "/".
func newTestEnv(t *testing.T, files map[string]string) (context.Context, *testEnv) {
	t.Helper()
	return newTestEnvStdin(t, files, "")
}

func newTestEnvStdin(t *testing.T, files map[string]string, stdin string) (context.Context, *testEnv) {
	t.Helper()

	fs := vfs.New()
	for path, content := range files {
		if err := fs.CreateFile(vpath.Path(path), []byte(content)); err != nil {
			t.Fatalf("seeding %s: %v", path, err)
		}
	}

	env := &testEnv{
		fs:     fs,
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	ctx := WithHandlerContext(context.Background(), &HandlerContext{
		Stdin:  strings.NewReader(stdin),
		Stdout: env.stdout,
		Stderr: env.stderr,
		Dir:    "/",
		FS:     fs,
	})
	return ctx, env
}

func TestGetHandlerContext_MissingPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for missing HandlerContext")
		}
	}()
	GetHandlerContext(context.Background())
}

func TestHandlerContext_Resolve(t *testing.T) {
	t.Parallel()

	hc := &HandlerContext{Dir: "/work"}
	tests := []struct {
		arg  string
		want vpath.Path
	}{
		{"file.txt", "/work/file.txt"},
		{"/abs.txt", "/abs.txt"},
		{"../up.txt", "/up.txt"},
		{".", "/work"},
	}
	for _, tt := range tests {
		if got := hc.Resolve(tt.arg); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if wrapError("cat", nil) != nil {
		t.Error("wrapError with nil error should return nil")
	}
	err := wrapError("cat", io.ErrUnexpectedEOF)
	if err == nil || !strings.HasPrefix(err.Error(), "[builtin] cat: ") {
		t.Errorf("wrapError format = %v", err)
	}
}
