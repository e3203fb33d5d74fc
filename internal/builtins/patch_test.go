// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"strings"
	"testing"
)

const helloPatch = `--- hello.txt
+++ hello.txt
@@ -1,3 +1,3 @@
 one
-two
+TWO
 three
`

func TestPatchCommand_StdinUnified(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, map[string]string{
		"/hello.txt": "one\ntwo\nthree\n",
	}, helloPatch)

	if err := newPatchCommand().Run(ctx, []string{"patch"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/hello.txt")
	if err != nil || string(content) != "one\nTWO\nthree\n" {
		t.Errorf("patched content = %q, %v", content, err)
	}
	if !strings.Contains(env.stdout.String(), "patching file hello.txt") {
		t.Errorf("stdout = %q", env.stdout.String())
	}
}

func TestPatchCommand_PatchFileAndReverse(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/hello.txt": "one\nTWO\nthree\n",
		"/fix.patch": helloPatch,
	})

	if err := newPatchCommand().Run(ctx, []string{"patch", "-R", "-i", "fix.patch"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/hello.txt")
	if err != nil || string(content) != "one\ntwo\nthree\n" {
		t.Errorf("reversed content = %q, %v", content, err)
	}
}

func TestPatchCommand_StripAndExplicitTarget(t *testing.T) {
	t.Parallel()

	stripped := strings.ReplaceAll(helloPatch, "--- hello.txt", "--- a/src/hello.txt")
	stripped = strings.ReplaceAll(stripped, "+++ hello.txt", "+++ b/src/hello.txt")

	ctx, env := newTestEnvStdin(t, map[string]string{
		"/src/hello.txt": "one\ntwo\nthree\n",
	}, stripped)

	if err := newPatchCommand().Run(ctx, []string{"patch", "-p1"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/src/hello.txt")
	if err != nil || string(content) != "one\nTWO\nthree\n" {
		t.Errorf("patched content = %q, %v", content, err)
	}

	// Explicit target overrides the headers entirely.
	ctx2, env2 := newTestEnvStdin(t, map[string]string{
		"/other.txt": "one\ntwo\nthree\n",
	}, helloPatch)
	if err := newPatchCommand().Run(ctx2, []string{"patch", "other.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err = env2.fs.ReadFile("/other.txt")
	if err != nil || string(content) != "one\nTWO\nthree\n" {
		t.Errorf("explicit target content = %q, %v", content, err)
	}
}

func TestPatchCommand_OutputFile(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, map[string]string{
		"/hello.txt": "one\ntwo\nthree\n",
	}, helloPatch)

	if err := newPatchCommand().Run(ctx, []string{"patch", "-o", "result.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/result.txt")
	if err != nil || string(content) != "one\nTWO\nthree\n" {
		t.Errorf("output file content = %q, %v", content, err)
	}
	// The original stays untouched.
	content, err = env.fs.ReadFile("/hello.txt")
	if err != nil || string(content) != "one\ntwo\nthree\n" {
		t.Errorf("original content = %q, %v", content, err)
	}
}

func TestPatchCommand_NewFileCreation(t *testing.T) {
	t.Parallel()

	newFile := `--- /dev/null
+++ fresh.txt
@@ -0,0 +1,2 @@
+alpha
+beta
`
	ctx, env := newTestEnvStdin(t, nil, newFile)

	if err := newPatchCommand().Run(ctx, []string{"patch"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/fresh.txt")
	if err != nil || string(content) != "alpha\nbeta\n" {
		t.Errorf("created content = %q, %v", content, err)
	}
}

func TestPatchCommand_ContextMismatchNamesHunk(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestEnvStdin(t, map[string]string{
		"/hello.txt": "completely\nunrelated\ncontent\n",
	}, helloPatch)

	err := newPatchCommand().Run(ctx, []string{"patch"})
	if err == nil || !strings.Contains(err.Error(), "hunk #1") {
		t.Errorf("Run() = %v, want hunk #1 mismatch", err)
	}
	if err != nil && !strings.Contains(err.Error(), "hello.txt") {
		t.Errorf("error should name the target file: %v", err)
	}
}
