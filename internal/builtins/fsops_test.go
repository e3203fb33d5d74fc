// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"strings"
	"testing"

	"sandshell/internal/vfs"
	"sandshell/pkg/vpath"
)

func TestMkdirCommand_Parents(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, nil)

	if err := newMkdirCommand().Run(ctx, []string{"mkdir", "-p", "a/b/c"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if _, ok := env.fs.Resolve("/a/b/c").(*vfs.Dir); !ok {
		t.Error("nested directory was not created")
	}
}

func TestMkdirCommand_MissingParentFails(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestEnv(t, nil)

	if err := newMkdirCommand().Run(ctx, []string{"mkdir", "a/b"}); err == nil {
		t.Error("mkdir without -p should fail on missing parent")
	}
}

func TestRmCommand_RecursiveAndForce(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/dir/inner.txt": "x",
	})

	if err := newRmCommand().Run(ctx, []string{"rm", "dir"}); err == nil {
		t.Error("rm on non-empty directory without -r should fail")
	}
	if err := newRmCommand().Run(ctx, []string{"rm", "-r", "dir"}); err != nil {
		t.Fatalf("rm -r returned error: %v", err)
	}
	if env.fs.Resolve("/dir") != nil {
		t.Error("directory still present after rm -r")
	}

	if err := newRmCommand().Run(ctx, []string{"rm", "-f", "ghost.txt"}); err != nil {
		t.Errorf("rm -f on missing file = %v, want nil", err)
	}
}

func TestCpCommand_FileAndDirectory(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/src/one.txt": "one\n",
	})

	if err := newCpCommand().Run(ctx, []string{"cp", "src/one.txt", "copy.txt"}); err != nil {
		t.Fatalf("cp file returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/copy.txt")
	if err != nil || string(content) != "one\n" {
		t.Errorf("copied content = %q, %v", content, err)
	}

	if err := newCpCommand().Run(ctx, []string{"cp", "src", "dst"}); err == nil {
		t.Error("cp directory without -r should fail")
	}
	if err := newCpCommand().Run(ctx, []string{"cp", "-r", "src", "dst"}); err != nil {
		t.Fatalf("cp -r returned error: %v", err)
	}
	if _, err := env.fs.ReadFile("/dst/one.txt"); err != nil {
		t.Errorf("recursive copy missing file: %v", err)
	}
}

func TestMvCommand_Rename(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/old.txt": "data",
	})

	if err := (&mvCommand{name: "mv"}).Run(ctx, []string{"mv", "old.txt", "new.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if env.fs.Resolve("/old.txt") != nil {
		t.Error("source still present after mv")
	}
	if content, err := env.fs.ReadFile("/new.txt"); err != nil || string(content) != "data" {
		t.Errorf("moved content = %q, %v", content, err)
	}
}

func TestTouchCommand_CreatesEmptyFile(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, nil)

	if err := (&touchCommand{name: "touch"}).Run(ctx, []string{"touch", "note.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	f, ok := env.fs.Resolve("/note.txt").(*vfs.File)
	if !ok || f.Size() != 0 {
		t.Errorf("touch result = %v", f)
	}
}

func TestLsCommand_InsertionOrder(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/zeta.txt":  "",
		"/alpha.txt": "",
	})

	// Map iteration order is random, so rebuild deterministically.
	if err := env.fs.Remove("/zeta.txt", false); err != nil {
		t.Fatal(err)
	}
	if err := env.fs.Remove("/alpha.txt", false); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"zeta.txt", "alpha.txt", "mid.txt"} {
		if err := env.fs.CreateFile(vpath.Path("/"+name), nil); err != nil {
			t.Fatal(err)
		}
	}

	if err := newLsCommand().Run(ctx, []string{"ls"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "zeta.txt\nalpha.txt\nmid.txt\n" {
		t.Errorf("output = %q", got)
	}
}

func TestLsCommand_MissingTarget(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestEnv(t, nil)

	err := newLsCommand().Run(ctx, []string{"ls", "ghost"})
	if err == nil || !strings.Contains(err.Error(), "no such file or directory") {
		t.Errorf("Run(ghost) = %v", err)
	}
}

func TestPwdCommand(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, nil)

	if err := (&pwdCommand{name: "pwd"}).Run(ctx, []string{"pwd"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "/\n" {
		t.Errorf("output = %q", got)
	}
}
