// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"strings"
	"testing"
)

func TestHeadCommand_DefaultTen(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	for i := 1; i <= 15; i++ {
		sb.WriteString("line\n")
	}
	ctx, env := newTestEnvStdin(t, nil, sb.String())

	if err := newHeadCommand().Run(ctx, []string{"head"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := strings.Count(env.stdout.String(), "\n"); got != 10 {
		t.Errorf("line count = %d, want 10", got)
	}
}

func TestHeadCommand_NFlag(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/f.txt": "a\nb\nc\nd\n",
	})

	if err := newHeadCommand().Run(ctx, []string{"head", "-n", "2", "f.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "a\nb\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTailCommand_LastLines(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/f.txt": "a\nb\nc\nd\n",
	})

	if err := newTailCommand().Run(ctx, []string{"tail", "-n", "2", "f.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "c\nd\n" {
		t.Errorf("output = %q", got)
	}
}

func TestTailCommand_FromStart(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "a\nb\nc\nd\n")

	if err := newTailCommand().Run(ctx, []string{"tail", "-n", "+3"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "c\nd\n" {
		t.Errorf("output = %q", got)
	}
}

func TestWcCommand_Default(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "one two\nthree\n")

	if err := newWcCommand().Run(ctx, []string{"wc"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	fields := strings.Fields(env.stdout.String())
	if len(fields) != 3 || fields[0] != "2" || fields[1] != "3" || fields[2] != "14" {
		t.Errorf("output fields = %v", fields)
	}
}

func TestWcCommand_LinesOnly(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnv(t, map[string]string{
		"/f.txt": "a\nb\n",
	})

	if err := newWcCommand().Run(ctx, []string{"wc", "-l", "f.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, "2") || !strings.Contains(out, "f.txt") {
		t.Errorf("output = %q", out)
	}
}

func TestSortCommand_Basic(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "banana\napple\ncherry\n")

	if err := newSortCommand().Run(ctx, []string{"sort"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "apple\nbanana\ncherry\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSortCommand_NumericReverse(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "10\n2\n33\n")

	if err := newSortCommand().Run(ctx, []string{"sort", "-n", "-r"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "33\n10\n2\n" {
		t.Errorf("output = %q", got)
	}
}

func TestSortCommand_Unique(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "b\na\nb\na\n")

	if err := newSortCommand().Run(ctx, []string{"sort", "-u"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "a\nb\n" {
		t.Errorf("output = %q", got)
	}
}

func TestUniqCommand_AdjacentGroups(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "a\na\nb\na\n")

	if err := newUniqCommand().Run(ctx, []string{"uniq"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "a\nb\na\n" {
		t.Errorf("output = %q", got)
	}
}

func TestUniqCommand_CountAndDuplicates(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "a\na\nb\n")

	if err := newUniqCommand().Run(ctx, []string{"uniq", "-c"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	out := env.stdout.String()
	if !strings.Contains(out, "2 a") || !strings.Contains(out, "1 b") {
		t.Errorf("output = %q", out)
	}

	ctx2, env2 := newTestEnvStdin(t, nil, "a\na\nb\n")
	if err := newUniqCommand().Run(ctx2, []string{"uniq", "-d"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env2.stdout.String(); got != "a\n" {
		t.Errorf("-d output = %q", got)
	}
}

func TestTeeCommand_WritesStdoutAndFile(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, nil, "payload\n")

	if err := newTeeCommand().Run(ctx, []string{"tee", "out.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if got := env.stdout.String(); got != "payload\n" {
		t.Errorf("stdout = %q", got)
	}
	content, err := env.fs.ReadFile("/out.txt")
	if err != nil || string(content) != "payload\n" {
		t.Errorf("file content = %q, %v", content, err)
	}
}

func TestTeeCommand_Append(t *testing.T) {
	t.Parallel()

	ctx, env := newTestEnvStdin(t, map[string]string{
		"/out.txt": "first\n",
	}, "second\n")

	if err := newTeeCommand().Run(ctx, []string{"tee", "-a", "out.txt"}); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	content, err := env.fs.ReadFile("/out.txt")
	if err != nil || string(content) != "first\nsecond\n" {
		t.Errorf("file content = %q, %v", content, err)
	}
}
