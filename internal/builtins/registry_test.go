// SPDX-License-Identifier: MPL-2.0

package builtins

import (
	"context"
	"strings"
	"testing"
)

type fakeCommand struct {
	name string
	ran  bool
}

func (c *fakeCommand) Name() string                { return c.name }
func (c *fakeCommand) SupportedFlags() []FlagInfo  { return nil }
func (c *fakeCommand) Run(context.Context, []string) error {
	c.ran = true
	return nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	cmd := &fakeCommand{name: "probe"}
	r.Register(cmd)

	got, ok := r.Lookup("probe")
	if !ok || got != cmd {
		t.Fatalf("Lookup(probe) = %v, %v", got, ok)
	}
	if _, ok := r.Lookup("absent"); ok {
		t.Error("Lookup(absent) should report not found")
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register(&fakeCommand{name: "dup"})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	r.Register(&fakeCommand{name: "dup"})
}

func TestRegistry_NamesSorted(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(&fakeCommand{name: name})
	}

	names := r.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}

func TestRegistry_RunNotFound(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.Run(context.Background(), "nosuch", []string{"nosuch"})
	if err == nil || !strings.Contains(err.Error(), "command not found") {
		t.Errorf("Run(nosuch) = %v, want command not found", err)
	}
}

func TestDefaultRegistry_CoreCommandsPresent(t *testing.T) {
	t.Parallel()

	for _, name := range []string{
		"cat", "cp", "diff", "echo", "find", "grep", "head", "ls",
		"mkdir", "mv", "patch", "pwd", "rm", "sort", "tail", "tee",
		"touch", "true", "false", "uniq", "wc",
	} {
		if _, ok := DefaultRegistry.Lookup(name); !ok {
			t.Errorf("DefaultRegistry missing %q", name)
		}
	}
}
