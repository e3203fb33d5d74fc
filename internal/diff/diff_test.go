// SPDX-License-Identifier: MPL-2.0

package diff

import (
	"errors"
	"reflect"
	"testing"
)

func TestCompute_RunLengthScript(t *testing.T) {
	t.Parallel()

	a := []string{"one", "two", "three", "four"}
	b := []string{"one", "2", "three", "four", "five"}

	edits := Compute(a, b, Options{})
	want := []Edit{
		{Op: OpEqual, Lines: []string{"one"}},
		{Op: OpDelete, Lines: []string{"two"}},
		{Op: OpInsert, Lines: []string{"2"}},
		{Op: OpEqual, Lines: []string{"three", "four"}},
		{Op: OpInsert, Lines: []string{"five"}},
	}
	if !reflect.DeepEqual(edits, want) {
		t.Errorf("Compute() = %+v, want %+v", edits, want)
	}
}

func TestCompute_EqualInputs(t *testing.T) {
	t.Parallel()

	a := []string{"same", "lines"}
	edits := Compute(a, a, Options{})
	if Changed(edits) {
		t.Errorf("Compute(a, a) reported changes: %+v", edits)
	}
}

func TestCompute_KeyNormalizationNeverAltersEmittedText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		a, b []string
	}{
		{"ignore case", Options{IgnoreCase: true}, []string{"Hello World"}, []string{"hello world"}},
		{"ignore all space", Options{IgnoreAllSpace: true}, []string{"a b\tc"}, []string{"abc"}},
		{"ignore space change", Options{IgnoreSpaceChange: true}, []string{"a   b  c"}, []string{"a b c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			edits := Compute(tt.a, tt.b, tt.opts)
			if Changed(edits) {
				t.Fatalf("lines should compare equal under %+v, got %+v", tt.opts, edits)
			}
			// The emitted text is the old side's original text, untouched.
			if edits[0].Lines[0] != tt.a[0] {
				t.Errorf("emitted %q, want original %q", edits[0].Lines[0], tt.a[0])
			}
		})
	}
}

func TestCompute_IgnoreSpaceChangeStillSeesRealChanges(t *testing.T) {
	t.Parallel()

	edits := Compute([]string{"a b"}, []string{"a c"}, Options{IgnoreSpaceChange: true})
	if !Changed(edits) {
		t.Error("distinct words compared equal under IgnoreSpaceChange")
	}
}

func TestBuildHunks_IgnoreBlankLines(t *testing.T) {
	t.Parallel()

	a := []string{"one", "two"}
	b := []string{"one", "", "two"}

	hunks := BuildHunks(Compute(a, b, Options{}), 1, true)
	if len(hunks) != 0 {
		t.Errorf("blank-only change produced hunks: %+v", hunks)
	}

	hunks = BuildHunks(Compute(a, b, Options{}), 1, false)
	if len(hunks) != 1 {
		t.Errorf("without suppression want 1 hunk, got %d", len(hunks))
	}
}

func TestSplitJoinLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text  string
		lines []string
	}{
		{"", nil},
		{"one\n", []string{"one"}},
		{"one\ntwo\n", []string{"one", "two"}},
		{"no trailing", []string{"no trailing"}},
		{"a\n\nb\n", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		if got := SplitLines(tt.text); !reflect.DeepEqual(got, tt.lines) {
			t.Errorf("SplitLines(%q) = %v, want %v", tt.text, got, tt.lines)
		}
	}
	if got := JoinLines([]string{"a", "b"}); got != "a\nb\n" {
		t.Errorf("JoinLines() = %q, want %q", got, "a\nb\n")
	}
}

// applyPatch(A, diff(A,B)) == B, and the reverse application restores A.
func TestRoundTrip_ForwardAndReverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b []string
	}{
		{
			"replace middle",
			[]string{"one", "two", "three"},
			[]string{"one", "2", "three"},
		},
		{
			"append and prepend",
			[]string{"b", "c"},
			[]string{"a", "b", "c", "d"},
		},
		{
			"delete everything",
			[]string{"x", "y"},
			nil,
		},
		{
			"create from empty",
			nil,
			[]string{"fresh"},
		},
		{
			"multiple hunks",
			[]string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
			[]string{"1", "two", "3", "4", "5", "6", "7", "8", "9", "10", "eleven", "12"},
		},
		{
			"repeated lines",
			[]string{"dup", "dup", "mid", "dup"},
			[]string{"dup", "mid", "dup", "dup"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hunks := BuildHunks(Compute(tt.a, tt.b, Options{}), DefaultContext, false)

			got, err := Apply(tt.a, hunks, false)
			if err != nil {
				t.Fatalf("forward Apply() error = %v", err)
			}
			if !equalLines(got, tt.b) {
				t.Errorf("forward Apply() = %v, want %v", got, tt.b)
			}

			restored, err := Apply(tt.b, hunks, true)
			if err != nil {
				t.Fatalf("reverse Apply() error = %v", err)
			}
			if !equalLines(restored, tt.a) {
				t.Errorf("reverse Apply() = %v, want %v", restored, tt.a)
			}
		})
	}
}

// Applying a forward patch to an already-patched file must fail with a hunk
// context mismatch, never silently double-apply.
func TestApply_NotIdempotent(t *testing.T) {
	t.Parallel()

	a := []string{"alpha", "beta", "gamma"}
	b := []string{"alpha", "BETA", "gamma"}
	hunks := BuildHunks(Compute(a, b, Options{}), DefaultContext, false)

	once, err := Apply(a, hunks, false)
	if err != nil {
		t.Fatalf("first Apply() error = %v", err)
	}

	_, err = Apply(once, hunks, false)
	var hunkErr *HunkError
	if err == nil {
		t.Fatal("second Apply() succeeded, want context mismatch")
	}
	if !errors.As(err, &hunkErr) {
		t.Fatalf("second Apply() error = %v, want *HunkError", err)
	}
	if hunkErr.Index != 1 {
		t.Errorf("HunkError.Index = %d, want 1", hunkErr.Index)
	}
}

func TestApply_AnchorDrift(t *testing.T) {
	t.Parallel()

	// The target gained two lines at the top, so hunk positions are shifted
	// relative to the header; the anchor scan must still find them.
	a := []string{"ctx1", "ctx2", "old", "ctx3"}
	b := []string{"ctx1", "ctx2", "new", "ctx3"}
	hunks := BuildHunks(Compute(a, b, Options{}), DefaultContext, false)

	shifted := append([]string{"extra1", "extra2"}, a...)
	got, err := Apply(shifted, hunks, false)
	if err != nil {
		t.Fatalf("Apply() on shifted target error = %v", err)
	}
	want := append([]string{"extra1", "extra2"}, b...)
	if !equalLines(got, want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
