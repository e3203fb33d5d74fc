// SPDX-License-Identifier: MPL-2.0

package diff

import "fmt"

// HunkError reports a hunk whose anchor did not match the target content.
type HunkError struct {
	// Index is the 1-based hunk number within its file patch.
	Index int
	// Line is the 1-based target line where the anchor was expected.
	Line int
}

// Error implements the error interface.
func (e *HunkError) Error() string {
	return fmt.Sprintf("hunk #%d failed: context mismatch near line %d", e.Index, e.Line)
}

// Apply applies hunks to the target lines and returns the patched result.
// With reverse, added and deleted roles swap, undoing a forward patch. A hunk
// whose anchor (context plus deletion lines) cannot be located is a
// *HunkError; the input is never partially applied on failure.
func Apply(lines []string, hunks []Hunk, reverse bool) ([]string, error) {
	if reverse {
		hunks = reverseHunks(hunks)
	}

	var out []string
	pos := 0 // next unconsumed index into lines
	for idx, h := range hunks {
		anchor := oldSide(h)
		matchPos, ok := locate(lines, pos, h, anchor)
		if !ok {
			return nil, &HunkError{Index: idx + 1, Line: h.OldStart}
		}

		out = append(out, lines[pos:matchPos]...)
		src := matchPos
		for _, hl := range h.Lines {
			switch hl.Kind {
			case LineContext:
				out = append(out, lines[src])
				src++
			case LineDeleted:
				src++
			case LineAdded:
				out = append(out, hl.Text)
			}
		}
		pos = src
	}
	out = append(out, lines[pos:]...)
	return out, nil
}

// oldSide extracts the hunk's anchor: the lines the target must currently
// contain (context plus deletions, in order).
func oldSide(h Hunk) []string {
	var anchor []string
	for _, hl := range h.Lines {
		if hl.Kind != LineAdded {
			anchor = append(anchor, hl.Text)
		}
	}
	return anchor
}

// locate finds where the hunk's anchor occurs in lines, at or after pos. The
// header position is tried first; otherwise the anchor is scanned forward. A
// pure-insertion hunk has an empty anchor and anchors to its header position
// directly.
func locate(lines []string, pos int, h Hunk, anchor []string) (int, bool) {
	if len(anchor) == 0 {
		// OldStart names the line *after which* to insert, so the 0-based
		// insertion index equals it.
		at := h.OldStart
		if at < pos || at > len(lines) {
			return 0, false
		}
		return at, true
	}

	if expected := h.OldStart - 1; expected >= pos && matchAt(lines, expected, anchor) {
		return expected, true
	}
	for at := pos; at+len(anchor) <= len(lines); at++ {
		if matchAt(lines, at, anchor) {
			return at, true
		}
	}
	return 0, false
}

func matchAt(lines []string, at int, anchor []string) bool {
	if at+len(anchor) > len(lines) {
		return false
	}
	for i, want := range anchor {
		if lines[at+i] != want {
			return false
		}
	}
	return true
}

// reverseHunks swaps the roles of added and deleted lines, and of the old and
// new ranges, producing the inverse patch.
func reverseHunks(hunks []Hunk) []Hunk {
	out := make([]Hunk, len(hunks))
	for i, h := range hunks {
		r := Hunk{
			OldStart: h.NewStart, OldLines: h.NewLines,
			NewStart: h.OldStart, NewLines: h.OldLines,
		}
		r.Lines = make([]HunkLine, len(h.Lines))
		for j, hl := range h.Lines {
			switch hl.Kind {
			case LineDeleted:
				hl.Kind = LineAdded
			case LineAdded:
				hl.Kind = LineDeleted
			}
			r.Lines[j] = hl
		}
		out[i] = r
	}
	return out
}
