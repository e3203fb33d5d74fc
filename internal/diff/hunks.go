// SPDX-License-Identifier: MPL-2.0

package diff

import "strings"

type (
	// LineKind tags one hunk line with its role.
	LineKind byte

	// HunkLine is one tagged line inside a hunk.
	HunkLine struct {
		Kind LineKind
		Text string
	}

	// Hunk is a contiguous block of changed lines plus surrounding context.
	// Starts are 1-based; a zero-length side uses the line number before the
	// change, matching unified header conventions.
	Hunk struct {
		OldStart, OldLines int
		NewStart, NewLines int
		Lines              []HunkLine
	}
)

const (
	// LineContext is a line present on both sides.
	LineContext LineKind = ' '
	// LineDeleted is a line present only on the old side.
	LineDeleted LineKind = '-'
	// LineAdded is a line present only on the new side.
	LineAdded LineKind = '+'
)

// flatten expands the run-length script into a tagged line stream, deletions
// before insertions at each position.
func flatten(edits []Edit) []HunkLine {
	var flat []HunkLine
	for _, e := range edits {
		kind := LineContext
		switch e.Op {
		case OpDelete:
			kind = LineDeleted
		case OpInsert:
			kind = LineAdded
		}
		for _, line := range e.Lines {
			flat = append(flat, HunkLine{Kind: kind, Text: line})
		}
	}
	return flat
}

// blankRegion reports whether every changed line in flat[lo:hi] is blank
// (empty or whitespace-only).
func blankRegion(flat []HunkLine, lo, hi int) bool {
	for _, hl := range flat[lo:hi] {
		if hl.Kind != LineContext && strings.TrimSpace(hl.Text) != "" {
			return false
		}
	}
	return true
}

// BuildHunks groups the edit script into hunks carrying up to context lines
// of surrounding equal text. Change regions separated by no more than
// 2*context equal lines share a hunk. With suppressBlank, regions whose
// changed lines are all blank produce no hunk.
func BuildHunks(edits []Edit, context int, suppressBlank bool) []Hunk {
	flat := flatten(edits)

	// Change regions as [lo, hi) index pairs into flat.
	var regions [][2]int
	for i := 0; i < len(flat); {
		if flat[i].Kind == LineContext {
			i++
			continue
		}
		lo := i
		for i < len(flat) && flat[i].Kind != LineContext {
			i++
		}
		if suppressBlank && blankRegion(flat, lo, i) {
			continue
		}
		regions = append(regions, [2]int{lo, i})
	}
	if len(regions) == 0 {
		return nil
	}

	// Merge regions whose equal-line gap fits inside shared context.
	merged := [][2]int{regions[0]}
	for _, r := range regions[1:] {
		last := &merged[len(merged)-1]
		if r[0]-last[1] <= 2*context {
			last[1] = r[1]
		} else {
			merged = append(merged, r)
		}
	}

	// Prefix counts of old-side and new-side lines for start computation.
	oldBefore := make([]int, len(flat)+1)
	newBefore := make([]int, len(flat)+1)
	for i, hl := range flat {
		oldBefore[i+1] = oldBefore[i]
		newBefore[i+1] = newBefore[i]
		if hl.Kind != LineAdded {
			oldBefore[i+1]++
		}
		if hl.Kind != LineDeleted {
			newBefore[i+1]++
		}
	}

	hunks := make([]Hunk, 0, len(merged))
	for _, r := range merged {
		lo := max(0, r[0]-context)
		hi := min(len(flat), r[1]+context)

		h := Hunk{Lines: flat[lo:hi]}
		for _, hl := range h.Lines {
			if hl.Kind != LineAdded {
				h.OldLines++
			}
			if hl.Kind != LineDeleted {
				h.NewLines++
			}
		}
		h.OldStart = oldBefore[lo] + 1
		if h.OldLines == 0 {
			h.OldStart = oldBefore[lo]
		}
		h.NewStart = newBefore[lo] + 1
		if h.NewLines == 0 {
			h.NewStart = newBefore[lo]
		}
		hunks = append(hunks, h)
	}
	return hunks
}
