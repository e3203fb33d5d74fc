// SPDX-License-Identifier: MPL-2.0

// Package diff implements the line-oriented diff and patch engine used by the
// diff and patch builtins. Two line arrays are aligned via their longest
// common subsequence into a run-length edit script; the script renders in the
// normal, unified, context, and brief formats, and the patch side parses
// unified or normal diff text back into hunks and applies them to a target.
package diff

import "strings"

type (
	// Op classifies one run of an edit script.
	Op int

	// Edit is one run of consecutive lines sharing an operation. The text
	// carried here is always the original, un-normalized text: comparison
	// options only affect the equality key, never what gets emitted.
	Edit struct {
		Op    Op
		Lines []string
	}

	// Options control the comparison key used for line equality. They never
	// alter emitted text.
	Options struct {
		// IgnoreCase lowercases both sides before comparing.
		IgnoreCase bool
		// IgnoreAllSpace strips every whitespace character before comparing.
		IgnoreAllSpace bool
		// IgnoreSpaceChange collapses runs of whitespace to a single space
		// before comparing.
		IgnoreSpaceChange bool
		// IgnoreBlankLines suppresses hunks whose only changes are blank
		// lines.
		IgnoreBlankLines bool
	}
)

const (
	// OpEqual marks lines present on both sides.
	OpEqual Op = iota
	// OpDelete marks lines present only on the old side.
	OpDelete
	// OpInsert marks lines present only on the new side.
	OpInsert
)

// key computes the comparison key for a line under the options.
func (o Options) key(line string) string {
	if o.IgnoreAllSpace {
		line = strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
				return -1
			}
			return r
		}, line)
	} else if o.IgnoreSpaceChange {
		line = strings.Join(strings.Fields(line), " ")
	}
	if o.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}

// Compute aligns a and b via longest common subsequence and returns the
// run-length edit script transforming a into b. Deletions precede insertions
// at the same position.
func Compute(a, b []string, opts Options) []Edit {
	ka := make([]string, len(a))
	for i, line := range a {
		ka[i] = opts.key(line)
	}
	kb := make([]string, len(b))
	for i, line := range b {
		kb[i] = opts.key(line)
	}

	// lcs[i][j] = length of the LCS of ka[i:] and kb[j:].
	lcs := make([][]int, len(ka)+1)
	for i := range lcs {
		lcs[i] = make([]int, len(kb)+1)
	}
	for i := len(ka) - 1; i >= 0; i-- {
		for j := len(kb) - 1; j >= 0; j-- {
			if ka[i] == kb[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	var edits []Edit
	push := func(op Op, line string) {
		if n := len(edits); n > 0 && edits[n-1].Op == op {
			edits[n-1].Lines = append(edits[n-1].Lines, line)
			return
		}
		edits = append(edits, Edit{Op: op, Lines: []string{line}})
	}

	i, j := 0, 0
	for i < len(ka) && j < len(kb) {
		switch {
		case ka[i] == kb[j]:
			push(OpEqual, a[i])
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			push(OpDelete, a[i])
			i++
		default:
			push(OpInsert, b[j])
			j++
		}
	}
	for ; i < len(ka); i++ {
		push(OpDelete, a[i])
	}
	for ; j < len(kb); j++ {
		push(OpInsert, b[j])
	}
	return edits
}

// Changed reports whether the script contains any non-equal run.
func Changed(edits []Edit) bool {
	for _, e := range edits {
		if e.Op != OpEqual {
			return true
		}
	}
	return false
}

// SplitLines splits text into lines without treating a trailing newline as an
// extra empty line. Empty text has no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// JoinLines is the inverse of SplitLines: lines joined by newlines with one
// trailing newline, or the empty string for no lines.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
