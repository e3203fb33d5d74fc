// SPDX-License-Identifier: MPL-2.0

package diff

import (
	"fmt"
	"strings"
)

// DefaultContext is the unified/context format default number of context
// lines.
const DefaultContext = 3

// FormatUnified renders the diff of a and b in unified format with the given
// number of context lines. Equal inputs render as the empty string.
func FormatUnified(oldName, newName string, a, b []string, opts Options, context int) string {
	hunks := BuildHunks(Compute(a, b, opts), context, opts.IgnoreBlankLines)
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range hunks {
		fmt.Fprintf(&sb, "@@ -%s +%s @@\n",
			unifiedRange(h.OldStart, h.OldLines), unifiedRange(h.NewStart, h.NewLines))
		for _, hl := range h.Lines {
			sb.WriteByte(byte(hl.Kind))
			sb.WriteString(hl.Text)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// unifiedRange renders "start,len", omitting ",len" when len is 1.
func unifiedRange(start, length int) string {
	if length == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, length)
}

// FormatNormal renders the diff of a and b in the ed-style normal format.
func FormatNormal(a, b []string, opts Options) string {
	hunks := BuildHunks(Compute(a, b, opts), 0, opts.IgnoreBlankLines)
	var sb strings.Builder
	for _, h := range hunks {
		var deleted, added []string
		for _, hl := range h.Lines {
			switch hl.Kind {
			case LineDeleted:
				deleted = append(deleted, hl.Text)
			case LineAdded:
				added = append(added, hl.Text)
			}
		}

		switch {
		case len(deleted) > 0 && len(added) > 0:
			fmt.Fprintf(&sb, "%sc%s\n",
				normalRange(h.OldStart, h.OldLines), normalRange(h.NewStart, h.NewLines))
			writePrefixed(&sb, "< ", deleted)
			sb.WriteString("---\n")
			writePrefixed(&sb, "> ", added)
		case len(deleted) > 0:
			fmt.Fprintf(&sb, "%sd%d\n", normalRange(h.OldStart, h.OldLines), h.NewStart)
			writePrefixed(&sb, "< ", deleted)
		case len(added) > 0:
			fmt.Fprintf(&sb, "%da%s\n", h.OldStart, normalRange(h.NewStart, h.NewLines))
			writePrefixed(&sb, "> ", added)
		}
	}
	return sb.String()
}

// normalRange renders "start,end" for a 1-based inclusive range, collapsing
// single-line ranges to "start".
func normalRange(start, length int) string {
	if length <= 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, start+length-1)
}

func writePrefixed(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// FormatContext renders the diff of a and b in the three-asterisk context
// format.
func FormatContext(oldName, newName string, a, b []string, opts Options, context int) string {
	hunks := BuildHunks(Compute(a, b, opts), context, opts.IgnoreBlankLines)
	if len(hunks) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*** %s\n--- %s\n", oldName, newName)
	for _, h := range hunks {
		hasDel, hasAdd := false, false
		for _, hl := range h.Lines {
			switch hl.Kind {
			case LineDeleted:
				hasDel = true
			case LineAdded:
				hasAdd = true
			}
		}
		// Replacements mark both sides with "!"; one-sided changes keep
		// their own marker.
		delMark, addMark := "- ", "+ "
		if hasDel && hasAdd {
			delMark, addMark = "! ", "! "
		}

		sb.WriteString("***************\n")
		fmt.Fprintf(&sb, "*** %d,%d ****\n", h.OldStart, h.OldStart+max(h.OldLines, 1)-1)
		if hasDel {
			for _, hl := range h.Lines {
				switch hl.Kind {
				case LineContext:
					writePrefixed(&sb, "  ", []string{hl.Text})
				case LineDeleted:
					writePrefixed(&sb, delMark, []string{hl.Text})
				}
			}
		}
		fmt.Fprintf(&sb, "--- %d,%d ----\n", h.NewStart, h.NewStart+max(h.NewLines, 1)-1)
		if hasAdd {
			for _, hl := range h.Lines {
				switch hl.Kind {
				case LineContext:
					writePrefixed(&sb, "  ", []string{hl.Text})
				case LineAdded:
					writePrefixed(&sb, addMark, []string{hl.Text})
				}
			}
		}
	}
	return sb.String()
}

// FormatBrief reports whether the inputs differ, in the manner of diff -q.
// Equal inputs render as the empty string.
func FormatBrief(oldName, newName string, a, b []string, opts Options) string {
	if len(BuildHunks(Compute(a, b, opts), 0, opts.IgnoreBlankLines)) > 0 {
		return fmt.Sprintf("Files %s and %s differ\n", oldName, newName)
	}
	return ""
}
