// SPDX-License-Identifier: MPL-2.0

package diff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FilePatch is the parsed patch for one target file.
type FilePatch struct {
	// OldPath and NewPath are the header-derived paths ("a/src/x.go"). Both
	// are empty for normal-format patches, which carry no file headers.
	OldPath, NewPath string
	Hunks            []Hunk
}

var (
	unifiedHunkRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)
	normalCmdRe   = regexp.MustCompile(`^(\d+)(?:,(\d+))?([acd])(\d+)(?:,(\d+))?$`)
)

// ParsePatch parses unified or normal diff text into per-file patches. The
// format is detected from the first structural line. A malformed header or
// hunk is a parse error naming the offending line.
func ParsePatch(text string) ([]FilePatch, error) {
	lines := SplitLines(text)
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "--- "):
			return parseUnified(lines)
		case normalCmdRe.MatchString(line):
			return parseNormal(lines)
		}
	}
	return nil, fmt.Errorf("patch: no diff headers or change commands found")
}

// headerPath extracts the path from a "--- path" or "+++ path" header,
// dropping any timestamp after a tab.
func headerPath(header string) string {
	p := header[4:]
	if i := strings.IndexByte(p, '\t'); i >= 0 {
		p = p[:i]
	}
	return strings.TrimSpace(p)
}

func parseUnified(lines []string) ([]FilePatch, error) {
	var patches []FilePatch
	var cur *FilePatch

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		switch {
		case strings.HasPrefix(line, "--- "):
			if i+1 >= len(lines) || !strings.HasPrefix(lines[i+1], "+++ ") {
				return nil, fmt.Errorf("patch line %d: %q not followed by a +++ header", i+1, line)
			}
			patches = append(patches, FilePatch{
				OldPath: headerPath(line),
				NewPath: headerPath(lines[i+1]),
			})
			cur = &patches[len(patches)-1]
			i++

		case strings.HasPrefix(line, "@@"):
			m := unifiedHunkRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("patch line %d: malformed hunk header %q", i+1, line)
			}
			if cur == nil {
				return nil, fmt.Errorf("patch line %d: hunk header before file headers", i+1)
			}
			h := Hunk{
				OldStart: atoi(m[1]),
				OldLines: atoiDefault(m[2], 1),
				NewStart: atoi(m[3]),
				NewLines: atoiDefault(m[4], 1),
			}
			body, next, err := parseUnifiedBody(lines, i+1, h.OldLines, h.NewLines)
			if err != nil {
				return nil, err
			}
			h.Lines = body
			cur.Hunks = append(cur.Hunks, h)
			i = next - 1
		}
	}
	if len(patches) == 0 {
		return nil, fmt.Errorf("patch: no file headers found")
	}
	return patches, nil
}

// parseUnifiedBody consumes hunk body lines starting at index start until the
// declared old and new line counts are satisfied.
func parseUnifiedBody(lines []string, start, oldLeft, newLeft int) ([]HunkLine, int, error) {
	var body []HunkLine
	i := start
	for oldLeft > 0 || newLeft > 0 {
		if i >= len(lines) {
			return nil, 0, fmt.Errorf("patch line %d: hunk body truncated", i)
		}
		line := lines[i]
		if strings.HasPrefix(line, `\`) {
			// "\ No newline at end of file" marker.
			i++
			continue
		}
		var kind LineKind
		var text string
		switch {
		case line == "":
			// Some producers emit context blank lines with no leading space.
			kind, text = LineContext, ""
		case line[0] == ' ':
			kind, text = LineContext, line[1:]
		case line[0] == '-':
			kind, text = LineDeleted, line[1:]
		case line[0] == '+':
			kind, text = LineAdded, line[1:]
		default:
			return nil, 0, fmt.Errorf("patch line %d: unexpected hunk body line %q", i+1, line)
		}
		body = append(body, HunkLine{Kind: kind, Text: text})
		if kind != LineAdded {
			oldLeft--
		}
		if kind != LineDeleted {
			newLeft--
		}
		if oldLeft < 0 || newLeft < 0 {
			return nil, 0, fmt.Errorf("patch line %d: hunk body exceeds declared lengths", i+1)
		}
		i++
	}
	return body, i, nil
}

func parseNormal(lines []string) ([]FilePatch, error) {
	patch := FilePatch{}
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		m := normalCmdRe.FindStringSubmatch(line)
		if m == nil {
			if line == "---" || strings.HasPrefix(line, "< ") || strings.HasPrefix(line, "> ") {
				return nil, fmt.Errorf("patch line %d: body line %q outside a change command", i+1, line)
			}
			continue
		}

		oldStart, oldEnd := atoi(m[1]), atoiDefault(m[2], atoi(m[1]))
		newStart, newEnd := atoi(m[4]), atoiDefault(m[5], atoi(m[4]))
		cmd := m[3]

		h := Hunk{}
		var del, add []string
		var err error
		switch cmd {
		case "c":
			del, i, err = readNormalLines(lines, i+1, "< ", oldEnd-oldStart+1)
			if err != nil {
				return nil, err
			}
			if i >= len(lines) || lines[i] != "---" {
				return nil, fmt.Errorf("patch line %d: expected --- separator in change command", i+1)
			}
			add, i, err = readNormalLines(lines, i+1, "> ", newEnd-newStart+1)
			if err != nil {
				return nil, err
			}
			h.OldStart, h.OldLines = oldStart, len(del)
			h.NewStart, h.NewLines = newStart, len(add)
		case "d":
			del, i, err = readNormalLines(lines, i+1, "< ", oldEnd-oldStart+1)
			if err != nil {
				return nil, err
			}
			h.OldStart, h.OldLines = oldStart, len(del)
			h.NewStart, h.NewLines = newStart, 0
		case "a":
			add, i, err = readNormalLines(lines, i+1, "> ", newEnd-newStart+1)
			if err != nil {
				return nil, err
			}
			h.OldStart, h.OldLines = oldStart, 0
			h.NewStart, h.NewLines = newStart, len(add)
		}
		i-- // loop increment compensates
		for _, text := range del {
			h.Lines = append(h.Lines, HunkLine{Kind: LineDeleted, Text: text})
		}
		for _, text := range add {
			h.Lines = append(h.Lines, HunkLine{Kind: LineAdded, Text: text})
		}
		patch.Hunks = append(patch.Hunks, h)
	}
	if len(patch.Hunks) == 0 {
		return nil, fmt.Errorf("patch: no change commands found")
	}
	return []FilePatch{patch}, nil
}

// readNormalLines consumes count body lines with the given prefix.
func readNormalLines(lines []string, start int, prefix string, count int) ([]string, int, error) {
	out := make([]string, 0, count)
	i := start
	for ; len(out) < count; i++ {
		if i >= len(lines) || !strings.HasPrefix(lines[i], prefix) {
			return nil, 0, fmt.Errorf("patch line %d: expected %d more %q lines", i+1, count-len(out), prefix)
		}
		out = append(out, lines[i][len(prefix):])
	}
	return out, i, nil
}

// StripPath removes n leading path segments from a diff header path, the way
// patch -p does.
func StripPath(p string, n int) string {
	if n <= 0 {
		return p
	}
	segs := strings.Split(p, "/")
	if n >= len(segs) {
		return segs[len(segs)-1]
	}
	return strings.Join(segs[n:], "/")
}

// Target picks the patch target path from the file headers: the new-side path
// unless it is /dev/null, then the old side. Returns "" when neither header
// names a usable path.
func (fp FilePatch) Target(strip int) string {
	for _, p := range []string{fp.NewPath, fp.OldPath} {
		if p == "" || p == "/dev/null" {
			continue
		}
		return StripPath(p, strip)
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return atoi(s)
}
