// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"context"
	"strings"
)

// maxSubstitutionDepth caps recursive $() expansion. Once the cap is
// reached, further markers are left as literal text rather than erroring.
const maxSubstitutionDepth = 10

// runLineFunc re-enters the parser/executor for the captured inner command.
type runLineFunc func(ctx context.Context, line string, depth int) (string, error)

// expandSubstitutions replaces every $(...) marker in line with the trimmed
// output of running the inner command. Markers inside single quotes are never
// expanded; an unmatched $( is left as literal text. The depth counter is
// threaded explicitly through each recursive run.
func expandSubstitutions(ctx context.Context, line string, depth int, run runLineFunc) (string, error) {
	if depth >= maxSubstitutionDepth {
		return line, nil
	}

	var sb strings.Builder
	state := quoteNone
	escaped := false

	i := 0
	for i < len(line) {
		ch := line[i]

		if escaped {
			sb.WriteByte(ch)
			escaped = false
			i++
			continue
		}

		switch state {
		case quoteSingle:
			sb.WriteByte(ch)
			if ch == '\'' {
				state = quoteNone
			}
			i++
			continue
		case quoteDouble:
			if ch == '"' {
				state = quoteNone
				sb.WriteByte(ch)
				i++
				continue
			}
			if ch == '\\' {
				escaped = true
				sb.WriteByte(ch)
				i++
				continue
			}
		default:
			switch ch {
			case '\'':
				state = quoteSingle
				sb.WriteByte(ch)
				i++
				continue
			case '"':
				state = quoteDouble
				sb.WriteByte(ch)
				i++
				continue
			case '\\':
				escaped = true
				sb.WriteByte(ch)
				i++
				continue
			}
		}

		if ch == '$' && i+1 < len(line) && line[i+1] == '(' {
			end := matchingParen(line, i+2)
			if end < 0 {
				// Unmatched marker stays literal.
				sb.WriteString(line[i:])
				return sb.String(), nil
			}
			inner := line[i+2 : end]
			out, err := run(ctx, inner, depth+1)
			if err != nil {
				return "", err
			}
			sb.WriteString(strings.TrimSpace(out))
			i = end + 1
			continue
		}

		sb.WriteByte(ch)
		i++
	}

	return sb.String(), nil
}

// matchingParen finds the ) closing a $( whose body starts at start,
// tracking nested $( markers and quote state. Returns -1 if unmatched.
func matchingParen(line string, start int) int {
	depth := 1
	state := quoteNone
	escaped := false

	for i := start; i < len(line); i++ {
		ch := line[i]

		if escaped {
			escaped = false
			continue
		}

		switch state {
		case quoteSingle:
			if ch == '\'' {
				state = quoteNone
			}
			continue
		case quoteDouble:
			switch ch {
			case '"':
				state = quoteNone
			case '\\':
				escaped = true
			}
			continue
		}

		switch {
		case ch == '\\':
			escaped = true
		case ch == '\'':
			state = quoteSingle
		case ch == '"':
			state = quoteDouble
		case ch == '$' && i+1 < len(line) && line[i+1] == '(':
			depth++
		case ch == ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
