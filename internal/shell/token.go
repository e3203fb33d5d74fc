// SPDX-License-Identifier: MPL-2.0

package shell

import "strings"

type (
	// Token is one word or operator produced by the tokenizer. Quote
	// characters are consumed during scanning and never retained in Text.
	Token struct {
		// Text is the token content with quoting resolved.
		Text string
		// Op marks shell operators (|, ||, &&, ;, >, >>, <, <<, 2>, &>, >&).
		// Operators are only recognized outside quotes.
		Op bool
		// Quoted marks tokens that were wholly or partially quoted or
		// escaped. Quoted tokens never participate in glob expansion.
		Quoted bool
		// Pos is the byte offset of the token start in the input line.
		Pos int
	}

	// quoteState tracks which quoting mode the scanner is in.
	quoteState int
)

const (
	quoteNone quoteState = iota
	quoteSingle
	quoteDouble
)

// operators the tokenizer recognizes, longest first so multi-character
// operators win over their prefixes.
var operators = []string{"||", "&&", "&>", ">>", ">&", "<<", "|", ";", ">", "<"}

// Tokenize splits a command line into word and operator tokens.
//
// Single quotes suppress all special meaning including escapes. Double quotes
// allow backslash escapes and let substitution markers pass through untouched.
// Outside quotes a backslash makes the next character literal. Whitespace
// separates tokens; an unterminated quote is tolerated and runs to the end of
// the line.
func Tokenize(line string) []Token {
	var tokens []Token
	var cur strings.Builder
	state := quoteNone
	escaped := false
	quoted := false
	start := -1

	flush := func() {
		if cur.Len() == 0 && !quoted {
			return
		}
		tokens = append(tokens, Token{Text: cur.String(), Quoted: quoted, Pos: start})
		cur.Reset()
		quoted = false
		start = -1
	}

	i := 0
	for i < len(line) {
		ch := line[i]

		if escaped {
			if start < 0 {
				start = i - 1
			}
			cur.WriteByte(ch)
			escaped = false
			i++
			continue
		}

		switch state {
		case quoteSingle:
			if ch == '\'' {
				state = quoteNone
			} else {
				cur.WriteByte(ch)
			}
			i++
			continue
		case quoteDouble:
			switch ch {
			case '"':
				state = quoteNone
			case '\\':
				escaped = true
			default:
				cur.WriteByte(ch)
			}
			i++
			continue
		}

		switch {
		case ch == '\\':
			escaped = true
			quoted = true
			if start < 0 {
				start = i
			}
			i++
		case ch == '\'':
			state = quoteSingle
			quoted = true
			if start < 0 {
				start = i
			}
			i++
		case ch == '"':
			state = quoteDouble
			quoted = true
			if start < 0 {
				start = i
			}
			i++
		case ch == ' ' || ch == '\t':
			flush()
			i++
		case ch == '>' && cur.String() == "2" && !quoted:
			// "2>" is only an operator when the bare word so far is
			// exactly the digit 2.
			cur.Reset()
			tokens = append(tokens, Token{Text: "2>", Op: true, Pos: i - 1})
			start = -1
			i++
		default:
			if op := matchOperator(line[i:]); op != "" {
				flush()
				tokens = append(tokens, Token{Text: op, Op: true, Pos: i})
				i += len(op)
				continue
			}
			if start < 0 {
				start = i
			}
			cur.WriteByte(ch)
			i++
		}
	}

	// Lenient handling of unterminated quotes and trailing escapes: whatever
	// accumulated is emitted as literal text.
	flush()

	return tokens
}

// matchOperator returns the longest operator prefix of s, or "".
func matchOperator(s string) string {
	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}

// Texts returns just the token strings, mainly for tests and diagnostics.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}
