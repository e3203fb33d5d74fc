// SPDX-License-Identifier: MPL-2.0

package shell

import "strings"

// splitHeredoc separates a raw multi-line input into the command line and a
// captured here-document body.
//
// The command line is the first physical line. When it contains an unquoted
// << operator, the following lines up to (not including) the terminator line
// become the heredoc content. A terminator line may carry trailing tokens
// (typically a redirection, "EOF > out.txt"); those are appended back onto
// the command line so they parse as ordinary stage tokens.
//
// When no heredoc operator is present the input is returned unchanged with a
// nil heredoc.
func splitHeredoc(input string) (string, *Heredoc) {
	nl := strings.IndexByte(input, '\n')
	if nl < 0 {
		return input, nil
	}

	cmdLine := input[:nl]
	delim, ok := lineHeredocDelim(cmdLine)
	if !ok {
		return input, nil
	}

	body := strings.Split(input[nl+1:], "\n")
	var content []string
	for _, line := range body {
		if line == delim {
			return cmdLine, &Heredoc{Delimiter: delim, Content: strings.Join(content, "\n")}
		}
		// Inline form: the terminator may carry trailing tokens that
		// belong to the command, not to the body.
		if rest, found := strings.CutPrefix(line, delim); found && rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			return cmdLine + rest, &Heredoc{Delimiter: delim, Content: strings.Join(content, "\n")}
		}
		content = append(content, line)
	}

	// Unterminated heredoc: lenient, the whole remainder is the body.
	return cmdLine, &Heredoc{Delimiter: delim, Content: strings.Join(content, "\n")}
}

// splitScript breaks a multi-line input into executable chunks, keeping a
// heredoc body and its terminator attached to the command line that opened
// it. Blank lines are dropped.
func splitScript(input string) []string {
	lines := strings.Split(input, "\n")
	var chunks []string

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			continue
		}

		delim, ok := lineHeredocDelim(line)
		if !ok {
			chunks = append(chunks, line)
			continue
		}

		chunk := []string{line}
		for i++; i < len(lines); i++ {
			chunk = append(chunk, lines[i])
			if lines[i] == delim || strings.HasPrefix(lines[i], delim+" ") || strings.HasPrefix(lines[i], delim+"\t") {
				break
			}
		}
		chunks = append(chunks, strings.Join(chunk, "\n"))
	}
	return chunks
}

// PendingHeredoc reports whether line opens a heredoc and, if so, the
// delimiter that terminates it. Interactive front-ends use this to keep
// reading body lines before submitting the full block to a Runner.
func PendingHeredoc(line string) (string, bool) {
	return lineHeredocDelim(line)
}

// lineHeredocDelim tokenizes a command line and returns the delimiter of its
// heredoc redirection, if one is present.
func lineHeredocDelim(line string) (string, bool) {
	tokens := Tokenize(line)
	for i, tok := range tokens {
		if tok.Op && tok.Text == "<<" && i+1 < len(tokens) && !tokens[i+1].Op {
			return tokens[i+1].Text, true
		}
	}
	return "", false
}
