// SPDX-License-Identifier: MPL-2.0

package shell

import (
	"path"
	"strings"

	"sandshell/internal/vfs"
	"sandshell/pkg/vpath"
)

// expandGlobs replaces unquoted word tokens containing *, ? or [ with the
// matching entries from the virtual filesystem. Matching is case-sensitive
// and confined to one directory level: the token's directory prefix is
// resolved against dir and the basename pattern is matched against that
// directory's entries in insertion order. A token matching nothing passes
// through unchanged as a single literal token. Only argv words are
// candidates: a redirection target stays literal, since expanding it into
// several tokens would smuggle the extra matches into argv.
func expandGlobs(fs *vfs.FS, dir vpath.Path, tokens []Token) []Token {
	var out []Token
	for i, tok := range tokens {
		if tok.Op || tok.Quoted || !strings.ContainsAny(tok.Text, "*?[") {
			out = append(out, tok)
			continue
		}
		if i > 0 && tokens[i-1].Op {
			if _, redir := redirKinds[tokens[i-1].Text]; redir {
				out = append(out, tok)
				continue
			}
		}

		matches := globMatches(fs, dir, tok.Text)
		if len(matches) == 0 {
			out = append(out, tok)
			continue
		}
		for _, m := range matches {
			out = append(out, Token{Text: m, Pos: tok.Pos})
		}
	}
	return out
}

// globMatches resolves the pattern's directory prefix and matches its
// basename against that directory's children.
func globMatches(fs *vfs.FS, dir vpath.Path, pattern string) []string {
	prefix, base := path.Split(pattern)

	target := vpath.Resolve(dir, vpath.Path(prefix))
	if prefix == "" {
		target = dir
	}

	node := fs.Resolve(target)
	d, ok := node.(*vfs.Dir)
	if !ok {
		return nil
	}

	var matches []string
	for _, child := range d.Children() {
		ok, err := path.Match(base, child.Name())
		if err != nil {
			// Malformed pattern: treat as a literal token.
			return nil
		}
		if ok {
			matches = append(matches, prefix+child.Name())
		}
	}
	return matches
}
