// SPDX-License-Identifier: MPL-2.0

package shell

import "fmt"

type (
	// Connector describes the relationship between a stage and the stage
	// that follows it.
	Connector int

	// RedirKind classifies a redirection operator.
	RedirKind int

	// Redirection is one operator+target pair attached to a stage. For
	// heredocs the target is the delimiter rather than a path.
	Redirection struct {
		Kind   RedirKind
		Target string
	}

	// Heredoc is a captured here-document body. Tokens riding on the
	// terminator line (such as a trailing redirection) are re-attached to
	// the command line by the heredoc splitter, not kept here.
	Heredoc struct {
		Delimiter string
		Content   string
	}

	// Stage is one command invocation within a pipeline: its argv, its
	// redirections, and the connector linking it to the next stage.
	Stage struct {
		Argv      []string
		Redirs    []Redirection
		Connector Connector
	}
)

const (
	// ConnEnd terminates the pipeline.
	ConnEnd Connector = iota
	// ConnPipe threads stdout into the next stage's stdin, regardless of
	// exit status.
	ConnPipe
	// ConnAnd runs the next stage only if this one succeeded.
	ConnAnd
	// ConnOr runs the next stage only if this one failed.
	ConnOr
	// ConnSeq always runs the next stage.
	ConnSeq
)

const (
	// RedirIn reads stdin from a file (<).
	RedirIn RedirKind = iota
	// RedirOut truncates and writes stdout to a file (>).
	RedirOut
	// RedirAppend appends stdout to a file (>>).
	RedirAppend
	// RedirErr writes stderr to a file (2>).
	RedirErr
	// RedirErrToOut writes both stdout and stderr to a file (&>, >&).
	RedirErrToOut
	// RedirHeredoc captures a here-document; Target is the delimiter.
	RedirHeredoc
)

// String returns the operator spelling for diagnostics.
func (k RedirKind) String() string {
	switch k {
	case RedirIn:
		return "<"
	case RedirOut:
		return ">"
	case RedirAppend:
		return ">>"
	case RedirErr:
		return "2>"
	case RedirErrToOut:
		return "&>"
	case RedirHeredoc:
		return "<<"
	}
	return "?"
}

// redirKinds maps operator tokens to their redirection kind.
var redirKinds = map[string]RedirKind{
	"<":  RedirIn,
	">":  RedirOut,
	">>": RedirAppend,
	"2>": RedirErr,
	"&>": RedirErrToOut,
	">&": RedirErrToOut,
	"<<": RedirHeredoc,
}

// ParsePipeline groups a token stream into stages. Stages split at unquoted
// |, &&, || and ; operators; the connector recorded on each stage is the
// operator that followed it, ConnEnd for the last.
func ParsePipeline(tokens []Token) ([]Stage, error) {
	var stages []Stage
	var current []Token

	closeStage := func(conn Connector) error {
		stage, err := parseStage(current)
		if err != nil {
			return err
		}
		stage.Connector = conn
		stages = append(stages, stage)
		current = nil
		return nil
	}

	for _, tok := range tokens {
		if tok.Op {
			var conn Connector
			switch tok.Text {
			case "|":
				conn = ConnPipe
			case "&&":
				conn = ConnAnd
			case "||":
				conn = ConnOr
			case ";":
				conn = ConnSeq
			default:
				current = append(current, tok)
				continue
			}
			if len(current) == 0 {
				return nil, fmt.Errorf("syntax error near %q", tok.Text)
			}
			if err := closeStage(conn); err != nil {
				return nil, err
			}
			continue
		}
		current = append(current, tok)
	}

	if len(current) > 0 {
		if err := closeStage(ConnEnd); err != nil {
			return nil, err
		}
	}

	return stages, nil
}

// parseStage separates redirection operator+target pairs from the bare argv.
func parseStage(tokens []Token) (Stage, error) {
	var stage Stage
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.Op {
			stage.Argv = append(stage.Argv, tok.Text)
			continue
		}
		kind, ok := redirKinds[tok.Text]
		if !ok {
			return Stage{}, fmt.Errorf("unexpected operator %q", tok.Text)
		}
		if i+1 >= len(tokens) || tokens[i+1].Op {
			return Stage{}, fmt.Errorf("missing target after %q", tok.Text)
		}
		stage.Redirs = append(stage.Redirs, Redirection{Kind: kind, Target: tokens[i+1].Text})
		i++
	}
	if len(stage.Argv) == 0 {
		return Stage{}, fmt.Errorf("empty command")
	}
	return stage, nil
}

// heredocDelim returns the delimiter of the stage list's pending heredoc, if
// any stage carries one.
func heredocDelim(stages []Stage) (string, bool) {
	for _, stage := range stages {
		for _, r := range stage.Redirs {
			if r.Kind == RedirHeredoc {
				return r.Target, true
			}
		}
	}
	return "", false
}
