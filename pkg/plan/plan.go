// Package plan turns a lexed token sequence into a pipeline of stages,
// separating pipe operators and per-stage redirections from each
// stage's argv.
package plan

import (
	"errors"

	"github.com/cedarsh/cedar/pkg/lex"
)

// Fd identifies a redirection target file descriptor.
type Fd int

const (
	Stdout Fd = iota
	Stderr
)

// Mode is how a redirection target file is opened.
type Mode int

const (
	Truncate Mode = iota
	Append
)

// Redirection associates a target file descriptor with a path and mode.
type Redirection struct {
	Fd   Fd
	Path string
	Mode Mode
}

// Stage is one pipeline command: an argv and its redirections, keyed by
// target fd so that at most one of each exists; a repeated redirection
// to the same fd within a stage has the last occurrence win.
type Stage struct {
	Argv         []string
	Redirections map[Fd]Redirection
}

// Pipeline is an ordered, non-empty sequence of stages.
type Pipeline struct {
	Stages []Stage
}

// ErrEmptyStage is returned when splitting on '|' yields an empty stage,
// e.g. adjacent pipes or a leading/trailing pipe.
var ErrEmptyStage = errors.New("empty pipeline stage")

// redirOp maps an exact operator token to its fd and mode.
var redirOp = map[string]Redirection{
	">":   {Fd: Stdout, Mode: Truncate},
	"1>":  {Fd: Stdout, Mode: Truncate},
	">>":  {Fd: Stdout, Mode: Append},
	"1>>": {Fd: Stdout, Mode: Append},
	"2>":  {Fd: Stderr, Mode: Truncate},
	"2>>": {Fd: Stderr, Mode: Append},
}

// Build splits tokens into a pipeline. A token is recognized as an
// operator only when it is Raw (never produced by quoting or escaping),
// so a quoted ">" is an ordinary argv word, not a redirection.
//
// Returns ErrEmptyStage if any stage (split on '|') has no argv tokens
// before redirection extraction, or (nil, nil) if the line is empty or
// any stage's argv is empty once its redirections are removed (the
// caller should treat that as "nothing to run").
func Build(tokens []lex.Token) (*Pipeline, error) {
	var rawStages [][]lex.Token
	var cur []lex.Token
	for _, t := range tokens {
		if t.Raw && t.Text == "|" {
			rawStages = append(rawStages, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	rawStages = append(rawStages, cur)

	if len(tokens) == 0 {
		return nil, nil
	}

	stages := make([]Stage, 0, len(rawStages))
	for _, raw := range rawStages {
		if len(raw) == 0 {
			return nil, ErrEmptyStage
		}
		stage, err := extractRedirections(raw)
		if err != nil {
			return nil, err
		}
		if len(stage.Argv) == 0 {
			return nil, nil
		}
		stages = append(stages, stage)
	}

	if len(stages) == 0 {
		return nil, nil
	}
	return &Pipeline{Stages: stages}, nil
}

// extractRedirections scans a stage's raw tokens left to right. Whenever
// a Raw token exactly matches a redirection operator, the following
// token (any rawness) is consumed as its operand and both are removed
// from argv. An operator with no following token is silently dropped —
// no redirection is recorded and the operator token itself is dropped.
func extractRedirections(raw []lex.Token) (Stage, error) {
	stage := Stage{Redirections: map[Fd]Redirection{}}
	for i := 0; i < len(raw); i++ {
		t := raw[i]
		if t.Raw {
			if spec, ok := redirOp[t.Text]; ok {
				if i+1 >= len(raw) {
					// Dangling operator: drop it, no operand to record.
					continue
				}
				i++
				spec.Path = raw[i].Text
				stage.Redirections[spec.Fd] = spec
				continue
			}
		}
		stage.Argv = append(stage.Argv, t.Text)
	}
	return stage, nil
}
