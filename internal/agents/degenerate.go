package agents

import (
	"context"

	"wikibench/internal/eval"
)

// cheatAgent always jumps straight to the target. It exists to exercise the
// evaluator's cheat detection.
type cheatAgent struct {
	targetPage string
}

func NewCheat(targetPage string) eval.Agent {
	return &cheatAgent{targetPage: targetPage}
}

func (a *cheatAgent) Name() string { return "cheat" }

func (a *cheatAgent) Solve(ctx context.Context, startPage, startURL string, mode eval.Mode) ([]string, error) {
	return []string{a.targetPage}, nil
}

// giveUpAgent never answers. It exists to exercise the give-up penalty.
type giveUpAgent struct{}

func NewGiveUp() eval.Agent {
	return giveUpAgent{}
}

func (giveUpAgent) Name() string { return "giveup" }

func (giveUpAgent) Solve(ctx context.Context, startPage, startURL string, mode eval.Mode) ([]string, error) {
	return nil, nil
}
