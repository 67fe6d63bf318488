package eval

import (
	"context"
	"strings"
	"time"
)

const (
	// DefaultTargetPage is the canonical benchmark target.
	DefaultTargetPage = "Kevin Bacon"
	// DefaultTrialDelay paces suite trials to stay polite toward the page source.
	DefaultTrialDelay = time.Second
)

// Config carries the explicit configuration for an Evaluator. Target settings
// are threaded in here rather than read from the environment so the core
// stays deterministic and testable.
type Config struct {
	// TargetPage is the page every path must end on. Defaults to DefaultTargetPage.
	TargetPage string
	// TargetURL is the target's canonical URL. Derived from TargetPage when empty.
	TargetURL string
	// TrialDelay is the pause between suite trials. Defaults to DefaultTrialDelay.
	// Use a negative value for no delay.
	TrialDelay time.Duration
	// Progress, when set, is called before each suite trial.
	Progress func(trial, total int, agentName string)
}

// Evaluator runs trials: it invokes an agent, classifies the returned path,
// and scores the result. Trials run strictly sequentially.
type Evaluator struct {
	source    LinkSource
	validator *PathValidator
	cfg       Config
}

func New(source LinkSource, cfg Config) *Evaluator {
	if cfg.TargetPage == "" {
		cfg.TargetPage = DefaultTargetPage
	}
	if cfg.TargetURL == "" {
		cfg.TargetURL = source.PageURL(cfg.TargetPage)
	}
	if cfg.TrialDelay == 0 {
		cfg.TrialDelay = DefaultTrialDelay
	}
	return &Evaluator{
		source:    source,
		validator: NewPathValidator(source),
		cfg:       cfg,
	}
}

// TargetPage returns the configured target page title.
func (e *Evaluator) TargetPage() string {
	return e.cfg.TargetPage
}

// RunSingle runs one trial. When startPage is empty a random starting page is
// obtained from the link source. Failures inside the trial (agent errors,
// fetch errors) are recorded on the result, never returned.
func (e *Evaluator) RunSingle(ctx context.Context, agent Agent, mode Mode, startPage, startURL string) TrialResult {
	result := TrialResult{
		TargetPage: e.cfg.TargetPage,
		TargetURL:  e.cfg.TargetURL,
		Path:       []string{},
	}

	if startPage == "" {
		var err error
		startPage, startURL, err = e.source.RandomPage(ctx)
		if err != nil {
			result.GaveUp = true
			result.ErrorMessage = err.Error()
			result.Score = Score(result)
			return result
		}
	}
	if startURL == "" {
		startURL = e.source.PageURL(startPage)
	}
	result.StartPage = startPage
	result.StartURL = startURL

	started := time.Now()
	path, err := agent.Solve(ctx, startPage, startURL, mode)
	result.TimeTaken = time.Since(started).Seconds()
	if err != nil {
		result.GaveUp = true
		result.ErrorMessage = err.Error()
		result.Score = Score(result)
		return result
	}
	if path != nil {
		result.Path = path
	}

	// A one-element path naming the target outright is a jump, not a traversal.
	// Cheating is checked against the configured target and skips the validity
	// and success checks entirely.
	if len(result.Path) == 1 && result.Path[0] == e.cfg.TargetPage {
		result.Cheated = true
	}
	if len(result.Path) == 0 {
		result.GaveUp = true
	}
	if mode == ModeToolUse && len(result.Path) > 0 && !result.Cheated {
		result.InvalidPath = !e.validator.IsValid(ctx, startPage, result.Path)
	}
	if len(result.Path) > 0 && !result.GaveUp && !result.Cheated && !result.InvalidPath {
		result.Success = strings.EqualFold(result.Path[len(result.Path)-1], e.cfg.TargetPage)
	}

	result.Score = Score(result)
	return result
}

// RunSuite runs numTrials sequential trials, each from a fresh random
// starting page, pausing between trials per the configured delay.
func (e *Evaluator) RunSuite(ctx context.Context, agent Agent, mode Mode, numTrials int) []TrialResult {
	results := make([]TrialResult, 0, numTrials)
	for i := 0; i < numTrials; i++ {
		if e.cfg.Progress != nil {
			e.cfg.Progress(i+1, numTrials, agent.Name())
		}
		results = append(results, e.RunSingle(ctx, agent, mode, "", ""))
		if i < numTrials-1 && e.cfg.TrialDelay > 0 {
			select {
			case <-time.After(e.cfg.TrialDelay):
			case <-ctx.Done():
				return results
			}
		}
	}
	return results
}
