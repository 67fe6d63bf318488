package eval

import "context"

// Link is one outbound in-corpus link as it appears on a page.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LinkSource provides the pages the benchmark navigates over. The production
// implementation is the Wikipedia client in internal/wiki; tests use stubs.
type LinkSource interface {
	// RandomPage returns the title and URL of a random in-corpus page.
	RandomPage(ctx context.Context) (title, url string, err error)
	// Links returns the ordered outbound links visible on the page at url.
	// An empty slice is a dead end, not an error.
	Links(ctx context.Context, url string) ([]Link, error)
	// PageURL derives the canonical URL for a page title.
	PageURL(title string) string
}

// Agent is the one capability every evaluated implementation shares: given a
// starting page, produce a path of page titles toward the target. An empty
// path means the agent gave up.
type Agent interface {
	Name() string
	Solve(ctx context.Context, startPage, startURL string, mode Mode) ([]string, error)
}

// TrialResult is the outcome of a single trial. It is mutated only by the
// Evaluator that created it and is immutable once handed to a report.
type TrialResult struct {
	StartPage           string   `json:"start_page"`
	StartURL            string   `json:"start_url"`
	TargetPage          string   `json:"target_page"`
	TargetURL           string   `json:"target_url"`
	Path                []string `json:"path"`
	Score               int      `json:"score"`
	Success             bool     `json:"success"`
	GaveUp              bool     `json:"gave_up"`
	Cheated             bool     `json:"cheated"`
	InvalidPath         bool     `json:"invalid_path"`
	CreativeConnections int      `json:"creative_connections"`
	TimeTaken           float64  `json:"time_taken"`
	ErrorMessage        string   `json:"error_message,omitempty"`
}
