package eval

// Scoring constants. Lower scores are better: the base contribution is the
// hop count, so a short valid path beats a long one, and every failure mode
// adds a flat penalty on top.
const (
	InvalidPathPenalty      = 10
	GaveUpPenalty           = 15
	CheatingPenalty         = 20
	CreativeConnectionBonus = -1
)

// Score computes the score for a classified trial. It is a pure function of
// the result's path length and classification flags and never goes below 0.
func Score(r TrialResult) int {
	score := len(r.Path)
	if r.InvalidPath {
		score += InvalidPathPenalty
	}
	if r.GaveUp {
		score += GaveUpPenalty
	}
	if r.Cheated {
		score += CheatingPenalty
	}
	score += r.CreativeConnections * CreativeConnectionBonus
	if score < 0 {
		return 0
	}
	return score
}
