package eval

// Report aggregates one agent's results for one mode. It is derived entirely
// from the trial sequence and holds no independent state.
type Report struct {
	AgentName         string        `json:"agent_name"`
	Mode              string        `json:"mode"`
	TotalTrials       int           `json:"total_trials"`
	SuccessfulTrials  int           `json:"successful_trials"`
	SuccessRate       float64       `json:"success_rate"`
	GaveUpCount       int           `json:"gave_up_count"`
	CheatedCount      int           `json:"cheated_count"`
	InvalidPathCount  int           `json:"invalid_path_count"`
	AverageScore      float64       `json:"average_score"`
	BestScore         int           `json:"best_score"`
	WorstScore        int           `json:"worst_score"`
	AveragePathLength float64       `json:"average_path_length"`
	Results           []TrialResult `json:"results"`
}

// BuildReport aggregates results into a Report. An empty result sequence
// yields a zero-valued report rather than a division error.
func BuildReport(results []TrialResult, agentName string, mode Mode) Report {
	rep := Report{
		AgentName: agentName,
		Mode:      mode.String(),
		Results:   results,
	}
	if rep.Results == nil {
		rep.Results = []TrialResult{}
	}
	if len(results) == 0 {
		return rep
	}

	scoreSum := 0
	pathLengthSum := 0
	pathSamples := 0
	rep.BestScore = results[0].Score
	rep.WorstScore = results[0].Score
	for _, r := range results {
		if r.Success {
			rep.SuccessfulTrials++
		}
		if r.GaveUp {
			rep.GaveUpCount++
		}
		if r.Cheated {
			rep.CheatedCount++
		}
		if r.InvalidPath {
			rep.InvalidPathCount++
		}
		scoreSum += r.Score
		if r.Score < rep.BestScore {
			rep.BestScore = r.Score
		}
		if r.Score > rep.WorstScore {
			rep.WorstScore = r.Score
		}
		if len(r.Path) > 0 {
			pathLengthSum += len(r.Path)
			pathSamples++
		}
	}

	rep.TotalTrials = len(results)
	rep.SuccessRate = float64(rep.SuccessfulTrials) / float64(rep.TotalTrials) * 100
	rep.AverageScore = float64(scoreSum) / float64(rep.TotalTrials)
	if pathSamples > 0 {
		rep.AveragePathLength = float64(pathLengthSum) / float64(pathSamples)
	}
	return rep
}
