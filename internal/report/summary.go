package report

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"wikibench/internal/eval"
)

// Options filters which saved report artifacts enter the summary.
type Options struct {
	Dir    string
	Agents []string
	Modes  []string
}

// Row is one agent/mode line of the leaderboard.
type Row struct {
	Agent             string
	Mode              string
	Trials            int
	Successes         int
	SuccessRate       float64
	GaveUp            int
	Cheated           int
	InvalidPaths      int
	AverageScore      float64
	BestScore         int
	AveragePathLength float64
}

type Summary struct {
	Rows []Row
}

// Run walks Dir for saved report artifacts and aggregates them into a
// leaderboard sorted by success rate, then average score (lower is better).
func Run(opts Options) (*Summary, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, errors.New("report directory is required")
	}
	reports, err := loadReports(opts.Dir)
	if err != nil {
		return nil, err
	}

	agentSet := sliceToSet(opts.Agents)
	modeSet := sliceToSet(opts.Modes)

	rows := make([]Row, 0, len(reports))
	for _, rep := range reports {
		if agentSet != nil && !agentSet[rep.AgentName] {
			continue
		}
		if modeSet != nil && !modeSet[rep.Mode] {
			continue
		}
		rows = append(rows, Row{
			Agent:             rep.AgentName,
			Mode:              rep.Mode,
			Trials:            rep.TotalTrials,
			Successes:         rep.SuccessfulTrials,
			SuccessRate:       rep.SuccessRate,
			GaveUp:            rep.GaveUpCount,
			Cheated:           rep.CheatedCount,
			InvalidPaths:      rep.InvalidPathCount,
			AverageScore:      rep.AverageScore,
			BestScore:         rep.BestScore,
			AveragePathLength: rep.AveragePathLength,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].SuccessRate != rows[j].SuccessRate {
			return rows[i].SuccessRate > rows[j].SuccessRate
		}
		if rows[i].AverageScore != rows[j].AverageScore {
			return rows[i].AverageScore < rows[j].AverageScore
		}
		if rows[i].Agent != rows[j].Agent {
			return rows[i].Agent < rows[j].Agent
		}
		return rows[i].Mode < rows[j].Mode
	})

	return &Summary{Rows: rows}, nil
}

func (s *Summary) WriteCSV(w io.Writer) error {
	if w == nil {
		return errors.New("writer is nil")
	}
	header := []string{
		"agent",
		"mode",
		"trials",
		"successes",
		"success_rate",
		"gave_up",
		"cheated",
		"invalid_paths",
		"avg_score",
		"best_score",
		"avg_path_length",
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range s.Rows {
		record := []string{
			row.Agent,
			row.Mode,
			strconv.Itoa(row.Trials),
			strconv.Itoa(row.Successes),
			formatFloat(row.SuccessRate),
			strconv.Itoa(row.GaveUp),
			strconv.Itoa(row.Cheated),
			strconv.Itoa(row.InvalidPaths),
			formatFloat(row.AverageScore),
			strconv.Itoa(row.BestScore),
			formatFloat(row.AveragePathLength),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func loadReports(dir string) ([]eval.Report, error) {
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []eval.Report
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), resultsSuffix) {
			return nil
		}
		rep, err := Load(path)
		if err != nil {
			return err
		}
		out = append(out, rep)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func sliceToSet(items []string) map[string]bool {
	var out map[string]bool
	for _, s := range items {
		val := strings.TrimSpace(s)
		if val == "" {
			continue
		}
		if out == nil {
			out = map[string]bool{}
		}
		out[val] = true
	}
	return out
}

func formatFloat(v float64) string {
	// Compensate for binary floating point so values like 1.005 reliably
	// round to 1.01 at 2 decimal places.
	rounded := math.Round((v+math.Copysign(1e-9, v))*100) / 100
	if rounded == 0 {
		return "0"
	}
	s := strconv.FormatFloat(rounded, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
