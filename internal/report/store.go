package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wikibench/internal/eval"
)

const resultsSuffix = "_results.json"

// Save writes one report artifact under dir, one file per agent/mode pair,
// and returns the file path.
func Save(dir string, rep eval.Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%s%s", safeName(rep.AgentName), rep.Mode, resultsSuffix)
	path := filepath.Join(dir, name)
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a single report artifact.
func Load(path string) (eval.Report, error) {
	var rep eval.Report
	data, err := os.ReadFile(path)
	if err != nil {
		return rep, err
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		return rep, fmt.Errorf("parse %s: %w", path, err)
	}
	return rep, nil
}

// safeName makes an agent name usable as a file name component. LLM agent
// names contain "provider:model" specs with slashes.
func safeName(agent string) string {
	replacer := strings.NewReplacer("/", "_", ":", "_", " ", "_")
	return replacer.Replace(agent)
}
