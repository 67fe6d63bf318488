package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wikibench/internal/agents"
	"wikibench/internal/eval"
	"wikibench/internal/output"
	"wikibench/internal/report"
	"wikibench/internal/wiki"
)

const exampleResults = 3

func newRunCmd() *cobra.Command {
	var agentName string
	var allAgents bool
	var llmSpec string
	var llmsFile string
	var modeFlag string
	var trials int
	var startPage string
	var startURL string
	var targetPage string
	var targetURL string
	var outputDir string
	var delay time.Duration

	cmd := silenceUsageAndErrors(&cobra.Command{
		Use:   "run (--agent=<name> | --all-agents | --llm=<provider:model>)",
		Short: "Evaluate one or more agents and save report artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			selected := 0
			for _, on := range []bool{agentName != "", allAgents, llmSpec != ""} {
				if on {
					selected++
				}
			}
			if selected == 0 {
				return fmt.Errorf("one of --agent, --all-agents or --llm is required")
			}
			if selected > 1 {
				return fmt.Errorf("use only one of --agent, --all-agents or --llm")
			}
			if trials < 1 {
				return fmt.Errorf("--trials must be >= 1, got %d", trials)
			}
			modes, err := parseModes(modeFlag)
			if err != nil {
				return err
			}

			client, err := wiki.NewClient(wiki.Config{})
			if err != nil {
				return err
			}
			printer := output.NewPrinter(os.Stdout)
			if delay <= 0 {
				delay = -1
			}
			evaluator := eval.New(client, eval.Config{
				TargetPage: targetPage,
				TargetURL:  targetURL,
				TrialDelay: delay,
				Progress: func(trial, total int, name string) {
					_ = printer.Detailf("Running trial %d/%d for %s", trial, total, name)
				},
			})

			bc := agents.BuildContext{Source: client, TargetPage: evaluator.TargetPage()}
			var toEvaluate []eval.Agent
			switch {
			case allAgents:
				toEvaluate = agents.BuildAll(bc)
			case agentName != "":
				agent, err := agents.Build(agentName, bc)
				if err != nil {
					return err
				}
				toEvaluate = []eval.Agent{agent}
			default:
				registry := agents.DefaultProviders()
				if llmsFile != "" {
					registry, err = agents.LoadProviders(llmsFile)
					if err != nil {
						return err
					}
				}
				provider, model, err := registry.Resolve(llmSpec)
				if err != nil {
					return err
				}
				toEvaluate = []eval.Agent{agents.NewChat(provider, model, evaluator.TargetPage())}
			}

			for _, agent := range toEvaluate {
				for _, mode := range modes {
					if err := runOne(ctx, printer, evaluator, agent, mode, trials, startPage, startURL, outputDir); err != nil {
						return err
					}
				}
			}
			return printer.Appf("All evaluations completed. Results saved in %s/", outputDir)
		},
	})

	cmd.Flags().StringVar(&agentName, "agent", "", "example agent to evaluate")
	cmd.Flags().BoolVar(&allAgents, "all-agents", false, "evaluate every example agent")
	cmd.Flags().StringVar(&llmSpec, "llm", "", "LLM agent spec, e.g. openai:gpt-4o-mini")
	cmd.Flags().StringVar(&llmsFile, "llms-file", "", "YAML file with LLM provider definitions")
	cmd.Flags().StringVar(&modeFlag, "mode", "tool_use", "evaluation mode: conceptual, tool_use or both")
	cmd.Flags().IntVar(&trials, "trials", 5, "trials per agent/mode pair")
	cmd.Flags().StringVar(&startPage, "start-page", "", "fixed starting page (default: random per trial)")
	cmd.Flags().StringVar(&startURL, "start-url", "", "fixed starting URL (derived from --start-page if empty)")
	cmd.Flags().StringVar(&targetPage, "target-page", "", "target page title (default: "+eval.DefaultTargetPage+")")
	cmd.Flags().StringVar(&targetURL, "target-url", "", "target page URL (derived from title if empty)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "results", "directory for report artifacts")
	cmd.Flags().DurationVar(&delay, "delay", eval.DefaultTrialDelay, "pause between trials")

	return cmd
}

func runOne(ctx context.Context, printer *output.Printer, evaluator *eval.Evaluator, agent eval.Agent, mode eval.Mode, trials int, startPage, startURL, outputDir string) error {
	if err := printer.Appf("Evaluating %s in %s mode (%d trials)", agent.Name(), mode, trials); err != nil {
		return err
	}

	var results []eval.TrialResult
	if startPage != "" {
		results = []eval.TrialResult{evaluator.RunSingle(ctx, agent, mode, startPage, startURL)}
	} else {
		results = evaluator.RunSuite(ctx, agent, mode, trials)
	}

	rep := eval.BuildReport(results, agent.Name(), mode)
	printSummary(printer, rep)

	path, err := report.Save(outputDir, rep)
	if err != nil {
		return err
	}
	return printer.Appf("Detailed results saved to %s", path)
}

func printSummary(printer *output.Printer, rep eval.Report) {
	_ = printer.Appf("Results for %s (%s):", rep.AgentName, rep.Mode)
	_ = printer.Detailf("  Success rate:        %.1f%%", rep.SuccessRate)
	_ = printer.Detailf("  Average score:       %.1f", rep.AverageScore)
	_ = printer.Detailf("  Best score:          %d", rep.BestScore)
	_ = printer.Detailf("  Average path length: %.1f", rep.AveragePathLength)
	_ = printer.Detailf("  Gave up:             %d/%d", rep.GaveUpCount, rep.TotalTrials)
	_ = printer.Detailf("  Cheated:             %d/%d", rep.CheatedCount, rep.TotalTrials)
	_ = printer.Detailf("  Invalid paths:       %d/%d", rep.InvalidPathCount, rep.TotalTrials)

	for i, r := range rep.Results {
		if i >= exampleResults {
			break
		}
		pathStr := "GAVE UP"
		if len(r.Path) > 0 {
			pathStr = strings.Join(r.Path, " -> ")
		}
		_ = printer.Detailf("  Trial %d: %s -> %s", i+1, r.StartPage, pathStr)
		_ = printer.Detailf("    Score: %d, Success: %t", r.Score, r.Success)
	}
}

func parseModes(value string) ([]eval.Mode, error) {
	if value == "both" {
		return []eval.Mode{eval.ModeConceptual, eval.ModeToolUse}, nil
	}
	mode, err := eval.ParseMode(value)
	if err != nil {
		return nil, err
	}
	return []eval.Mode{mode}, nil
}
