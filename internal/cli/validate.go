package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	shellwords "github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"

	"wikibench/internal/eval"
	"wikibench/internal/output"
	"wikibench/internal/wiki"
)

const maxSuggestions = 5

func newValidatePathCmd() *cobra.Command {
	var pathFlag string

	cmd := silenceUsageAndErrors(&cobra.Command{
		Use:   `validate-path <start-page> [page...]`,
		Short: "Check a proposed path hop by hop against live links",
		Long: `Check that each consecutive hop of a proposed path is backed by a real link.

The path may be given as positional arguments or as one quoted string:

  wikibench validate-path Bradawl Woodworking "Hand tool" "Kevin Bacon"
  wikibench validate-path Bradawl --path 'Woodworking "Hand tool" "Kevin Bacon"'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			startPage := args[0]
			pages := args[1:]
			if pathFlag != "" {
				if len(pages) > 0 {
					return fmt.Errorf("give the path either as arguments or via --path, not both")
				}
				parsed, err := shellwords.Parse(pathFlag)
				if err != nil {
					return fmt.Errorf("parse --path: %w", err)
				}
				pages = parsed
			}
			if len(pages) == 0 {
				return fmt.Errorf("no path given; add page arguments or --path")
			}

			client, err := wiki.NewClient(wiki.Config{})
			if err != nil {
				return err
			}
			printer := output.NewPrinter(os.Stdout)
			return validatePath(cmd.Context(), printer, client, startPage, pages)
		},
	})

	cmd.Flags().StringVar(&pathFlag, "path", "", "whole path as one quoted string")
	return cmd
}

// validatePath walks the path one hop at a time, printing a verdict per hop
// and alternatives when a hop fails. Unlike the evaluator's validator it does
// not short-circuit, so every broken hop is reported.
func validatePath(ctx context.Context, printer *output.Printer, source eval.LinkSource, startPage string, pages []string) error {
	full := append([]string{startPage}, pages...)
	_ = printer.Appf("Validating path: %s", strings.Join(full, " -> "))

	valid := true
	for i := 0; i < len(full)-1; i++ {
		current, next := full[i], full[i+1]
		_ = printer.Detailf("Step %d: %s -> %s", i+1, current, next)

		links, err := source.Links(ctx, source.PageURL(current))
		if err != nil {
			valid = false
			_ = printer.Failf("  error fetching %q: %v", current, err)
			continue
		}
		if hasTitle(links, next) {
			_ = printer.Passf("  found %q in links", next)
			continue
		}
		valid = false
		_ = printer.Failf("  %q not found in links", next)
		if len(links) > 0 {
			_ = printer.Detail("  consider these alternatives:")
			for j, l := range links {
				if j >= maxSuggestions {
					break
				}
				_ = printer.Detailf("    - %s", l.Title)
			}
		}
	}

	if !valid {
		return fmt.Errorf("path is invalid")
	}
	_ = printer.Passf("Path is valid: %d steps, score %d (lower is better)", len(pages), len(pages))
	return nil
}

func hasTitle(links []eval.Link, title string) bool {
	for _, l := range links {
		if strings.EqualFold(l.Title, title) {
			return true
		}
	}
	return false
}
