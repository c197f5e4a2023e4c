package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze <resume-file>",
	Short: "Analyze a resume and print matched job listings",
	Long: `Runs the full pipeline once: extracts text from the resume, derives a
structured skill profile via LLM analysis, searches for matching job listings
and prints them ranked by recency.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeVerbose    bool
	analyzePage       int
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the extracted profile before the listings")
	analyzeCommand.Flags().IntVar(&analyzePage, "page", 1, "Results page to fetch")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(analyzeConfigPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	comps, err := buildComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer comps.Close() //nolint:errcheck

	orch := buildOrchestrator(comps, cfg, nil)
	if err := orch.Submit(ctx, filepath.Base(args[0]), data); err != nil {
		state := orch.Snapshot()
		if state.Error != nil {
			return fmt.Errorf("%s", state.Error.Message)
		}
		return err
	}

	if analyzePage > 1 {
		if err := orch.SetPage(ctx, analyzePage); err != nil {
			return err
		}
	}

	state := orch.Snapshot()
	printer := observability.NewPrinter(os.Stdout)
	if analyzeVerbose {
		printer.PrintResumeProfile(state.Profile)
	}
	if state.Phase == pipeline.PhaseReady && len(state.Jobs) == 0 {
		fmt.Println("No matching job listings found.")
		return nil
	}
	printer.PrintListings(state.Jobs)
	return nil
}
