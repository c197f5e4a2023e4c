// Package main provides the entry point for the Resume Matcher.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume Matcher job discovery service",
	Long:  "Resume Matcher extracts a structured skill profile from an uploaded resume via LLM analysis and matches it against live job listings, ranked by recency.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
