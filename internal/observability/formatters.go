// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeProfile outputs a human-readable summary of the extracted
// resume profile.
func (p *Printer) PrintResumeProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:  %s\n", profile.Name))
	sb.WriteString("\n")

	if len(profile.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s", profile.Skills[i]))
			if detail := profile.DetailFor(i); detail != nil {
				sb.WriteString(fmt.Sprintf(" (%.0f%% demand)", detail.JobDemandPercentage))
			}
			sb.WriteString("\n")
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if profile.Insights != "" {
		sb.WriteString(fmt.Sprintf("Insights: %s\n", profile.Insights))
	}
	if profile.ResumeImprovementSuggestions != "" {
		sb.WriteString(fmt.Sprintf("Suggestions: %s\n", profile.ResumeImprovementSuggestions))
	}

	if len(profile.MissingFields) > 0 {
		sb.WriteString(fmt.Sprintf("\nMissing fields: %s\n", strings.Join(profile.MissingFields, ", ")))
	}

	p.printBox("EXTRACTED RESUME PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintListings outputs the top ranked job listings for one results page.
func (p *Printer) PrintListings(listings []jobs.Listing) {
	if len(listings) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(listings), maxItemsToShow)
	for i := 0; i < count; i++ {
		listing := listings[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, listing.Title))
		sb.WriteString(fmt.Sprintf("   %s | %s\n", listing.Company.DisplayName, listing.Location.DisplayName))
		sb.WriteString(fmt.Sprintf("   %s | %s\n", listing.DisplayContractType(), listing.DisplayCreated()))
	}
	if len(listings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(listings)-maxItemsToShow))
	}

	p.printBox("MATCHED JOB LISTINGS", strings.TrimSuffix(sb.String(), "\n"))
}
