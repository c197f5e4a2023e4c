package jobs

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var descriptionSpace = regexp.MustCompile(`\s+`)

// CleanDescription strips HTML markup from a listing description, leaving a
// single-line plain-text snippet. Upstream descriptions mix plain text with
// markup fragments; on any parse problem the input is returned as-is.
func CleanDescription(description string) string {
	if description == "" || !strings.ContainsAny(description, "<&") {
		return normalizeSpace(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return normalizeSpace(description)
	}

	return normalizeSpace(doc.Text())
}

func normalizeSpace(s string) string {
	return strings.TrimSpace(descriptionSpace.ReplaceAllString(s, " "))
}
