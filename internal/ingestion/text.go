package ingestion

import (
	"regexp"
	"strings"
)

var (
	multiSpace     = regexp.MustCompile(`[ \t]+`)
	tripleNewlines = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text: line endings, repeated spaces, and
// excessive blank lines. Structure is preserved line by line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = tripleNewlines.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
