// Package ingestion handles résumé document intake: file-type validation and
// plain-text extraction.
package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// supportedExtensions lists the document types accepted for submission.
var supportedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
}

// Extractor extracts plain text from submitted résumé documents.
type Extractor struct{}

// NewExtractor creates a document text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ValidateFilename checks the file extension before any extraction work.
// Rejection is a local validation failure; no extraction is attempted.
func ValidateFilename(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return &ValidationError{Field: "resume", Message: "file has no extension; only PDF and TXT files are accepted"}
	}
	if !supportedExtensions[ext] {
		return &ValidationError{Field: "resume", Message: "unsupported file type " + ext + "; only PDF and TXT files are accepted"}
	}
	return nil
}

// ExtractText extracts and cleans plain text from a submitted document.
// The extension is validated first so an unsupported file never reaches the
// extraction path.
func (e *Extractor) ExtractText(data []byte, filename string) (string, error) {
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	var text string
	switch ext {
	case ".txt":
		text = string(data)
	case ".pdf":
		pdfText, err := extractPDFText(data)
		if err != nil {
			return "", err
		}
		text = pdfText
	}

	return CleanText(text), nil
}

// extractPDFText extracts text from every page of a PDF document.
func extractPDFText(data []byte) (string, error) {
	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read PDF", Cause: err}
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", &ExtractionError{Message: "failed to get page count", Cause: err}
	}
	if numPages == 0 {
		return "", &ExtractionError{Message: "PDF has no pages"}
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			// Skip unreadable pages; remaining pages may still carry text.
			continue
		}

		ex, err := extractor.New(page)
		if err != nil {
			continue
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			continue
		}

		sb.WriteString(pageText)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}
