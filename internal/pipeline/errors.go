package pipeline

import (
	"errors"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/jobs"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

// User-facing messages. Raw payloads and transport details are logged by the
// failing component, never shown.
const (
	msgMalformedResponse = "We could not read the analysis result. Please try uploading your resume again."
	msgExtractionFailed  = "Resume analysis is temporarily unavailable. Please try again."
	msgSearchFailed      = "Job search is temporarily unavailable. Please try again."
	msgAuthorization     = "Job search authorization failed. Check the API credentials."
)

// classify maps a component failure to the error surface shown to the user.
// Components classify errors at their own boundary with typed values; this is
// the only place they are translated to session-visible ErrorInfo.
func classify(err error) *ErrorInfo {
	var ingestionValidation *ingestion.ValidationError
	if errors.As(err, &ingestionValidation) {
		return &ErrorInfo{Kind: ErrValidation, Message: ingestionValidation.Message}
	}

	var parsingValidation *parsing.ValidationError
	if errors.As(err, &parsingValidation) {
		return &ErrorInfo{Kind: ErrValidation, Message: parsingValidation.Message}
	}

	var parseErr *parsing.ParseError
	if errors.As(err, &parseErr) {
		return &ErrorInfo{Kind: ErrMalformedResponse, Message: msgMalformedResponse}
	}

	var schemaErr *schemas.ValidationError
	if errors.As(err, &schemaErr) {
		return &ErrorInfo{Kind: ErrMalformedResponse, Message: msgMalformedResponse}
	}

	var serviceErr *jobs.ServiceError
	if errors.As(err, &serviceErr) {
		if serviceErr.Kind == jobs.KindAuthorization {
			return &ErrorInfo{Kind: ErrAuthorization, Message: msgAuthorization}
		}
		return &ErrorInfo{Kind: ErrService, Message: msgSearchFailed}
	}

	var apiErr *parsing.APICallError
	if errors.As(err, &apiErr) {
		return &ErrorInfo{Kind: ErrService, Message: msgExtractionFailed}
	}

	var extractionErr *ingestion.ExtractionError
	if errors.As(err, &extractionErr) {
		return &ErrorInfo{Kind: ErrService, Message: msgExtractionFailed}
	}

	return &ErrorInfo{Kind: ErrService, Message: msgExtractionFailed}
}
