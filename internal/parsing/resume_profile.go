// Package parsing converts raw completion payloads into validated ResumeProfile
// values via sanitization, JSON parsing and schema checking.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// expectedFields are the payload fields tracked for the degraded-result report.
var expectedFields = []string{
	"name",
	"skills",
	"insights",
	"resume_improvement_suggestions",
	"skills_details",
}

// Extractor turns extracted résumé text into a structured profile using an
// LLM client and the configured instruction variant.
type Extractor struct {
	client  llm.Client
	variant llm.Variant
}

// NewExtractor creates an Extractor bound to a client and variant.
func NewExtractor(client llm.Client, variant llm.Variant) *Extractor {
	return &Extractor{client: client, variant: variant}
}

// Extract sends the text to the completion service and validates the result.
// Empty or whitespace-only text is rejected locally without a network call.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.ResumeProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{Field: "text", Message: "resume text is required and cannot be empty"}
	}

	raw, err := e.client.Complete(ctx, llm.SystemInstruction(e.variant), text)
	if err != nil {
		return nil, &APICallError{Message: "completion request failed", Cause: err}
	}

	return SanitizeAndValidate(raw)
}

// SanitizeAndValidate strips formatting artifacts from a raw completion
// payload, parses it as JSON, and validates it against the resume profile
// schema. Missing fields are tolerated and defaulted; a payload missing skills
// entirely is still accepted. The raw payload is logged (never surfaced) on
// parse failure.
func SanitizeAndValidate(raw string) (*types.ResumeProfile, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if cleaned == "" {
		return nil, &ParseError{Message: "empty payload after sanitization"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		logger.Debug().Str("payload", raw).Err(err).Msg("completion payload is not valid JSON")
		return nil, &ParseError{Message: "payload is not valid JSON", Cause: err}
	}

	if err := schemas.ValidateResumeProfile(cleaned); err != nil {
		logger.Debug().Str("payload", raw).Err(err).Msg("completion payload failed schema validation")
		return nil, err
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal([]byte(cleaned), &profile); err != nil {
		// Shape already schema-checked; reaching here means the schema and
		// the struct disagree.
		return nil, &ParseError{Message: "payload does not match profile structure", Cause: err}
	}

	applyDefaults(&profile, fields)
	return &profile, nil
}

// applyDefaults fills absent array fields with empty sequences and records
// which expected fields were missing from the payload.
func applyDefaults(profile *types.ResumeProfile, fields map[string]json.RawMessage) {
	for _, name := range expectedFields {
		if _, ok := fields[name]; !ok {
			profile.MissingFields = append(profile.MissingFields, name)
		}
	}

	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.SkillDetails == nil {
		profile.SkillDetails = []types.SkillDetail{}
	}

	if len(profile.SkillDetails) != len(profile.Skills) && len(profile.SkillDetails) > 0 {
		logger.Warn().
			Int("skills", len(profile.Skills)).
			Int("details", len(profile.SkillDetails)).
			Msg("skills and skills_details lengths differ; treating as degraded result")
	}
}
