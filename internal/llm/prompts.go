// Package llm - prompts.go defines the résumé extraction instruction variants.
package llm

import (
	"fmt"
	"strings"
)

// Variant selects which extraction instruction the deployment uses. The two
// variants produce incompatible payloads, so a deployment picks exactly one.
type Variant string

const (
	// VariantSkills requests skills-centric analytics: name, skills, per-skill
	// job demand, recommendations, improvement suggestions, career insights.
	VariantSkills Variant = "skills"
	// VariantBroad requests broad résumé fields: name, experience, skills,
	// projects, education.
	VariantBroad Variant = "broad"
)

// ParseVariant validates a variant string from configuration.
func ParseVariant(s string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantSkills, "":
		return VariantSkills, nil
	case VariantBroad:
		return VariantBroad, nil
	}
	return "", fmt.Errorf("unknown extraction variant %q (want %q or %q)", s, VariantSkills, VariantBroad)
}

// ExtractionSchema defines the structure for LLM-based résumé extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "SkillsAnalytics")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", ["string"], etc.
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// SystemInstruction builds the fixed system instruction for a variant.
func SystemInstruction(variant Variant) string {
	schema := SkillsAnalyticsSchema()
	if variant == VariantBroad {
		schema = BroadResumeSchema()
	}

	var sb strings.Builder
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "\"string\""
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the resume text, do not invent details.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

// SkillsAnalyticsSchema returns the skills-centric extraction schema. This is
// the canonical deployment variant.
func SkillsAnalyticsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "SkillsAnalytics",
		Description: `You are an AI that extracts key information from resumes.
Identify the candidate's name and skills, then analyze each skill's job market demand,
give per-skill improvement recommendations, suggest resume improvements, and summarize
career insights.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Candidate's full name",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Skills in relevance order, most relevant first",
				Required:    true,
			},
			{
				Name:        "insights",
				Type:        "\"string\"",
				Description: "Short career insights summary",
				Required:    false,
			},
			{
				Name:        "resume_improvement_suggestions",
				Type:        "\"string\"",
				Description: "Concrete suggestions to improve the resume",
				Required:    false,
			},
			{
				Name:        "skills_details",
				Type:        "[{\"skill\": \"string\", \"job_demand_percentage\": number, \"recommendations\": \"string\"}]",
				Description: "One entry per skill, same order as skills; job_demand_percentage between 0 and 100",
				Required:    false,
			},
		},
	}
}

// BroadResumeSchema returns the broad extraction schema covering the
// traditional résumé sections.
func BroadResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "BroadResume",
		Description: `You are an AI that extracts key information from resumes.
Identify the candidate's Name, Experience, Skills, Projects and Education.
Format the response as a structured JSON object.`,
		Fields: []SchemaField{
			{
				Name:        "name",
				Type:        "\"string\"",
				Description: "Candidate's full name",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[\"string\"]",
				Description: "Work experience entries, most recent first",
				Required:    false,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Skills in relevance order",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[\"string\"]",
				Description: "Notable projects",
				Required:    false,
			},
			{
				Name:        "education",
				Type:        "[\"string\"]",
				Description: "Education entries",
				Required:    false,
			},
		},
	}
}
