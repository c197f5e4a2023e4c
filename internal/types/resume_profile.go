// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeProfile represents the validated structured data extracted from a résumé.
// It is created once per successful extraction and fully replaced (never merged)
// when a new document is submitted.
type ResumeProfile struct {
	Name                         string        `json:"name"`
	Skills                       []string      `json:"skills"`
	Insights                     string        `json:"insights"`
	ResumeImprovementSuggestions string        `json:"resume_improvement_suggestions"`
	SkillDetails                 []SkillDetail `json:"skills_details"`

	// Broad-schema fields, populated only when the deployment uses the
	// broad extraction variant.
	Experience []string `json:"experience,omitempty"`
	Projects   []string `json:"projects,omitempty"`
	Education  []string `json:"education,omitempty"`

	// MissingFields lists the expected payload fields that were absent.
	// A non-empty list marks a degraded (but still displayable) result.
	MissingFields []string `json:"missing_fields,omitempty"`
}

// SkillDetail represents per-skill market analytics produced by the extraction model.
// SkillDetails is indexed positionally against Skills: same index, same skill.
type SkillDetail struct {
	Skill               string  `json:"skill"`
	JobDemandPercentage float64 `json:"job_demand_percentage"`
	Recommendations     string  `json:"recommendations"`
}

// DetailFor returns the skill detail at the given skill index, or nil when the
// detail list is shorter than the skill list. Indexed lookups must never read
// past the shorter of the two sequences.
func (p *ResumeProfile) DetailFor(index int) *SkillDetail {
	if index < 0 || index >= len(p.SkillDetails) {
		return nil
	}
	return &p.SkillDetails[index]
}

// Degraded reports whether the profile is missing expected fields.
func (p *ResumeProfile) Degraded() bool {
	return len(p.MissingFields) > 0
}
