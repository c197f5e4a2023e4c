package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailFor(t *testing.T) {
	profile := &ResumeProfile{
		Skills: []string{"Go", "Python", "SQL"},
		SkillDetails: []SkillDetail{
			{Skill: "Go", JobDemandPercentage: 80},
			{Skill: "Python", JobDemandPercentage: 70},
		},
	}

	require.NotNil(t, profile.DetailFor(0))
	assert.Equal(t, "Go", profile.DetailFor(0).Skill)
	assert.Equal(t, "Python", profile.DetailFor(1).Skill)

	// Skills may outnumber details; reads past the detail list return nil.
	assert.Nil(t, profile.DetailFor(2))
	assert.Nil(t, profile.DetailFor(-1))
}

func TestDegraded(t *testing.T) {
	assert.False(t, (&ResumeProfile{}).Degraded())
	assert.True(t, (&ResumeProfile{MissingFields: []string{"insights"}}).Degraded())
}

func TestResumeProfileJSONFieldNames(t *testing.T) {
	profile := ResumeProfile{
		Name:                         "Jane Doe",
		Skills:                       []string{"Go"},
		Insights:                     "solid",
		ResumeImprovementSuggestions: "add metrics",
		SkillDetails:                 []SkillDetail{{Skill: "Go", JobDemandPercentage: 80, Recommendations: "keep going"}},
	}

	data, err := json.Marshal(profile)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"name", "skills", "insights", "resume_improvement_suggestions", "skills_details"} {
		assert.Contains(t, fields, key)
	}
	var details []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(fields["skills_details"], &details))
	assert.Contains(t, details[0], "job_demand_percentage")
}
