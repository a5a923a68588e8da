package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayEndDate(t *testing.T) {
	tests := []struct {
		name      string
		isCurrent bool
		endDate   string
		expected  string
	}{
		{name: "Current position shows Present", isCurrent: true, endDate: "", expected: "Present"},
		{name: "Current flag wins over stale end date", isCurrent: true, endDate: "2024-01", expected: "Present"},
		{name: "Past position shows end date", isCurrent: false, endDate: "2023-06", expected: "2023-06"},
		{name: "Past position without end date", isCurrent: false, endDate: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := WorkExperience{IsCurrent: tt.isCurrent, EndDate: tt.endDate}
			assert.Equal(t, tt.expected, w.DisplayEndDate())

			e := Education{IsCurrent: tt.isCurrent, EndDate: tt.endDate}
			assert.Equal(t, tt.expected, e.DisplayEndDate())
		})
	}
}

func TestCVNormalize_ClearsEndDateForCurrentEntries(t *testing.T) {
	cv := CV{
		WorkExperience: []WorkExperience{
			{ID: "w1", IsCurrent: true, EndDate: "2024-03"},
			{ID: "w2", IsCurrent: false, EndDate: "2022-12"},
		},
		Education: []Education{
			{ID: "e1", IsCurrent: true, EndDate: "2025-06"},
		},
	}

	cv.Normalize()

	assert.Empty(t, cv.WorkExperience[0].EndDate)
	assert.Equal(t, "Present", cv.WorkExperience[0].DisplayEndDate())
	assert.Equal(t, "2022-12", cv.WorkExperience[1].EndDate)
	assert.Empty(t, cv.Education[0].EndDate)
}

func TestCV_JSONFieldNames(t *testing.T) {
	cv := CV{
		ID:     "cv1",
		UserID: "u1",
		PersonalInfo: PersonalInfo{
			FullName: "Jane Doe",
			LinkedIn: "linkedin.com/in/jane",
		},
		WorkExperience: []WorkExperience{{ID: "w1", CompanyName: "Acme", IsCurrent: true}},
		Skills:         []string{"SQL"},
		TemplateID:     "modern",
	}

	data, err := json.Marshal(cv)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	// The persisted layout is a contract; rendering depends on these names.
	assert.Contains(t, raw, "userId")
	assert.Contains(t, raw, "personalInfo")
	assert.Contains(t, raw, "workExperience")
	assert.Contains(t, raw, "templateId")

	info := raw["personalInfo"].(map[string]any)
	assert.Equal(t, "Jane Doe", info["fullName"])
	assert.Equal(t, "linkedin.com/in/jane", info["linkedin"])

	work := raw["workExperience"].([]any)[0].(map[string]any)
	assert.Equal(t, "Acme", work["companyName"])
	assert.Equal(t, true, work["isCurrent"])
}

func TestJobMatch_JSONFieldNames(t *testing.T) {
	match := JobMatch{
		ID:            "m1",
		CVID:          "cv1",
		MatchScore:    87,
		MissingSkills: []string{"Go"},
		KeywordsToAdd: []string{"microservices"},
	}

	data, err := json.Marshal(match)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "cvId")
	assert.Contains(t, raw, "matchScore")
	assert.Contains(t, raw, "missingSkills")
	assert.Contains(t, raw, "keywordsToAdd")
}
