package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantError bool
	}{
		{
			name:     "Bare JSON object",
			input:    `{"score": 80}`,
			expected: `{"score": 80}`,
		},
		{
			name:     "JSON surrounded by prose",
			input:    "Sure! Here is the result:\n{\"score\": 80}\nLet me know if you need more.",
			expected: `{"score": 80}`,
		},
		{
			name:     "Markdown json fence",
			input:    "```json\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "Generic fence",
			input:    "```\n{\"score\": 80}\n```",
			expected: `{"score": 80}`,
		},
		{
			name:     "Nested braces",
			input:    `prefix {"feedback": {"suggestions": "x"}} suffix`,
			expected: `{"feedback": {"suggestions": "x"}}`,
		},
		{
			name:      "No braces",
			input:     "no structured output here",
			wantError: true,
		},
		{
			name:      "Only closing brace",
			input:     "} nothing opens",
			wantError: true,
		},
		{
			name:      "Empty input",
			input:     "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ExtractJSONObject(tt.input)
			if tt.wantError {
				var formatErr *FormatError
				require.ErrorAs(t, err, &formatErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestValidateShape_ReviewSchema(t *testing.T) {
	err := validateShape(reviewResultSchema, validReviewJSON)
	assert.NoError(t, err)

	err = validateShape(reviewResultSchema, `{"score": 80}`)
	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)

	err = validateShape(reviewResultSchema, `["not", "an", "object"]`)
	require.ErrorAs(t, err, &formatErr)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 100, clampScore(150))
	assert.Equal(t, 0, clampScore(-5))
	assert.Equal(t, 87, clampScore(87.9))
	assert.Equal(t, 0, clampScore(0))
	assert.Equal(t, 100, clampScore(100))
}

func TestClampMatchScore(t *testing.T) {
	assert.Equal(t, float64(100), clampMatchScore(120))
	assert.Equal(t, float64(0), clampMatchScore(-1))
	assert.Equal(t, 72.5, clampMatchScore(72.5))
}
