package analysis

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ExtractJSONObject locates a JSON object embedded anywhere in free-form
// model output: markdown fences are stripped, then the slice from the first
// '{' to the last '}' is taken. Absence of a brace pair is a FormatError.
func ExtractJSONObject(text string) (string, error) {
	text = cleanJSONBlock(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", &FormatError{Message: "no JSON object found in response"}
	}
	return text[start : end+1], nil
}

// cleanJSONBlock removes markdown code fences. Models often wrap JSON in
// ```json ... ``` blocks even when instructed not to.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// validateShape checks a candidate JSON document against the expected result
// schema. Any mismatch, including a schema that fails to load against the
// document, is a FormatError.
func validateShape(schema, document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return &FormatError{Message: "response is not a JSON object", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	desc := result.Errors()[0]
	field := desc.Field()
	if field == "" {
		field = "(root)"
	}
	return &FormatError{Message: field + ": " + desc.Description()}
}

// clampScore bounds a rubric score into [0,100] and truncates to an
// integer.
func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}

// clampMatchScore bounds a match score into [0,100] without truncation.
func clampMatchScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
