package analysis

// JSON Schemas for the two analysis result shapes. Scores are intentionally
// unbounded here; out-of-range values are clamped after parsing rather than
// rejected.

const reviewResultSchema = `{
  "type": "object",
  "required": ["score", "feedback"],
  "properties": {
    "score": {"type": "number"},
    "feedback": {
      "type": "object",
      "required": ["strengths", "improvements", "suggestions"],
      "properties": {
        "strengths": {"type": "array", "items": {"type": "string"}},
        "improvements": {"type": "array", "items": {"type": "string"}},
        "suggestions": {"type": "string"}
      }
    }
  }
}`

const matchResultSchema = `{
  "type": "object",
  "required": ["matchScore", "missingSkills", "suggestions"],
  "properties": {
    "matchScore": {"type": "number"},
    "matchingSkills": {"type": "array", "items": {"type": "string"}},
    "missingSkills": {"type": "array", "items": {"type": "string"}},
    "keywordsToAdd": {"type": "array", "items": {"type": "string"}},
    "suggestions": {"type": "string"},
    "recommendations": {"type": "array", "items": {"type": "string"}}
  }
}`
