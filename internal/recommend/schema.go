package recommend

import "github.com/edukite/pathfinder/internal/llm"

// RecommendationListSchema validates the extracted analysis payload before
// decoding.
var RecommendationListSchema = &llm.Schema{
	Name:        "recommendation-list",
	Description: "Ranked course recommendations constrained to the offering catalog",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"description": map[string]any{
					"type": "string",
				},
				"matchPercentage": map[string]any{
					"type":    "integer",
					"minimum": 0,
					"maximum": 100,
				},
				"skills": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"educationPath": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"id": map[string]any{
					"type":        "string",
					"description": "The identifier of the recommended offering",
				},
			},
			"required": []any{"title", "description", "matchPercentage", "skills", "educationPath", "id"},
		},
	},
}
