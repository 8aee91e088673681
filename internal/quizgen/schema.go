package quizgen

import "github.com/edukite/pathfinder/internal/llm"

// QuestionListSchema validates the extracted question array before decoding.
var QuestionListSchema = &llm.Schema{
	Name:        "question-list",
	Description: "The full set of generated assessment questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"minLength":   1,
					"description": "The question prompt shown to the candidate",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    OptionsPerQuestion,
					"maxItems":    OptionsPerQuestion,
					"description": "Exactly 4 distinct answer options",
				},
				"category": map[string]any{
					"type":        "string",
					"description": "The selected category name from the fixed list",
				},
			},
			"required": []any{"question", "options", "category"},
		},
	},
}
