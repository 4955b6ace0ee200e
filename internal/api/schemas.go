package api

import "github.com/abhisek/middlemath/internal/schema"

// CheckRequestSchema validates the body of POST /v1/check.
var CheckRequestSchema = &schema.Schema{
	Name:        "check-request",
	Description: "A user answer and the correct answer to compare it with",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"user_answer": map[string]any{
				"type":      "string",
				"maxLength": 200,
			},
			"correct_answer": map[string]any{
				"type":      []any{"number", "string"},
				"minLength": 1,
				"maxLength": 200,
			},
		},
		"required":             []any{"user_answer", "correct_answer"},
		"additionalProperties": false,
	},
}
