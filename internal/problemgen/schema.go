package problemgen

import "github.com/abhisek/middlemath/internal/schema"

// ProblemSchema is the JSON wire shape of a Problem.
var ProblemSchema = &schema.Schema{
	Name:        "problem",
	Description: "A generated practice problem with its canonical answer and worked solution",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The prompt shown to the learner",
			},
			"answer": map[string]any{
				"type":        []any{"number", "string"},
				"description": "The canonical answer: a number, or a text form such as 3:4, 1/2 or x < 5",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A short strategy hint",
			},
			"solution": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "Worked solution; the last line ends with the answer",
			},
		},
		"required":             []any{"question", "answer", "hint", "solution"},
		"additionalProperties": false,
	},
}
