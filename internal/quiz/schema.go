package quiz

// Record schemas for the four question datasets. Records failing
// validation are dropped at load time rather than crashing mid-game.

var multipleChoiceSchema = &recordSchema{
	Name: "multiple-choice-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string"},
			"question":   map[string]any{"type": "string", "minLength": 1},
			"choices": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text":      map[string]any{"type": "string", "minLength": 1},
						"isCorrect": map[string]any{"type": "boolean"},
					},
					"required": []any{"text", "isCorrect"},
				},
			},
		},
		"required": []any{"category", "difficulty", "question", "choices"},
	},
}

var trueFalseSchema = &recordSchema{
	Name: "true-false-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string"},
			"statement":  map[string]any{"type": "string", "minLength": 1},
			"isTrue":     map[string]any{"type": "boolean"},
		},
		"required": []any{"category", "difficulty", "statement", "isTrue"},
	},
}

var fillInSchema = &recordSchema{
	Name: "fill-in-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string"},
			"question":   map[string]any{"type": "string", "minLength": 1},
			"answer":     map[string]any{"type": "string", "minLength": 1},
		},
		"required": []any{"category", "difficulty", "question", "answer"},
	},
}

var dropdownSchema = &recordSchema{
	Name: "dropdown-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category":   map[string]any{"type": "string"},
			"difficulty": map[string]any{"type": "string"},
			"question":   map[string]any{"type": "string", "minLength": 1},
			"blanks": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"correctAnswer": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 2,
							"items":    map[string]any{"type": "string"},
						},
					},
					"required": []any{"correctAnswer", "options"},
				},
			},
		},
		"required": []any{"category", "difficulty", "question", "blanks"},
	},
}
