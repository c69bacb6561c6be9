package bank

// bankSchema is the JSON Schema a question bank file must satisfy before
// import. Structural validation happens here; referential checks (e.g.
// questions pointing at declared categories) happen in the importer.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"format": map[string]any{
			"type":        "string",
			"description": "Semantic version of the bank file format",
		},
		"categories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"name":   map[string]any{"type": "string", "minLength": 1},
					"parent": map[string]any{"type": "string"},
				},
				"required":             []any{"id", "name"},
				"additionalProperties": false,
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"category": map[string]any{"type": "string", "minLength": 1},
					"text":     map[string]any{"type": "string", "minLength": 1},
					"choices": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 2,
					},
					"answer":      map[string]any{"type": "string", "minLength": 1},
					"explanation": map[string]any{"type": "string"},
					"mock_only":   map[string]any{"type": "boolean"},
				},
				"required":             []any{"category", "text", "choices", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"format", "categories", "questions"},
	"additionalProperties": false,
}
