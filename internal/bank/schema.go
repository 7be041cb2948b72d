package bank

// BankSchema is the JSON Schema a question-bank document must satisfy
// before any Problem is constructed from it. Construction-level rules
// (subtraction underflow) still apply afterwards; the schema only rejects
// documents that are structurally wrong.
var BankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"problems": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"operands": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "integer", "minimum": 0, "maximum": 255},
						"minItems": 2,
						"maxItems": 2,
					},
					"operator": map[string]any{
						"type": "string",
						"enum": []any{"+", "-", "x"},
					},
					"num_wrong": map[string]any{
						"type":    "integer",
						"minimum": 0,
					},
					"latest_time_secs": map[string]any{
						"type":    "number",
						"minimum": 0,
					},
				},
				"required":             []any{"operands", "operator", "num_wrong", "latest_time_secs"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"problems"},
	"additionalProperties": false,
}
