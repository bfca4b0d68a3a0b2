package questions

// questionSetSchema is the JSON Schema for preguntas.json.
var questionSetSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"titulo": map[string]any{
			"type": "string",
		},
		"preguntas": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"pregunta":  map[string]any{"type": "string", "minLength": 1},
					"respuesta": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"pregunta", "respuesta"},
			},
		},
	},
	"required": []any{"preguntas"},
}
