package feedback

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/algetutor/internal/configschema"
)

// Templates holds the system prompt and the three user prompt templates.
// User templates may contain {n_errors} and {details} placeholders.
type Templates struct {
	System     string
	AllCorrect string
	SomeWrong  string
	AllWrong   string
}

// DefaultTemplates returns the built-in Spanish prompts, used when no
// prompts.json is supplied.
func DefaultTemplates() Templates {
	return Templates{
		System: "Eres un tutor de álgebra paciente y motivador. Respondes siempre en " +
			"español, con explicaciones breves y claras para un estudiante de secundaria. " +
			"Usa texto plano, sin LaTeX ni Markdown.",
		AllCorrect: "El estudiante respondió correctamente todos los ejercicios de " +
			"factorización. Felicítalo brevemente y sugiérele un siguiente paso para seguir practicando.",
		SomeWrong: "El estudiante cometió {n_errors} error(es) en los siguientes ejercicios:\n\n" +
			"{details}\n\nExplica brevemente cada error y cómo corregirlo, sin dar sermones.",
		AllWrong: "El estudiante falló los {n_errors} ejercicios:\n\n{details}\n\n" +
			"Explica con paciencia los conceptos básicos de factorización usando estos ejercicios como ejemplo.",
	}
}

// templatesFile mirrors the prompts.json layout.
type templatesFile struct {
	SystemPrompt string `json:"system_prompt"`
	UserPrompts  struct {
		AllCorrect string `json:"all_correct"`
		SomeWrong  string `json:"some_wrong"`
		AllWrong   string `json:"all_wrong"`
	} `json:"user_prompts"`
}

var templatesSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"system_prompt": map[string]any{"type": "string", "minLength": 1},
		"user_prompts": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"all_correct": map[string]any{"type": "string", "minLength": 1},
				"some_wrong":  map[string]any{"type": "string", "minLength": 1},
				"all_wrong":   map[string]any{"type": "string", "minLength": 1},
			},
			"required": []any{"all_correct", "some_wrong", "all_wrong"},
		},
	},
	"required": []any{"system_prompt", "user_prompts"},
}

// LoadTemplates reads and validates a prompts.json file.
func LoadTemplates(path string) (Templates, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Templates{}, fmt.Errorf("read prompts file: %w", err)
	}
	return ParseTemplates(raw)
}

// ParseTemplates decodes a prompts.json document.
func ParseTemplates(raw []byte) (Templates, error) {
	if err := configschema.Validate("prompt-templates", templatesSchema, raw); err != nil {
		return Templates{}, fmt.Errorf("prompts file: %w", err)
	}

	var f templatesFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return Templates{}, fmt.Errorf("decode prompts file: %w", err)
	}

	return Templates{
		System:     f.SystemPrompt,
		AllCorrect: f.UserPrompts.AllCorrect,
		SomeWrong:  f.UserPrompts.SomeWrong,
		AllWrong:   f.UserPrompts.AllWrong,
	}, nil
}
