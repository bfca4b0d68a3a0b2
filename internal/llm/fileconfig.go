package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/algetutor/internal/configschema"
)

// FileConfig mirrors llm_config.json: the endpoint of an OpenAI-compatible
// server plus generation settings.
type FileConfig struct {
	URL            string  `json:"url"`
	Model          string  `json:"model"`
	Temperature    float64 `json:"temperature"`
	MaxTokens      int     `json:"max_tokens"`
	TimeoutSeconds int     `json:"timeout"`
}

var fileConfigSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"url":         map[string]any{"type": "string", "minLength": 1},
		"model":       map[string]any{"type": "string", "minLength": 1},
		"temperature": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
		"max_tokens":  map[string]any{"type": "integer", "minimum": 1},
		"timeout":     map[string]any{"type": "integer", "minimum": 1},
	},
	"required": []any{"url", "model"},
}

// LoadFileConfig reads and validates llm_config.json. Missing optional
// fields keep their defaults: temperature 0.5, max_tokens 500, timeout 90.
func LoadFileConfig(path string) (*FileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read LLM config: %w", err)
	}
	return ParseFileConfig(raw)
}

// ParseFileConfig decodes an llm_config.json document.
func ParseFileConfig(raw []byte) (*FileConfig, error) {
	if err := configschema.Validate("llm-config", fileConfigSchema, raw); err != nil {
		return nil, fmt.Errorf("LLM config: %w", err)
	}

	fc := &FileConfig{
		Temperature:    0.5,
		MaxTokens:      500,
		TimeoutSeconds: 90,
	}
	if err := json.Unmarshal(raw, fc); err != nil {
		return nil, fmt.Errorf("decode LLM config: %w", err)
	}
	return fc, nil
}

// Apply maps the file configuration onto cfg, selecting the openai
// provider with the file's endpoint as BaseURL.
func (fc *FileConfig) Apply(cfg Config) Config {
	cfg.Provider = "openai"
	cfg.OpenAI.BaseURL = fc.URL
	cfg.OpenAI.Model = fc.Model
	cfg.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	return cfg
}
