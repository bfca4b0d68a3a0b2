// Package feedback asks the configured LLM for tutoring feedback on a
// finished quiz session and sanitizes the reply for display.
package feedback

import (
	"context"
	"fmt"

	"github.com/abhisek/algetutor/internal/llm"
	"github.com/abhisek/algetutor/internal/sanitize"
	"github.com/abhisek/algetutor/internal/session"
)

// Config holds generation settings for feedback requests.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   500,
		Temperature: 0.5,
	}
}

// Service produces tutor feedback for quiz results.
type Service struct {
	provider  llm.Provider
	templates Templates
	cfg       Config
}

// NewService creates a feedback service.
func NewService(provider llm.Provider, templates Templates, cfg Config) *Service {
	return &Service{provider: provider, templates: templates, cfg: cfg}
}

// Feedback requests tutoring feedback for the given results and returns a
// displayable string. It never returns an error: provider failures are
// rendered as a Spanish error message, matching how the rest of the app
// surfaces LLM problems to the student.
func (s *Service) Feedback(ctx context.Context, results []session.Result) string {
	ctx = llm.WithPurpose(ctx, "feedback")

	userPrompt := withNoThink(buildUserPrompt(s.templates, results))

	req := llm.Request{
		System: s.templates.System,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userPrompt},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Sprintf("Error al consultar LLM: %v", err)
	}

	return sanitize.Sanitize(resp.Content)
}
