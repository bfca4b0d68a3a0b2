// Package questions loads and samples quiz question sets.
package questions

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/abhisek/algetutor/internal/configschema"
)

// Question is a single exercise: the statement shown to the student and
// the expected answer in factored form.
type Question struct {
	Statement string
	Answer    string
}

// Set is a loaded question file: an optional title and the questions.
type Set struct {
	// Title is the heading shown above the quiz. Empty when the file has
	// no "titulo" key, in which case no heading is shown.
	Title     string
	Questions []Question
}

// questionFile mirrors the preguntas.json layout.
type questionFile struct {
	Titulo    string `json:"titulo"`
	Preguntas []struct {
		Pregunta  string `json:"pregunta"`
		Respuesta string `json:"respuesta"`
	} `json:"preguntas"`
}

// Load reads and validates a question file.
func Load(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a question document after schema validation.
func Parse(raw []byte) (*Set, error) {
	if err := configschema.Validate("question-set", questionSetSchema, raw); err != nil {
		return nil, fmt.Errorf("question file: %w", err)
	}

	var f questionFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode question file: %w", err)
	}

	set := &Set{Title: strings.TrimSpace(f.Titulo)}
	for _, q := range f.Preguntas {
		set.Questions = append(set.Questions, Question{
			Statement: q.Pregunta,
			Answer:    q.Respuesta,
		})
	}
	return set, nil
}

// Sample returns n randomly chosen questions without repetition.
// When n is zero, negative, or at least the set size, all questions are
// returned in their original order.
func Sample(qs []Question, n int) []Question {
	if n <= 0 || n >= len(qs) {
		out := make([]Question, len(qs))
		copy(out, qs)
		return out
	}

	idx := rand.Perm(len(qs))
	out := make([]Question, 0, n)
	for _, i := range idx[:n] {
		out = append(out, qs[i])
	}
	return out
}
