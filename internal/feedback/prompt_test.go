package feedback

import (
	"strings"
	"testing"

	"github.com/abhisek/algetutor/internal/questions"
	"github.com/abhisek/algetutor/internal/session"
)

func testTemplates() Templates {
	return Templates{
		System:     "sistema",
		AllCorrect: "todo bien",
		SomeWrong:  "fallos: {n_errors}\n{details}",
		AllWrong:   "todos mal: {n_errors}\n{details}",
	}
}

func result(statement, correct, answer string, ok bool) session.Result {
	return session.Result{
		Question: questions.Question{Statement: statement, Answer: correct},
		Answer:   answer,
		Answered: true,
		Correct:  ok,
	}
}

func TestBuildUserPrompt_AllCorrect(t *testing.T) {
	results := []session.Result{
		result("p1", "(x+1)(x-1)", "(x-1)(x+1)", true),
		result("p2", "(x+2)(x+3)", "(x+3)(x+2)", true),
	}

	got := buildUserPrompt(testTemplates(), results)
	if got != "todo bien" {
		t.Errorf("expected all_correct template, got %q", got)
	}
}

func TestBuildUserPrompt_SomeWrong(t *testing.T) {
	results := []session.Result{
		result("p1", "(x+1)(x-1)", "(x-1)(x+1)", true),
		result("p2", "(x+2)(x+3)", "(x+2)(x+2)", false),
	}

	got := buildUserPrompt(testTemplates(), results)
	if !strings.HasPrefix(got, "fallos: 1\n") {
		t.Errorf("expected some_wrong with n_errors=1, got %q", got)
	}
	if !strings.Contains(got, "Pregunta: p2") {
		t.Errorf("details missing question, got %q", got)
	}
	if !strings.Contains(got, "Respuesta del estudiante: (x+2)(x+2)") {
		t.Errorf("details missing student answer, got %q", got)
	}
	if !strings.Contains(got, "Respuesta correcta: (x+2)(x+3)") {
		t.Errorf("details missing correct answer, got %q", got)
	}
}

func TestBuildUserPrompt_AllWrong(t *testing.T) {
	results := []session.Result{
		result("p1", "(x+1)(x-1)", "x", false),
		result("p2", "(x+2)(x+3)", "y", false),
	}

	got := buildUserPrompt(testTemplates(), results)
	if !strings.HasPrefix(got, "todos mal: 2\n") {
		t.Errorf("expected all_wrong with n_errors=2, got %q", got)
	}
	// Blocks are separated by a blank line.
	if !strings.Contains(got, "\n\nPregunta: p2") {
		t.Errorf("expected blank line between detail blocks, got %q", got)
	}
}

func TestWithNoThink(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"explica esto", "explica esto /no_think"},
		{"explica esto\n", "explica esto /no_think"},
		{"ya marcado /no_think", "ya marcado /no_think"},
	}

	for _, tc := range tests {
		if got := withNoThink(tc.input); got != tc.want {
			t.Errorf("withNoThink(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
