package session

import (
	"testing"

	"github.com/abhisek/algetutor/internal/questions"
)

func twoQuestions() []questions.Question {
	return []questions.Question{
		{Statement: "Factoriza x^2-1", Answer: "(x+1)(x-1)"},
		{Statement: "Factoriza x^2+5x+6", Answer: "(x+2)(x+3)"},
	}
}

func TestSubmit_GradesByEquivalence(t *testing.T) {
	s := New(twoQuestions())

	// Reversed factor order is still correct.
	if !s.Submit(0, "(x-1)(x+1)") {
		t.Error("expected reversed factors to be correct")
	}
	// Wrong factors are incorrect.
	if s.Submit(1, "(x+1)(x+1)") {
		t.Error("expected wrong factors to be incorrect")
	}

	correct, total := s.Score()
	if correct != 1 || total != 2 {
		t.Errorf("Score() = (%d, %d), want (1, 2)", correct, total)
	}
}

func TestSubmit_OutOfRange(t *testing.T) {
	s := New(twoQuestions())
	if s.Submit(-1, "x") || s.Submit(2, "x") {
		t.Error("out-of-range submissions must report false")
	}
}

func TestWrong(t *testing.T) {
	s := New(twoQuestions())
	s.Submit(0, "(x+1)(x-1)")
	s.Submit(1, "nope")

	wrong := s.Wrong()
	if len(wrong) != 1 {
		t.Fatalf("expected 1 wrong result, got %d", len(wrong))
	}
	if wrong[0].Answer != "nope" {
		t.Errorf("unexpected wrong answer %q", wrong[0].Answer)
	}
}

func TestWrong_IncludesUnanswered(t *testing.T) {
	s := New(twoQuestions())
	s.Submit(0, "(x+1)(x-1)")

	if len(s.Wrong()) != 1 {
		t.Error("unanswered questions count as wrong")
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(twoQuestions())
	b := New(twoQuestions())
	if a.ID == b.ID {
		t.Error("session IDs must be unique")
	}
}
