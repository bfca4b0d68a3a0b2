// Package session tracks the state of one quiz run: the sampled questions
// and the student's graded submissions. Sessions live in memory only.
package session

import (
	"github.com/google/uuid"

	"github.com/abhisek/algetutor/internal/grading"
	"github.com/abhisek/algetutor/internal/questions"
)

// Result is the outcome of one question in a session.
type Result struct {
	Question questions.Question
	Answer   string
	Answered bool
	Correct  bool
}

// Session holds the questions of a quiz run and the submissions so far.
type Session struct {
	ID        string
	Questions []questions.Question

	results []Result
}

// New creates a session over the given questions.
func New(qs []questions.Question) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Questions: qs,
		results:   make([]Result, len(qs)),
	}
	for i, q := range qs {
		s.results[i].Question = q
	}
	return s
}

// Submit grades the answer for question i and records it. Resubmitting
// replaces the previous answer. Returns whether the answer was correct;
// out-of-range indices are ignored and report false.
func (s *Session) Submit(i int, answer string) bool {
	if i < 0 || i >= len(s.results) {
		return false
	}
	r := &s.results[i]
	r.Answer = answer
	r.Answered = true
	r.Correct = grading.Equivalent(answer, r.Question.Answer)
	return r.Correct
}

// Results returns a copy of all per-question outcomes.
func (s *Session) Results() []Result {
	out := make([]Result, len(s.results))
	copy(out, s.results)
	return out
}

// Wrong returns the outcomes for questions not answered correctly,
// unanswered ones included. Used to build the tutor prompt.
func (s *Session) Wrong() []Result {
	var out []Result
	for _, r := range s.results {
		if !r.Correct {
			out = append(out, r)
		}
	}
	return out
}

// Score returns the number of correct answers and the question count.
func (s *Session) Score() (correct, total int) {
	for _, r := range s.results {
		if r.Correct {
			correct++
		}
	}
	return correct, len(s.results)
}
