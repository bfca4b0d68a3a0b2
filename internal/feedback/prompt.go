package feedback

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/algetutor/internal/session"
)

// buildUserPrompt selects the template matching the session outcome and
// fills in the {n_errors} and {details} placeholders.
func buildUserPrompt(tpl Templates, results []session.Result) string {
	var wrong []session.Result
	for _, r := range results {
		if !r.Correct {
			wrong = append(wrong, r)
		}
	}

	switch {
	case len(wrong) == 0:
		return tpl.AllCorrect
	case len(wrong) == len(results):
		return fillPlaceholders(tpl.AllWrong, len(wrong), renderDetails(wrong))
	default:
		return fillPlaceholders(tpl.SomeWrong, len(wrong), renderDetails(wrong))
	}
}

// renderDetails formats the wrong answers as blocks the tutor prompt
// embeds, one per question.
func renderDetails(wrong []session.Result) string {
	blocks := make([]string, 0, len(wrong))
	for _, r := range wrong {
		blocks = append(blocks, fmt.Sprintf(
			"Pregunta: %s\nRespuesta del estudiante: %s\nRespuesta correcta: %s",
			r.Question.Statement, r.Answer, r.Question.Answer))
	}
	return strings.Join(blocks, "\n\n")
}

func fillPlaceholders(tpl string, nErrors int, details string) string {
	return strings.NewReplacer(
		"{n_errors}", strconv.Itoa(nErrors),
		"{details}", details,
	).Replace(tpl)
}

// withNoThink appends the /no_think marker that tells reasoning models to
// skip their thinking phase. Already-marked prompts are left alone.
func withNoThink(prompt string) string {
	if strings.Contains(prompt, "/no_think") {
		return prompt
	}
	return strings.TrimRight(prompt, " \t\r\n") + " /no_think"
}
