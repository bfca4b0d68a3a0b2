// Package sanitize cleans raw LLM replies before they are shown to the
// student: hidden reasoning is removed, LaTeX delimiters are unwrapped and
// caret exponents are rendered as Unicode superscripts.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	thinkBlockRe    = regexp.MustCompile(`(?is)<think>.*?</think>`)
	reasoningLineRe = regexp.MustCompile(`(?im)^\s*(thought|razonamiento|assistant reasoning).*`)
	headerRe        = regexp.MustCompile(`(?m)^#+\s*`)
	latexInlineRe   = regexp.MustCompile(`(?s)\\\((.*?)\\\)`)
	latexBlockRe    = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)
	displayMathRe   = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)
	trivialParenRe  = regexp.MustCompile(`\((\w)\)`)
	exponentRe      = regexp.MustCompile(`\^([0-9]+)`)
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

// Sanitize strips reasoning artifacts and markup from a raw model reply.
//
// The transformations run in order; each later rule operates on the output
// of the previous one. Unmatched or partial delimiters are left untouched,
// so Sanitize is total and a no-op on plain text.
func Sanitize(raw string) string {
	s := thinkBlockRe.ReplaceAllString(raw, "")
	s = reasoningLineRe.ReplaceAllString(s, "")
	s = headerRe.ReplaceAllString(s, "")
	s = latexInlineRe.ReplaceAllString(s, "$1")
	s = latexBlockRe.ReplaceAllString(s, "$1")
	s = displayMathRe.ReplaceAllString(s, "$1")
	// Only single-character groups collapse; "(ab)" stays as-is.
	s = trivialParenRe.ReplaceAllString(s, "$1")
	s = exponentRe.ReplaceAllStringFunc(s, superscriptDigits)
	s = strings.ReplaceAll(s, "#", "")
	return strings.TrimSpace(s)
}

// superscriptDigits converts a "^123" match to "¹²³".
func superscriptDigits(match string) string {
	var b strings.Builder
	for _, r := range match[1:] {
		b.WriteRune(superscripts[r])
	}
	return b.String()
}
