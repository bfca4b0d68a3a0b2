// Package grading compares free-text algebra answers for equivalence.
//
// The comparison is purely lexical: it canonicalizes the textual form of a
// factored product so that "(x+2)(x-3)" and "(x-3)*(x+2)" compare equal.
// It is not a computer algebra system — distributed forms, sign rewriting
// and nested products are out of scope.
package grading

import (
	"sort"
	"strings"
	"unicode"
)

// Normalize canonicalizes a raw answer for comparison.
//
// Rules:
//   - Lower-case, all whitespace removed
//   - Adjacent ")(" becomes ")*(" (implicit multiplication)
//   - Single term: literal parens trimmed from both ends
//   - Product: factors split on "*", paren-trimmed, sorted lexicographically
//
// Normalize is total: any input, including the empty string, yields a
// result. Unbalanced parentheses are processed leniently (character trim,
// not structural matching).
func Normalize(raw string) string {
	expr := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(raw))

	expr = strings.ReplaceAll(expr, ")(", ")*(")

	if !strings.Contains(expr, "*") {
		return strings.Trim(expr, "()")
	}

	var factors []string
	for _, f := range strings.Split(expr, "*") {
		if f == "" {
			continue
		}
		factors = append(factors, strings.Trim(f, "()"))
	}
	// Plain string order. Factor order must not matter; factor content must.
	sort.Strings(factors)
	return strings.Join(factors, "*")
}

// Equivalent reports whether two answers normalize to the same form.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
