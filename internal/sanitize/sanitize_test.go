package sanitize

import "testing"

func TestSanitize_HiddenReasoning(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"think block", "<think>secret</think>visible", "visible"},
		{"think block multiline", "<think>line one\nline two</think>answer", "answer"},
		{"think block case insensitive", "<THINK>secret</THINK>visible", "visible"},
		{"unmatched think tag kept", "<think>still open", "<think>still open"},
		{"thought line", "Thought: hmm\nLa respuesta es 4", "La respuesta es 4"},
		{"razonamiento line", "Razonamiento: pasos internos\nBien hecho", "Bien hecho"},
		{"assistant reasoning line", "assistant reasoning goes here\nok", "ok"},
		{"indented reasoning line", "  razonamiento: x\nok", "ok"},
	}

	for _, tc := range tests {
		if got := Sanitize(tc.input); got != tc.want {
			t.Errorf("%s: Sanitize(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestSanitize_Markup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"markdown header", "# Resultado\nbien", "Resultado\nbien"},
		{"deep header", "### Paso 1\nbien", "Paso 1\nbien"},
		{"inline latex", `\(x+1\)`, "x+1"},
		{"inline latex multiline", "\\(x +\n1\\)", "x +\n1"},
		{"block latex", `\[x^2 - 1\]`, "x² - 1"},
		{"display math", "$$a+b$$", "a+b"},
		{"display math multiline", "$$a\n+b$$", "a\n+b"},
		{"trivial paren", "(x) es la variable", "x es la variable"},
		{"multi char paren kept", "(ab) queda igual", "(ab) queda igual"},
		{"stray hash removed", "uno # dos", "uno  dos"},
		{"unmatched latex kept", `\(x+1`, `\(x+1`},
	}

	for _, tc := range tests {
		if got := Sanitize(tc.input); got != tc.want {
			t.Errorf("%s: Sanitize(%q) = %q, want %q", tc.name, tc.input, got, tc.want)
		}
	}
}

func TestSanitize_Superscripts(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"x^2", "x²"},
		{"a^12", "a¹²"},
		{"x^2 + y^3", "x² + y³"},
		{"2^10 = 1024", "2¹⁰ = 1024"},
		{"sin caret", "sin caret"},
		{"x^", "x^"},
	}

	for _, tc := range tests {
		if got := Sanitize(tc.input); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestSanitize_LatexThenSuperscript(t *testing.T) {
	// Inline unwrap happens before exponent conversion.
	if got := Sanitize(`\(x^2\)`); got != "x²" {
		t.Errorf("Sanitize(\\(x^2\\)) = %q, want x²", got)
	}
}

func TestSanitize_PlainTextNoOp(t *testing.T) {
	if got := Sanitize("hello world"); got != "hello world" {
		t.Errorf("expected no-op, got %q", got)
	}
}

func TestSanitize_TrimsWhitespace(t *testing.T) {
	if got := Sanitize("  bien hecho \n"); got != "bien hecho" {
		t.Errorf("expected trimmed output, got %q", got)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
}
