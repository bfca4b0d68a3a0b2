package questions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `{
	"titulo": "Factorización",
	"preguntas": [
		{"pregunta": "Factoriza x^2-1", "respuesta": "(x+1)(x-1)"},
		{"pregunta": "Factoriza x^2+5x+6", "respuesta": "(x+2)(x+3)"}
	]
}`

func TestParse(t *testing.T) {
	set, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	assert.Equal(t, "Factorización", set.Title)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, "Factoriza x^2-1", set.Questions[0].Statement)
	assert.Equal(t, "(x+1)(x-1)", set.Questions[0].Answer)
}

func TestParse_NoTitle(t *testing.T) {
	set, err := Parse([]byte(`{"preguntas": [{"pregunta": "p", "respuesta": "r"}]}`))
	require.NoError(t, err)
	assert.Empty(t, set.Title)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":          `{`,
		"missing preguntas": `{"titulo": "t"}`,
		"empty preguntas":   `{"preguntas": []}`,
		"missing respuesta": `{"preguntas": [{"pregunta": "p"}]}`,
		"empty pregunta":    `{"preguntas": [{"pregunta": "", "respuesta": "r"}]}`,
	}

	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestSample(t *testing.T) {
	qs := []Question{
		{Statement: "a"}, {Statement: "b"}, {Statement: "c"}, {Statement: "d"},
	}

	got := Sample(qs, 2)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Statement, got[1].Statement)

	// Every sampled question comes from the source set.
	valid := map[string]bool{"a": true, "b": true, "c": true, "d": true}
	for _, q := range got {
		assert.True(t, valid[q.Statement])
	}
}

func TestSample_RequestTooLarge(t *testing.T) {
	qs := []Question{{Statement: "a"}, {Statement: "b"}}

	got := Sample(qs, 10)
	assert.Equal(t, qs, got)

	got = Sample(qs, 0)
	assert.Equal(t, qs, got)
}
