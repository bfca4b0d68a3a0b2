package feedback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplates(t *testing.T) {
	tpl, err := ParseTemplates([]byte(`{
		"system_prompt": "eres un tutor",
		"user_prompts": {
			"all_correct": "bien",
			"some_wrong": "algunos {n_errors}",
			"all_wrong": "todos {details}"
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "eres un tutor", tpl.System)
	assert.Equal(t, "bien", tpl.AllCorrect)
	assert.Equal(t, "algunos {n_errors}", tpl.SomeWrong)
	assert.Equal(t, "todos {details}", tpl.AllWrong)
}

func TestParseTemplates_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":       `{`,
		"missing system": `{"user_prompts": {"all_correct": "a", "some_wrong": "b", "all_wrong": "c"}}`,
		"missing prompt": `{"system_prompt": "s", "user_prompts": {"all_correct": "a", "some_wrong": "b"}}`,
	}

	for name, doc := range cases {
		_, err := ParseTemplates([]byte(doc))
		assert.Error(t, err, name)
	}
}

func TestDefaultTemplates_HavePlaceholders(t *testing.T) {
	tpl := DefaultTemplates()
	assert.NotEmpty(t, tpl.System)
	assert.NotEmpty(t, tpl.AllCorrect)
	assert.Contains(t, tpl.SomeWrong, "{n_errors}")
	assert.Contains(t, tpl.SomeWrong, "{details}")
	assert.Contains(t, tpl.AllWrong, "{n_errors}")
	assert.Contains(t, tpl.AllWrong, "{details}")
}
