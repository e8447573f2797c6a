package coach

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "bare object",
			raw:      `{"keywords": ["Go"]}`,
			expected: `{"keywords": ["Go"]}`,
		},
		{
			name:     "json code fence",
			raw:      "```json\n{\"keywords\": [\"Go\"]}\n```",
			expected: `{"keywords": ["Go"]}`,
		},
		{
			name:     "plain code fence",
			raw:      "```\n{\"keywords\": []}\n```",
			expected: `{"keywords": []}`,
		},
		{
			name:     "prose around the object",
			raw:      "Here is the result:\n{\"keywords\": [\"Go\"]}\nHope that helps!",
			expected: `{"keywords": ["Go"]}`,
		},
		{
			name:     "array value",
			raw:      "```json\n[\"a\", \"b\"]\n```",
			expected: `["a", "b"]`,
		},
		{
			name:     "whitespace only trimming",
			raw:      "  \n {\"k\": 1} \n ",
			expected: `{"k": 1}`,
		},
		{
			name:     "no json at all",
			raw:      "sorry, I cannot help with that",
			expected: "sorry, I cannot help with that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSON(tt.raw))
		})
	}
}

func TestTruncate(t *testing.T) {
	short := "short description"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("x", maxPromptInput+500)
	got := truncate(long)
	assert.Len(t, got, maxPromptInput)
}
