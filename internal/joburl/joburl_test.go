package joburl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_KnownShapes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "view path",
			input:    "https://www.linkedin.com/jobs/view/1234567890",
			expected: "https://www.linkedin.com/jobs/view/1234567890/",
		},
		{
			name:     "view path with trailing slash",
			input:    "https://www.linkedin.com/jobs/view/1234567890/",
			expected: "https://www.linkedin.com/jobs/view/1234567890/",
		},
		{
			name:     "view path with tracking params",
			input:    "https://www.linkedin.com/jobs/view/987654321/?refId=abc&trackingId=xyz",
			expected: "https://www.linkedin.com/jobs/view/987654321/",
		},
		{
			name:     "collections page with currentJobId",
			input:    "https://www.linkedin.com/jobs/collections/recommended/?currentJobId=555",
			expected: "https://www.linkedin.com/jobs/view/555/",
		},
		{
			name:     "search page with currentJobId as second param",
			input:    "https://www.linkedin.com/jobs/search/?keywords=golang&currentJobId=4001",
			expected: "https://www.linkedin.com/jobs/view/4001/",
		},
		{
			name:     "generic short form",
			input:    "https://www.linkedin.com/jobs/31337",
			expected: "https://www.linkedin.com/jobs/view/31337/",
		},
		{
			name:     "mobile host still matches view path",
			input:    "https://linkedin.com/jobs/view/42?utm_source=share",
			expected: "https://www.linkedin.com/jobs/view/42/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_PriorityOrder(t *testing.T) {
	// When both a view path and a currentJobId are present, the view path wins.
	got, err := Normalize("https://www.linkedin.com/jobs/view/111/?currentJobId=222")
	assert.NoError(t, err)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/111/", got)
}

func TestNormalize_UnknownShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unrelated careers page", "https://example.com/careers"},
		{"empty string", ""},
		{"jobs path without ID", "https://www.linkedin.com/jobs/view/"},
		{"non-numeric ID", "https://www.linkedin.com/jobs/view/abc123"},
		{"plain text", "senior backend engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Empty(t, got)
		})
	}
}

func TestExtractID(t *testing.T) {
	id, err := ExtractID("https://www.linkedin.com/jobs/view/777/")
	assert.NoError(t, err)
	assert.Equal(t, "777", id)
}
