package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "url surrounded by words",
			input:    "check this out http://x.test/v/1 thanks",
			expected: "http://x.test/v/1",
		},
		{
			name:     "bare https url",
			input:    "https://example.com/watch?v=abc",
			expected: "https://example.com/watch?v=abc",
		},
		{
			name:     "uppercase scheme",
			input:    "HTTPS://EXAMPLE.COM/V",
			expected: "HTTPS://EXAMPLE.COM/V",
		},
		{
			name:     "first of several",
			input:    "http://a.test/1 and http://b.test/2",
			expected: "http://a.test/1",
		},
		{
			name:     "no url",
			input:    "just some words",
			expected: "",
		},
		{
			name:     "scheme-less link is not a url",
			input:    "example.com/v/1",
			expected: "",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractURL(tt.input))
		})
	}
}
