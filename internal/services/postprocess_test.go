package services

import "testing"

func TestStripMarkdownFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "fenced JSON",
			input:    "```json\n{\"score\":0.75}\n```",
			expected: `{"score":0.75}`,
		},
		{
			name:     "no markers",
			input:    "hello",
			expected: "hello",
		},
		{
			name:     "plain text with whitespace and no markers",
			input:    "  hello  ",
			expected: "  hello  ",
		},
		{
			name:     "prefix only",
			input:    "```json\n{\"a\":1}",
			expected: `{"a":1}`,
		},
		{
			name:     "suffix only",
			input:    "{\"a\":1}\n```",
			expected: `{"a":1}`,
		},
		{
			name:     "marker mid-string is not stripped",
			input:    "text with ```json inside",
			expected: "text with ```json inside",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "fence markers only",
			input:    "```json\n```",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripMarkdownFence(tt.input)
			if got != tt.expected {
				t.Errorf("StripMarkdownFence(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
