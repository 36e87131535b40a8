package services

import "strings"

// Literal markdown fence markers. Matching is deliberately literal prefix and
// suffix only: markers appearing mid-string are never stripped, and the two
// checks run independently so a one-sided fence is stripped one-sidedly.
const (
	fencePrefix = "```json"
	fenceSuffix = "```"
)

// StripMarkdownFence removes a surrounding ```json ... ``` wrapper from text
// and trims the remaining whitespace. Text without the markers passes through
// unchanged apart from the trim being skipped.
func StripMarkdownFence(text string) string {
	stripped := false

	if strings.HasPrefix(text, fencePrefix) {
		text = text[len(fencePrefix):]
		stripped = true
	}
	if strings.HasSuffix(text, fenceSuffix) {
		text = text[:len(text)-len(fenceSuffix)]
		stripped = true
	}

	if stripped {
		text = strings.TrimSpace(text)
	}
	return text
}
