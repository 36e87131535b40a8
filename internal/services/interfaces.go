package services

import (
	"context"
)

// PromptService defines the interface for the prompt proxy pipeline
type PromptService interface {
	// Generate relays one prompt to the upstream generative-language API and
	// returns the post-processed candidate text.
	Generate(ctx context.Context, prompt string) (string, error)
}
