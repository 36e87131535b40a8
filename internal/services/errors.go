package services

import "errors"

// Sentinel errors for the request-validation-and-proxy pipeline. Handlers map
// these onto HTTP statuses; the service itself never touches transport codes.
var (
	// ErrMissingPrompt is returned when the prompt field is absent or empty
	ErrMissingPrompt = errors.New("missing prompt")

	// ErrMissingAPIKey is returned when the upstream secret is not configured.
	// A deployment problem, but detected lazily on each invocation.
	ErrMissingAPIKey = errors.New("server configuration error: upstream API key is not set")
)
