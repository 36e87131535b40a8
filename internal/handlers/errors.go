package handlers

import (
	"errors"

	"genai-proxy-api/internal/gemini"
	"genai-proxy-api/internal/services"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Details carries diagnostics such as the raw upstream body
	Details string `json:"details,omitempty"`
}

// isMissingPromptError checks if an error is the missing-prompt validation error
func isMissingPromptError(err error) bool {
	return errors.Is(err, services.ErrMissingPrompt)
}

// isConfigError checks if an error is the missing-secret configuration error
func isConfigError(err error) bool {
	return errors.Is(err, services.ErrMissingAPIKey)
}

// asShapeError unwraps an upstream shape-validation error, if that is what
// failed the pipeline
func asShapeError(err error) (*gemini.ShapeError, bool) {
	var shapeErr *gemini.ShapeError
	if errors.As(err, &shapeErr) {
		return shapeErr, true
	}
	return nil, false
}

// shapeErrorStatus picks the status to report for a shape failure: the
// upstream status is echoed when it already signals an error, otherwise 500.
func shapeErrorStatus(shapeErr *gemini.ShapeError) int {
	if shapeErr.StatusCode >= 400 {
		return shapeErr.StatusCode
	}
	return 500
}
