package models

// GenerateRequest is the inbound payload: one prompt to relay upstream
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required" validate:"required"`
}

// GenerateResponse is the success envelope returned to the caller
type GenerateResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
}
