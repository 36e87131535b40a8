package gemini

// Wire types for the generativelanguage.googleapis.com generateContent call.
// Field names follow the upstream camelCase JSON exactly.

// Part is a single text fragment of a content block
type Part struct {
	Text string `json:"text,omitempty"`
}

// Content is one message in the conversation
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// GenerationConfig tunes the upstream generation behavior
type GenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
	MaxOutputTokens  int    `json:"maxOutputTokens,omitempty"`
}

// GenerateContentRequest is the outbound payload
type GenerateContentRequest struct {
	Contents         []Content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

// Candidate is one generated answer
type Candidate struct {
	Content *Content `json:"content,omitempty"`
}

// APIError is the error envelope upstream returns on failed calls
type APIError struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

// GenerateContentResponse is the inbound payload, parsed regardless of the
// HTTP status the upstream answered with
type GenerateContentResponse struct {
	Candidates []Candidate `json:"candidates,omitempty"`
	Error      *APIError   `json:"error,omitempty"`
}

// Result is the validated outcome of one generateContent call
type Result struct {
	Text       string
	StatusCode int
	RawBody    []byte
}
