package lambda

import (
	"context"
	"encoding/json"
)

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        []byte            `json:"body"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// JSONResponse builds a Response with an application/json content type and
// the marshaled payload as body. Marshal failures surface as a plain 500;
// payloads here are always small local structs, so that path is unreachable
// in practice.
func JSONResponse(statusCode int, payload interface{}) *Response {
	body, err := json.Marshal(payload)
	if err != nil {
		return &Response{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"success":false,"message":"Failed to encode response"}`),
		}
	}

	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
