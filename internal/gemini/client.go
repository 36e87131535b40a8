package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"genai-proxy-api/internal/config"
)

// ShapeError reports an upstream response that could not be trusted: either a
// non-success HTTP status or a body missing the expected candidate text. It
// carries the raw upstream body so callers can surface it as diagnostics.
type ShapeError struct {
	StatusCode int
	RawBody    []byte
	Reason     string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected upstream response (status %d): %s", e.StatusCode, e.Reason)
}

// Client calls the generative-language API. One instance is shared across
// invocations so the pooled transport survives Lambda warm starts.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// NewClient creates a Gemini client from configuration
func NewClient(cfg config.GeminiConfig) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
	}
}

// endpoint builds the generateContent URL with the API key as a query
// parameter, the way the REST API expects it.
func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))
}

// GenerateContent issues one generateContent call and validates the response
// shape. The upstream body is parsed as JSON regardless of HTTP status; a
// response is only trusted when the status is 2xx and
// candidates[0].content.parts[0].text is present.
func (c *Client) GenerateContent(ctx context.Context, payload *GenerateContentRequest) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upstream payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"model":       c.model,
		"status_code": resp.StatusCode,
		"latency_ms":  float64(time.Since(start).Nanoseconds()) / 1000000,
		"body_bytes":  len(raw),
	}).Info("Upstream call completed")

	var parsed GenerateContentResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ShapeError{
			StatusCode: resp.StatusCode,
			RawBody:    raw,
			Reason:     "upstream body is not valid JSON",
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reason := "upstream returned non-success status"
		if parsed.Error != nil && parsed.Error.Message != "" {
			reason = parsed.Error.Message
		}
		return nil, &ShapeError{StatusCode: resp.StatusCode, RawBody: raw, Reason: reason}
	}

	text, ok := extractText(&parsed)
	if !ok {
		return nil, &ShapeError{
			StatusCode: resp.StatusCode,
			RawBody:    raw,
			Reason:     "response has no candidate text",
		}
	}

	return &Result{Text: text, StatusCode: resp.StatusCode, RawBody: raw}, nil
}

// extractText pulls candidates[0].content.parts[0].text if every link of that
// chain is present.
func extractText(resp *GenerateContentResponse) (string, bool) {
	if len(resp.Candidates) == 0 {
		return "", false
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", false
	}
	text := content.Parts[0].Text
	if text == "" {
		return "", false
	}
	return text, true
}
