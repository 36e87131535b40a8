package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/internal/gemini"
)

func testConfig(baseURL, mode string, strip bool) *config.Config {
	return &config.Config{
		Environment: "test",
		Gemini: config.GeminiConfig{
			APIKey:          "test-key",
			Model:           "gemini-2.5-flash-preview-05-20",
			BaseURL:         baseURL,
			MaxOutputTokens: 4096,
		},
		Proxy: config.ProxyConfig{
			ResponseMode:       mode,
			StripMarkdownFence: strip,
		},
	}
}

func newTestService(cfg *config.Config) PromptService {
	return NewPromptService(cfg, gemini.NewClient(cfg.Gemini))
}

// candidateResponse builds the upstream JSON for a single candidate text
func candidateResponse(text string) string {
	resp := gemini.GenerateContentResponse{
		Candidates: []gemini.Candidate{
			{Content: &gemini.Content{Parts: []gemini.Part{{Text: text}}}},
		},
	}
	body, _ := json.Marshal(resp)
	return string(body)
}

func TestGenerate_MissingPrompt(t *testing.T) {
	svc := newTestService(testConfig("http://unused", config.ModeEmbedded, true))

	_, err := svc.Generate(context.Background(), "")
	if !errors.Is(err, ErrMissingPrompt) {
		t.Errorf("Expected ErrMissingPrompt, got %v", err)
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	cfg := testConfig("http://unused", config.ModeEmbedded, true)
	cfg.Gemini.APIKey = ""
	svc := newTestService(cfg)

	_, err := svc.Generate(context.Background(), "a perfectly valid prompt")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}
}

func TestGenerate_EmbeddedModeStripsFence(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateResponse("```json\n{\"score\":0.75}\n```")))
	}))
	defer upstream.Close()

	svc := newTestService(testConfig(upstream.URL, config.ModeEmbedded, true))

	got, err := svc.Generate(context.Background(), "rate this")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != `{"score":0.75}` {
		t.Errorf("Expected stripped JSON, got %q", got)
	}
}

func TestGenerate_EmbeddedModeWithoutStripping(t *testing.T) {
	raw := "```json\n{\"score\":0.75}\n```"
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateResponse(raw)))
	}))
	defer upstream.Close()

	svc := newTestService(testConfig(upstream.URL, config.ModeEmbedded, false))

	got, err := svc.Generate(context.Background(), "rate this")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != raw {
		t.Errorf("Expected raw text %q, got %q", raw, got)
	}
}

func TestGenerate_StructuredMode(t *testing.T) {
	var captured gemini.GenerateContentRequest

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode upstream payload: %v", err)
		}
		w.Write([]byte(candidateResponse(`{"verdict":"pass"}`)))
	}))
	defer upstream.Close()

	svc := newTestService(testConfig(upstream.URL, config.ModeStructured, false))

	got, err := svc.Generate(context.Background(), "evaluate this")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != `{"verdict":"pass"}` {
		t.Errorf("Expected raw JSON text, got %q", got)
	}

	if captured.GenerationConfig == nil {
		t.Fatal("Structured mode must set generationConfig")
	}
	if captured.GenerationConfig.ResponseMimeType != "application/json" {
		t.Errorf("Expected responseMimeType application/json, got %q", captured.GenerationConfig.ResponseMimeType)
	}
	if captured.GenerationConfig.MaxOutputTokens != 4096 {
		t.Errorf("Expected maxOutputTokens 4096, got %d", captured.GenerationConfig.MaxOutputTokens)
	}
}

func TestGenerate_EmbeddedModeOmitsGenerationConfig(t *testing.T) {
	var captured gemini.GenerateContentRequest

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("Failed to decode upstream payload: %v", err)
		}
		w.Write([]byte(candidateResponse("plain answer")))
	}))
	defer upstream.Close()

	svc := newTestService(testConfig(upstream.URL, config.ModeEmbedded, true))

	if _, err := svc.Generate(context.Background(), "say something"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if captured.GenerationConfig != nil {
		t.Errorf("Embedded mode must omit generationConfig, got %+v", captured.GenerationConfig)
	}
}

func TestGenerate_UpstreamMissingCandidates(t *testing.T) {
	rawBody := `{"promptFeedback":{"blockReason":"SAFETY"}}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(rawBody))
	}))
	defer upstream.Close()

	svc := newTestService(testConfig(upstream.URL, config.ModeEmbedded, true))

	_, err := svc.Generate(context.Background(), "blocked prompt")
	if err == nil {
		t.Fatal("Expected error for response without candidates")
	}

	var shapeErr *gemini.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Expected ShapeError, got %T: %v", err, err)
	}
	if string(shapeErr.RawBody) != rawBody {
		t.Errorf("ShapeError must carry the raw upstream body, got %q", shapeErr.RawBody)
	}
}

func TestGenerate_UpstreamErrorStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`))
	}))
	defer upstream.Close()

	svc := newTestService(testConfig(upstream.URL, config.ModeEmbedded, true))

	_, err := svc.Generate(context.Background(), "anything")

	var shapeErr *gemini.ShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("Expected ShapeError, got %T: %v", err, err)
	}
	if shapeErr.StatusCode != http.StatusForbidden {
		t.Errorf("Expected upstream status 403, got %d", shapeErr.StatusCode)
	}
	if !strings.Contains(shapeErr.Reason, "API key not valid") {
		t.Errorf("Expected upstream error message in reason, got %q", shapeErr.Reason)
	}
}

func TestGenerate_UpstreamUnreachable(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // Shut down before the call

	svc := newTestService(testConfig(upstream.URL, config.ModeEmbedded, true))

	_, err := svc.Generate(context.Background(), "anything")
	if err == nil {
		t.Fatal("Expected error when upstream is unreachable")
	}

	var shapeErr *gemini.ShapeError
	if errors.As(err, &shapeErr) {
		t.Errorf("Network failure should not be a ShapeError, got %v", err)
	}
}
