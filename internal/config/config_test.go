package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8081" {
		t.Errorf("Expected default port 8081, got %q", cfg.Port)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash-preview-05-20" {
		t.Errorf("Unexpected default model %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.BaseURL != "https://generativelanguage.googleapis.com" {
		t.Errorf("Unexpected default base URL %q", cfg.Gemini.BaseURL)
	}
	if cfg.Gemini.MaxOutputTokens != 4096 {
		t.Errorf("Expected default token cap 4096, got %d", cfg.Gemini.MaxOutputTokens)
	}
	if cfg.Proxy.ResponseMode != ModeEmbedded {
		t.Errorf("Expected default response mode %q, got %q", ModeEmbedded, cfg.Proxy.ResponseMode)
	}
	if !cfg.Proxy.StripMarkdownFence {
		t.Error("Expected fence stripping enabled by default")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret-from-env")
	t.Setenv("RESPONSE_MODE", ModeStructured)
	t.Setenv("STRIP_MARKDOWN_FENCE", "false")
	t.Setenv("GEMINI_MAX_OUTPUT_TOKENS", "1024")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Gemini.APIKey != "secret-from-env" {
		t.Errorf("Expected API key from environment, got %q", cfg.Gemini.APIKey)
	}
	if cfg.Proxy.ResponseMode != ModeStructured {
		t.Errorf("Expected structured mode, got %q", cfg.Proxy.ResponseMode)
	}
	if cfg.Proxy.StripMarkdownFence {
		t.Error("Expected fence stripping disabled")
	}
	if cfg.Gemini.MaxOutputTokens != 1024 {
		t.Errorf("Expected token cap 1024, got %d", cfg.Gemini.MaxOutputTokens)
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BAD_INT", "not-a-number")

	if got := GetEnv("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want value", got)
	}
	if got := GetEnv("TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv fallback = %q", got)
	}
	if got := GetEnvAsInt("TEST_INT", 0); got != 42 {
		t.Errorf("GetEnvAsInt = %d, want 42", got)
	}
	if got := GetEnvAsInt("TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvAsInt with bad value = %d, want fallback 7", got)
	}
	if got := GetEnvAsBool("TEST_BOOL", false); !got {
		t.Error("GetEnvAsBool = false, want true")
	}
}
