package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/internal/gemini"
	"genai-proxy-api/internal/models"
)

// promptService implements the PromptService interface
type promptService struct {
	cfg       *config.Config
	client    *gemini.Client
	validator *validator.Validate
}

// NewPromptService creates a new prompt service instance
func NewPromptService(cfg *config.Config, client *gemini.Client) PromptService {
	return &promptService{
		cfg:       cfg,
		client:    client,
		validator: validator.New(),
	}
}

// Generate runs the full validation-and-proxy pipeline for one prompt.
func (s *promptService) Generate(ctx context.Context, prompt string) (string, error) {
	req := &models.GenerateRequest{Prompt: prompt}
	if err := s.validator.Struct(req); err != nil {
		return "", ErrMissingPrompt
	}

	// The secret is a deployment-time concern but checked on every
	// invocation, so a fixed deployment starts answering without a restart.
	if s.cfg.Gemini.APIKey == "" {
		logrus.Error("GEMINI_API_KEY is not configured")
		return "", ErrMissingAPIKey
	}

	payload := s.buildPayload(prompt)

	result, err := s.client.GenerateContent(ctx, payload)
	if err != nil {
		return "", fmt.Errorf("upstream generation failed: %w", err)
	}

	text := result.Text
	if s.cfg.Proxy.ResponseMode == config.ModeEmbedded && s.cfg.Proxy.StripMarkdownFence {
		text = StripMarkdownFence(text)
	}

	return text, nil
}

// buildPayload assembles the upstream request for the configured response
// mode. Structured mode pins the output to a raw JSON document with a token
// cap; embedded mode leaves generation unconstrained.
func (s *promptService) buildPayload(prompt string) *gemini.GenerateContentRequest {
	payload := &gemini.GenerateContentRequest{
		Contents: []gemini.Content{
			{Parts: []gemini.Part{{Text: prompt}}},
		},
	}

	if s.cfg.Proxy.ResponseMode == config.ModeStructured {
		payload.GenerationConfig = &gemini.GenerationConfig{
			ResponseMimeType: "application/json",
			MaxOutputTokens:  s.cfg.Gemini.MaxOutputTokens,
		}
	}

	return payload
}
