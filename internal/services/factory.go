package services

import (
	"fmt"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/internal/gemini"
	"genai-proxy-api/internal/models"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	PromptService PromptService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(cfg *config.Config, client *gemini.Client) (*ServiceContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if client == nil {
		return nil, fmt.Errorf("gemini client cannot be nil")
	}

	if err := models.ValidateEnum(cfg.Proxy.ResponseMode,
		[]string{config.ModeStructured, config.ModeEmbedded}, "response_mode"); err != nil {
		return nil, fmt.Errorf("failed to create prompt service: %w", err)
	}

	return &ServiceContainer{
		PromptService: NewPromptService(cfg, client),
	}, nil
}

// Close cleans up service resources. Nothing is held open today; the method
// exists so entrypoints can defer it uniformly.
func (sc *ServiceContainer) Close() error {
	return nil
}
