package server

import (
	"fmt"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/internal/gemini"
	"genai-proxy-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// PromptService runs the pipeline with the deployment-configured policy
	PromptService services.PromptService
	// GenerateService runs the pipeline pinned to embedded mode with fence
	// stripping, regardless of deployment configuration
	GenerateService services.PromptService
	// EvaluateService runs the pipeline pinned to structured (raw JSON) mode
	EvaluateService services.PromptService

	// Internal dependencies
	client   *gemini.Client
	services *services.ServiceContainer
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	client := gemini.NewClient(cfg.Gemini)

	serviceContainer, err := services.NewServiceContainer(cfg, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	// The generate face always strips markdown fences from embedded text and
	// the evaluate face always requests a raw JSON document. Both share the
	// client so every service draws from one connection pool.
	generateCfg := *cfg
	generateCfg.Proxy.ResponseMode = config.ModeEmbedded
	generateCfg.Proxy.StripMarkdownFence = true
	generateContainer, err := services.NewServiceContainer(&generateCfg, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create generate service container: %w", err)
	}

	evaluateCfg := *cfg
	evaluateCfg.Proxy.ResponseMode = config.ModeStructured
	evaluateCfg.Proxy.StripMarkdownFence = false
	evaluateContainer, err := services.NewServiceContainer(&evaluateCfg, client)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluate service container: %w", err)
	}

	container := &Container{
		Config:          cfg,
		PromptService:   serviceContainer.PromptService,
		GenerateService: generateContainer.PromptService,
		EvaluateService: evaluateContainer.PromptService,
		client:          client,
		services:        serviceContainer,
	}

	return container, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.services != nil {
		if err := c.services.Close(); err != nil {
			return fmt.Errorf("failed to close services: %w", err)
		}
	}
	return nil
}
