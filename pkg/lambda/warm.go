package lambda

import (
	"context"
	"fmt"
	"sync"
	"time"

	"genai-proxy-api/internal/config"
	"genai-proxy-api/pkg/server"
)

// WarmManager keeps the dependency container alive across warm Lambda
// invocations so the upstream HTTP connection pool is reused instead of
// re-dialed on every request.
type WarmManager struct {
	container   *server.Container
	lastUsed    time.Time
	mu          sync.RWMutex
	initialized bool
	config      *config.Config
}

var (
	globalWarmManager *WarmManager
	warmManagerOnce   sync.Once
)

// GetWarmManager returns the global warm-start manager instance
func GetWarmManager() *WarmManager {
	warmManagerOnce.Do(func() {
		globalWarmManager = &WarmManager{}
	})
	return globalWarmManager
}

// Initialize builds the dependency container. A failed attempt leaves the
// manager untouched so a later invocation can retry with fresh configuration.
func (wm *WarmManager) Initialize(cfg *config.Config) error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if wm.initialized && wm.container != nil {
		return nil
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		return err
	}

	wm.config = cfg
	wm.container = container
	wm.lastUsed = time.Now()
	wm.initialized = true
	return nil
}

// GetContainer returns the dependency container, initializing if necessary
func (wm *WarmManager) GetContainer(ctx context.Context) (*server.Container, error) {
	wm.mu.RLock()
	if wm.initialized && wm.container != nil {
		wm.lastUsed = time.Now()
		container := wm.container
		wm.mu.RUnlock()
		return container, nil
	}
	cfg := wm.config
	wm.mu.RUnlock()

	if cfg == nil {
		loaded, err := config.GetOptimizedConfig()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := wm.Initialize(cfg); err != nil {
		return nil, err
	}

	wm.mu.RLock()
	defer wm.mu.RUnlock()
	if wm.container == nil {
		return nil, fmt.Errorf("warm container unavailable after initialization")
	}
	return wm.container, nil
}

// Cleanup releases the container so the next invocation reinitializes
func (wm *WarmManager) Cleanup() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if wm.container != nil {
		if err := wm.container.Close(); err != nil {
			return err
		}
		wm.container = nil
	}

	wm.initialized = false
	return nil
}
