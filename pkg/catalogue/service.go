package catalogue

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Service exposes the current registry snapshot and rebuilds it on demand.
type Service interface {
	Lookup(code string) (Config, error)
	Codes() []string
	Reload(ctx context.Context) error
}

type ServiceImpl struct {
	repo Repository // nil when no database is configured

	mu       sync.RWMutex
	registry *Registry
}

// NewService creates a catalogue service starting from the built-in rule
// table. Call Reload to overlay database overrides.
func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{
		repo:     repo,
		registry: Default(),
	}
}

func (s *ServiceImpl) Lookup(code string) (Config, error) {
	return s.snapshot().Lookup(code)
}

func (s *ServiceImpl) Codes() []string {
	return s.snapshot().Codes()
}

// Reload builds a fresh registry from the defaults plus the override rows in
// the database, and swaps it in atomically. Without a repository it restores
// the plain defaults.
func (s *ServiceImpl) Reload(ctx context.Context) error {
	configs := defaultConfigs()

	if s.repo != nil {
		overrides, err := s.repo.GetOverrides(ctx)
		if err != nil {
			return fmt.Errorf("failed to load catalogue rule overrides: %w", err)
		}
		for _, override := range overrides {
			configs[override.Code] = override.Config
		}
		log.Infof("catalogue registry reloaded with %d override(s)", len(overrides))
	}

	registry := NewRegistry(configs)
	s.mu.Lock()
	s.registry = registry
	s.mu.Unlock()
	return nil
}

func (s *ServiceImpl) snapshot() *Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}
