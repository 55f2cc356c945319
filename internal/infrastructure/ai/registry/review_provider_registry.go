package registry

import (
	"context"
	"sync"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

// ReviewProviderFactory define la interfaz para crear generadores de revisión
type ReviewProviderFactory interface {
	// CreateReviewGenerator crea el generador de hallazgos para este proveedor
	CreateReviewGenerator(ctx context.Context, cfg *config.Config) (ports.ReviewGenerator, error)

	// ValidateConfig valida la configuración para este proveedor
	ValidateConfig(cfg *config.Config) error

	// Name retorna el nombre del proveedor
	Name() string
}

// ReviewProviderRegistry gestiona el registro de proveedores de IA
type ReviewProviderRegistry struct {
	mu        sync.RWMutex
	factories map[string]ReviewProviderFactory
}

// NewReviewProviderRegistry crea un nuevo registro de proveedores
func NewReviewProviderRegistry() *ReviewProviderRegistry {
	return &ReviewProviderRegistry{
		factories: make(map[string]ReviewProviderFactory),
	}
}

// Register registra un nuevo proveedor
func (r *ReviewProviderRegistry) Register(name string, factory ReviewProviderFactory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return domainerrors.NewConfigError("provider", "proveedor '"+name+"' ya esta registrado", nil)
	}

	r.factories[name] = factory
	return nil
}

// Get obtiene un factory por nombre
func (r *ReviewProviderRegistry) Get(name string) (ReviewProviderFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[name]
	if !exists {
		return nil, domainerrors.NewAIProviderNotFoundError(name)
	}

	return factory, nil
}

// List retorna la lista de proveedores registrados
func (r *ReviewProviderRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]string, 0, len(r.factories))
	for name := range r.factories {
		providers = append(providers, name)
	}
	return providers
}

// CreateFromConfig crea el generador del proveedor activo en la configuración.
func (r *ReviewProviderRegistry) CreateFromConfig(ctx context.Context, cfg *config.Config) (ports.ReviewGenerator, error) {
	factory, err := r.Get(cfg.Provider)
	if err != nil {
		return nil, err
	}
	if err := factory.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return factory.CreateReviewGenerator(ctx, cfg)
}
