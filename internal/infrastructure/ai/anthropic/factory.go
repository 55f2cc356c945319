package anthropic

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

// ProviderFactory crea generadores de revisión de Anthropic.
type ProviderFactory struct{}

func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

func (f *ProviderFactory) CreateReviewGenerator(_ context.Context, cfg *config.Config) (ports.ReviewGenerator, error) {
	return NewReviewGenerator(cfg)
}

func (f *ProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.AnthropicAPIKey == "" {
		return domainerrors.NewConfigError("ANTHROPIC_API_KEY", "API key de Anthropic no configurada", nil)
	}
	if cfg.Model == "" {
		return domainerrors.NewConfigError("MATE_REVIEW_MODEL", "modelo no configurado", nil)
	}
	return nil
}

func (f *ProviderFactory) Name() string {
	return config.ProviderAnthropic
}
