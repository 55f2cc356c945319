package gemini

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

// ProviderFactory crea generadores de revisión de Gemini.
type ProviderFactory struct{}

func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

func (f *ProviderFactory) CreateReviewGenerator(ctx context.Context, cfg *config.Config) (ports.ReviewGenerator, error) {
	return NewReviewGenerator(ctx, cfg)
}

func (f *ProviderFactory) ValidateConfig(cfg *config.Config) error {
	if cfg.GeminiAPIKey == "" {
		return domainerrors.NewConfigError("GEMINI_API_KEY", "API key de Gemini no configurada", nil)
	}
	if cfg.Model == "" {
		return domainerrors.NewConfigError("MATE_REVIEW_MODEL", "modelo no configurado", nil)
	}
	return nil
}

func (f *ProviderFactory) Name() string {
	return config.ProviderGemini
}
