package doctor

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	airegistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCommand(t *testing.T, cfg *config.Config) func(ctx context.Context) error {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "../../../i18n/locales")
	require.NoError(t, err)

	providers := airegistry.NewReviewProviderRegistry()
	require.NoError(t, providers.Register(config.ProviderGemini, gemini.NewProviderFactory()))

	cmd := NewDoctorCommand(providers).CreateCommand(trans, cfg)
	return func(ctx context.Context) error {
		return cmd.Run(ctx, []string{"doctor"})
	}
}

func TestDoctor_HealthyEnvironment(t *testing.T) {
	cfg := &config.Config{
		GitHubToken:     "ghp_test",
		Owner:           "Tomas-vilte",
		Repo:            "MateReview",
		Provider:        config.ProviderGemini,
		GeminiAPIKey:    "test-key",
		Model:           "gemini-2.5-flash",
		MaxOutputTokens: 2000,
		BatchTokens:     16000,
	}

	err := newCommand(t, cfg)(context.Background())
	assert.NoError(t, err)
}

func TestDoctor_MissingToken(t *testing.T) {
	cfg := &config.Config{
		Provider:     config.ProviderGemini,
		GeminiAPIKey: "test-key",
	}

	err := newCommand(t, cfg)(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestDoctor_MissingAPIKey(t *testing.T) {
	cfg := &config.Config{
		GitHubToken:     "ghp_test",
		Owner:           "Tomas-vilte",
		Repo:            "MateReview",
		Provider:        config.ProviderGemini,
		Model:           "gemini-2.5-flash",
		MaxOutputTokens: 2000,
		BatchTokens:     16000,
	}

	err := newCommand(t, cfg)(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}
