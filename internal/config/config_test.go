package config

import (
	"testing"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setReviewEnv(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_test")
	t.Setenv("GITHUB_REPOSITORY", "Tomas-vilte/MateReview")
	t.Setenv("GITHUB_EVENT_PATH", "/tmp/event.json")
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("MATE_REVIEW_PROVIDER", "")
	t.Setenv("MATE_REVIEW_MODEL", "")
	t.Setenv("MATE_REVIEW_MAX_TOKENS", "")
	t.Setenv("MATE_REVIEW_BATCH_TOKENS", "")
	t.Setenv("MATE_REVIEW_LANG", "")
	t.Setenv("PR_REVIEW_WHITELIST", "")
	t.Setenv("PR_REVIEW_BLACKLIST", "")
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	setReviewEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "Tomas-vilte", cfg.Owner)
	assert.Equal(t, "MateReview", cfg.Repo)
	assert.Equal(t, ProviderGemini, cfg.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, defaultMaxOutputTokens, cfg.MaxOutputTokens)
	assert.Equal(t, defaultBatchTokens, cfg.BatchTokens)
	assert.Equal(t, "en", cfg.Language)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	setReviewEnv(t)
	t.Setenv("MATE_REVIEW_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("MATE_REVIEW_MODEL", "claude-haiku-4-5")
	t.Setenv("MATE_REVIEW_MAX_TOKENS", "4096")
	t.Setenv("MATE_REVIEW_LANG", "es")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-haiku-4-5", cfg.Model)
	assert.Equal(t, 4096, cfg.MaxOutputTokens)
	assert.Equal(t, "es", cfg.Language)
}

func TestLoadFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
		field string
	}{
		{
			name:  "missing github token",
			setup: func(t *testing.T) { t.Setenv("GITHUB_TOKEN", "") },
			field: "GITHUB_TOKEN",
		},
		{
			name:  "malformed repository",
			setup: func(t *testing.T) { t.Setenv("GITHUB_REPOSITORY", "sin-barra") },
			field: "GITHUB_REPOSITORY",
		},
		{
			name:  "unknown provider",
			setup: func(t *testing.T) { t.Setenv("MATE_REVIEW_PROVIDER", "openai") },
			field: "MATE_REVIEW_PROVIDER",
		},
		{
			name:  "missing gemini key",
			setup: func(t *testing.T) { t.Setenv("GEMINI_API_KEY", "") },
			field: "GEMINI_API_KEY",
		},
		{
			name:  "non numeric budget",
			setup: func(t *testing.T) { t.Setenv("MATE_REVIEW_MAX_TOKENS", "mucho") },
			field: "MATE_REVIEW_MAX_TOKENS",
		},
		{
			name:  "negative batch budget",
			setup: func(t *testing.T) { t.Setenv("MATE_REVIEW_BATCH_TOKENS", "-5") },
			field: "MATE_REVIEW_BATCH_TOKENS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setReviewEnv(t)
			tt.setup(t)

			_, err := LoadFromEnv()
			require.Error(t, err)

			var cfgErr *domainerrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}
