package review

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	airegistry "github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslations(t *testing.T) *i18n.Translations {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "../../../i18n/locales")
	require.NoError(t, err)
	return trans
}

func TestCreateCommand(t *testing.T) {
	cmd := NewReviewCommand(airegistry.NewReviewProviderRegistry()).
		CreateCommand(newTranslations(t), &config.Config{})

	assert.Equal(t, "review", cmd.Name)
	assert.Contains(t, cmd.Aliases, "r")
	require.Len(t, cmd.Flags, 2)
	assert.Equal(t, "pr-number", cmd.Flags[0].Names()[0])
}

func TestAction_NoPRNumberAndNoEventPayload(t *testing.T) {
	// Sin --pr-number ni GITHUB_EVENT_PATH no hay forma de saber qué revisar.
	cfg := &config.Config{EventPath: ""}
	cmd := NewReviewCommand(airegistry.NewReviewProviderRegistry()).
		CreateCommand(newTranslations(t), cfg)

	err := cmd.Run(context.Background(), []string{"review"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--pr-number")
}

func TestAction_UnknownProvider(t *testing.T) {
	dir := t.TempDir() + "/event.json"
	writeEvent(t, dir, `{"pull_request": {"number": 3}}`)

	cfg := &config.Config{EventPath: dir, Provider: "desconocido"}
	cmd := NewReviewCommand(airegistry.NewReviewProviderRegistry()).
		CreateCommand(newTranslations(t), cfg)

	err := cmd.Run(context.Background(), []string{"review"})
	require.Error(t, err)
}
