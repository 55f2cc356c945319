package registry

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct{}

func (f *fakeGenerator) GenerateFindings(_ context.Context, _ string) ([]models.ReviewFinding, error) {
	return nil, nil
}
func (f *fakeGenerator) GetModelName() string    { return "fake-model" }
func (f *fakeGenerator) GetProviderName() string { return "fake" }

type fakeFactory struct {
	validateErr error
}

func (f *fakeFactory) CreateReviewGenerator(_ context.Context, _ *config.Config) (ports.ReviewGenerator, error) {
	return &fakeGenerator{}, nil
}
func (f *fakeFactory) ValidateConfig(_ *config.Config) error { return f.validateErr }
func (f *fakeFactory) Name() string                          { return "fake" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewReviewProviderRegistry()

	require.NoError(t, r.Register("fake", &fakeFactory{}))
	assert.Error(t, r.Register("fake", &fakeFactory{}))

	factory, err := r.Get("fake")
	require.NoError(t, err)
	assert.Equal(t, "fake", factory.Name())

	assert.Equal(t, []string{"fake"}, r.List())
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewReviewProviderRegistry()

	_, err := r.Get("openai")

	var notFound *domainerrors.AIProviderNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "openai", notFound.Provider)
}

func TestRegistry_CreateFromConfig(t *testing.T) {
	r := NewReviewProviderRegistry()
	require.NoError(t, r.Register("fake", &fakeFactory{}))

	cfg := &config.Config{Provider: "fake"}
	gen, err := r.CreateFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "fake-model", gen.GetModelName())
}

func TestRegistry_CreateFromConfig_ValidationFails(t *testing.T) {
	r := NewReviewProviderRegistry()
	badCfg := domainerrors.NewConfigError("api_key", "falta la key", nil)
	require.NoError(t, r.Register("fake", &fakeFactory{validateErr: badCfg}))

	_, err := r.CreateFromConfig(context.Background(), &config.Config{Provider: "fake"})
	assert.ErrorIs(t, err, badCfg)
}
