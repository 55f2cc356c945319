package gemini

import (
	"context"
	"fmt"

	"strings"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateReview/internal/logger"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.ReviewGenerator = (*ReviewGenerator)(nil)

// ReviewGenerator genera hallazgos de revisión usando la API de Gemini.
type ReviewGenerator struct {
	client    *genai.Client
	model     *genai.GenerativeModel
	modelName string
	lang      string
}

func NewReviewGenerator(ctx context.Context, cfg *config.Config) (*ReviewGenerator, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("API key de Gemini no configurada")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0)
	model.SetMaxOutputTokens(int32(cfg.MaxOutputTokens))
	model.ResponseMIMEType = "application/json"

	return &ReviewGenerator{
		client:    client,
		model:     model,
		modelName: cfg.Model,
		lang:      cfg.Language,
	}, nil
}

// GenerateFindings implementa ports.ReviewGenerator.
func (g *ReviewGenerator) GenerateFindings(ctx context.Context, content string) ([]models.ReviewFinding, error) {
	if content == "" {
		return nil, fmt.Errorf("contenido vacío para revisar")
	}

	prompt := fmt.Sprintf(ai.GetReviewPromptTemplate(g.lang), content)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, err
	}

	raw := formatResponse(resp)
	if raw == "" {
		logger.Warn(ctx, "respuesta vacía de Gemini", "model", g.modelName)
		return nil, nil
	}

	return ai.ParseFindings(raw), nil
}

// GetModelName implementa ports.ReviewGenerator
func (g *ReviewGenerator) GetModelName() string {
	return g.modelName
}

// GetProviderName implementa ports.ReviewGenerator
func (g *ReviewGenerator) GetProviderName() string {
	return config.ProviderGemini
}

// Close libera el cliente subyacente.
func (g *ReviewGenerator) Close() error {
	return g.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if txt, ok := part.(genai.Text); ok {
					formattedContent.WriteString(string(txt))
				}
			}
		}
	}
	return formattedContent.String()
}
