package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai"
	"github.com/Tomas-vilte/MateReview/internal/logger"
)

const (
	anthropicAPIURL     = "https://api.anthropic.com/v1/messages"
	anthropicAPIVersion = "2023-06-01"
)

var _ ports.ReviewGenerator = (*ReviewGenerator)(nil)

// ReviewGenerator genera hallazgos de revisión usando la Messages API de
// Anthropic. No hay SDK en juego: es un POST con backoff para el 429.
type ReviewGenerator struct {
	apiKey    string
	model     string
	maxTokens int
	lang      string
	client    *http.Client
}

func NewReviewGenerator(cfg *config.Config) (*ReviewGenerator, error) {
	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("API key de Anthropic no configurada")
	}
	return &ReviewGenerator{
		apiKey:    cfg.AnthropicAPIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxOutputTokens,
		lang:      cfg.Language,
		client:    &http.Client{Timeout: 120 * time.Second},
	}, nil
}

// GenerateFindings implementa ports.ReviewGenerator.
func (a *ReviewGenerator) GenerateFindings(ctx context.Context, content string) ([]models.ReviewFinding, error) {
	if content == "" {
		return nil, fmt.Errorf("contenido vacío para revisar")
	}

	prompt := fmt.Sprintf(ai.GetReviewPromptTemplate(a.lang), content)

	body := messagesRequest{
		Model:       a.model,
		MaxTokens:   a.maxTokens,
		Temperature: 0,
		System:      ai.GetSystemPrompt(),
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var raw string
	err = retryWithBackoff(ctx, 3, func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicAPIURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("creating request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-api-key", a.apiKey)
		httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

		httpResp, err := a.client.Do(httpReq)
		if err != nil {
			return fmt.Errorf("sending request: %w", err)
		}
		defer func() {
			_ = httpResp.Body.Close()
		}()

		respBody, err := io.ReadAll(httpResp.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}

		if httpResp.StatusCode == http.StatusTooManyRequests {
			return &rateLimitError{}
		}
		if httpResp.StatusCode == http.StatusUnauthorized || httpResp.StatusCode == http.StatusForbidden {
			return &authError{message: string(respBody)}
		}
		if httpResp.StatusCode != http.StatusOK {
			return fmt.Errorf("API error (status %d): %s", httpResp.StatusCode, string(respBody))
		}

		var result messagesResponse
		if err := json.Unmarshal(respBody, &result); err != nil {
			return fmt.Errorf("parsing response: %w", err)
		}

		for _, block := range result.Content {
			if block.Type == "text" {
				raw += block.Text
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if raw == "" {
		logger.Warn(ctx, "respuesta vacía de Anthropic", "model", a.model)
		return nil, nil
	}

	return ai.ParseFindings(raw), nil
}

// GetModelName implementa ports.ReviewGenerator
func (a *ReviewGenerator) GetModelName() string {
	return a.model
}

// GetProviderName implementa ports.ReviewGenerator
func (a *ReviewGenerator) GetProviderName() string {
	return config.ProviderAnthropic
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	System      string    `json:"system,omitempty"`
	Messages    []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
