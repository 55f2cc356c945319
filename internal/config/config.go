package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	domainerrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
)

type (
	// Config agrupa toda la configuración del run, tomada del entorno del
	// runner de CI. Inmutable una vez cargada.
	Config struct {
		GitHubToken string
		Owner       string
		Repo        string
		EventPath   string

		Whitelist string
		Blacklist string

		Provider        string
		GeminiAPIKey    string
		AnthropicAPIKey string
		Model           string

		MaxOutputTokens int
		BatchTokens     int
		Language        string
	}
)

const (
	defaultProvider        = ProviderGemini
	defaultLang            = "en"
	defaultMaxOutputTokens = 2000
	defaultBatchTokens     = 16000
)

const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-2.5-flash",
	ProviderAnthropic: "claude-sonnet-4-5",
}

// SupportedProviders retorna los proveedores de IA soportados.
func SupportedProviders() []string {
	return []string{ProviderGemini, ProviderAnthropic}
}

// DefaultModelForProvider retorna el modelo por defecto de un proveedor.
func DefaultModelForProvider(provider string) string {
	return defaultModels[provider]
}

// LoadFromEnv carga la configuración desde las variables de entorno
// estándar de GitHub Actions más las propias de mate-review.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		GitHubToken:     os.Getenv("GITHUB_TOKEN"),
		EventPath:       os.Getenv("GITHUB_EVENT_PATH"),
		Whitelist:       os.Getenv("PR_REVIEW_WHITELIST"),
		Blacklist:       os.Getenv("PR_REVIEW_BLACKLIST"),
		Provider:        strings.ToLower(strings.TrimSpace(os.Getenv("MATE_REVIEW_PROVIDER"))),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:           strings.TrimSpace(os.Getenv("MATE_REVIEW_MODEL")),
		Language:        strings.TrimSpace(os.Getenv("MATE_REVIEW_LANG")),
		MaxOutputTokens: defaultMaxOutputTokens,
		BatchTokens:     defaultBatchTokens,
	}

	if repository := os.Getenv("GITHUB_REPOSITORY"); repository != "" {
		parts := strings.SplitN(repository, "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, domainerrors.NewConfigError("GITHUB_REPOSITORY",
				"el formato esperado es 'owner/repo'", nil)
		}
		cfg.Owner = parts[0]
		cfg.Repo = parts[1]
	}

	if cfg.Provider == "" {
		cfg.Provider = defaultProvider
	}
	if cfg.Language == "" {
		cfg.Language = defaultLang
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModelForProvider(cfg.Provider)
	}

	var err error
	if cfg.MaxOutputTokens, err = intFromEnv("MATE_REVIEW_MAX_TOKENS", defaultMaxOutputTokens); err != nil {
		return nil, err
	}
	if cfg.BatchTokens, err = intFromEnv("MATE_REVIEW_BATCH_TOKENS", defaultBatchTokens); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate chequea que la configuración alcance para correr una revisión.
func Validate(cfg *Config) error {
	if cfg.GitHubToken == "" {
		return domainerrors.NewConfigError("GITHUB_TOKEN", "token de GitHub no configurado", nil)
	}
	if cfg.Owner == "" || cfg.Repo == "" {
		return domainerrors.NewConfigError("GITHUB_REPOSITORY", "repositorio no configurado", nil)
	}

	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return domainerrors.NewConfigError("GEMINI_API_KEY", "API key de Gemini no configurada", nil)
		}
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return domainerrors.NewConfigError("ANTHROPIC_API_KEY", "API key de Anthropic no configurada", nil)
		}
	default:
		return domainerrors.NewConfigError("MATE_REVIEW_PROVIDER",
			"proveedor desconocido: "+cfg.Provider, nil)
	}

	if cfg.Model == "" {
		return domainerrors.NewConfigError("MATE_REVIEW_MODEL", "modelo no configurado", nil)
	}
	if cfg.MaxOutputTokens <= 0 {
		return domainerrors.NewConfigError("MATE_REVIEW_MAX_TOKENS", "debe ser mayor que 0", nil)
	}
	if cfg.BatchTokens <= 0 {
		return domainerrors.NewConfigError("MATE_REVIEW_BATCH_TOKENS", "debe ser mayor que 0", nil)
	}
	return nil
}

func intFromEnv(name string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.NewConfigError(name, "no es un entero válido", errors.New(raw))
	}
	return value, nil
}
