package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrNoResult means the provider answered but produced nothing usable.
	ErrNoResult = errors.New("provider returned no result")

	// ErrUnsupported means the provider variant lacks the capability.
	ErrUnsupported = errors.New("capability not supported by provider")
)

// Provider is the set of AI capabilities the pipeline relies on.
type Provider interface {
	Summarize(ctx context.Context, text string) (string, error)
	TranslateTitle(ctx context.Context, title string) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

type Config struct {
	Provider     string
	BaseURL      string
	APIKey       string
	Model        string
	ImageModel   string
	TargetLocale string
	Timeout      time.Duration
}

// New builds the provider named by cfg.Provider. Unknown names and missing
// credentials are configuration errors.
func New(cfg Config) (Provider, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	language := LanguageName(cfg.TargetLocale)

	switch strings.ToLower(cfg.Provider) {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("ai provider openai: api_key is required")
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Model == "" {
			cfg.Model = "gpt-4o-mini"
		}
		if cfg.ImageModel == "" {
			cfg.ImageModel = "dall-e-3"
		}
		return NewOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.ImageModel, language, httpClient), nil
	case "ollama":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("ai provider ollama: base_url is required")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("ai provider ollama: model is required")
		}
		return NewOllama(cfg.BaseURL, cfg.Model, language, httpClient), nil
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}

// LanguageName turns a locale code into the language name used in prompts.
func LanguageName(locale string) string {
	switch strings.ToLower(locale) {
	case "ko", "":
		return "Korean"
	case "ja":
		return "Japanese"
	case "zh":
		return "Chinese"
	case "en":
		return "English"
	default:
		return locale
	}
}
