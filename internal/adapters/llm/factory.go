// Package llm adapts vision-capable chat-completion APIs to ports.VisionModel.
package llm

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/alttext/internal/domain"
	"github.com/renato0307/alttext/internal/ports"
)

// Provider names
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
	ProviderOpenAI    = "openai"
)

// DefaultProvider is used when none is configured
const DefaultProvider = ProviderOpenAI

// defaultModels holds the model used per provider when none is configured
var defaultModels = map[string]string{
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderGemini:    "gemini-1.5-flash",
	ProviderOllama:    "llava",
	ProviderOpenAI:    "gemma-3-4b-it-qat",
}

// Config selects and configures a provider
type Config struct {
	APIKey   string
	BaseURL  string
	Model    string
	Provider string
}

// Providers returns the supported provider names
func Providers() []string {
	return []string{ProviderAnthropic, ProviderGemini, ProviderOllama, ProviderOpenAI}
}

// DefaultModel returns the model used for provider when none is configured
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

// NewVisionModel builds the provider named in cfg. Missing API keys are
// taken from the provider's usual environment variables.
func NewVisionModel(ctx context.Context, cfg Config) (ports.VisionModel, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = DefaultProvider
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel(provider)
	}

	switch provider {
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		return NewOpenAI(cfg), nil
	case ProviderOllama:
		if cfg.BaseURL == "" {
			cfg.BaseURL = os.Getenv("OLLAMA_HOST")
		}
		return NewOllama(cfg)
	case ProviderGemini:
		if cfg.APIKey == "" {
			cfg.APIKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
		}
		return NewGemini(ctx, cfg)
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		return NewAnthropic(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnknownProvider, cfg.Provider, strings.Join(Providers(), ", "))
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
