package ai

import (
	"fmt"

	"pitchcraft-backend/pkg/gemini"
)

// DynamicConfig selects the provider. The Ollama settings are read through
// getters on every call so the settings API can repoint a running server
// without a restart.
type DynamicConfig struct {
	Provider         ProviderType
	GeminiAPIKey     string
	GetOllamaBaseURL func() string
	GetOllamaModel   func() string
}

// NewPitchGeneratorWithDynamicConfig is the provider factory. With
// ProviderAuto it prefers Gemini when an API key is configured and falls
// back to Ollama otherwise; the choice is made once, at startup.
func NewPitchGeneratorWithDynamicConfig(cfg DynamicConfig) (PitchGenerator, error) {
	switch cfg.Provider {
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required for Gemini provider")
		}
		return gemini.NewGeminiService(cfg.GeminiAPIKey), nil

	case ProviderOllama:
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil

	default:
		if cfg.GeminiAPIKey != "" {
			return gemini.NewGeminiService(cfg.GeminiAPIKey), nil
		}
		return NewOllamaServiceWithGetters(cfg.GetOllamaBaseURL, cfg.GetOllamaModel), nil
	}
}
