package ai

import (
	"testing"

	"pitchcraft-backend/pkg/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dynamicConfig(provider ProviderType, apiKey string) DynamicConfig {
	return DynamicConfig{
		Provider:         provider,
		GeminiAPIKey:     apiKey,
		GetOllamaBaseURL: func() string { return "http://localhost:11434" },
		GetOllamaModel:   func() string { return "llama3" },
	}
}

func TestNewPitchGeneratorWithDynamicConfig(t *testing.T) {
	t.Run("gemini provider", func(t *testing.T) {
		gen, err := NewPitchGeneratorWithDynamicConfig(dynamicConfig(ProviderGemini, "key"))
		require.NoError(t, err)
		assert.IsType(t, &gemini.GeminiService{}, gen)
	})

	t.Run("gemini provider without key", func(t *testing.T) {
		_, err := NewPitchGeneratorWithDynamicConfig(dynamicConfig(ProviderGemini, ""))
		assert.Error(t, err)
	})

	t.Run("ollama provider", func(t *testing.T) {
		gen, err := NewPitchGeneratorWithDynamicConfig(dynamicConfig(ProviderOllama, "key"))
		require.NoError(t, err)
		assert.IsType(t, &OllamaService{}, gen)
	})

	t.Run("auto prefers gemini when key set", func(t *testing.T) {
		gen, err := NewPitchGeneratorWithDynamicConfig(dynamicConfig(ProviderAuto, "key"))
		require.NoError(t, err)
		assert.IsType(t, &gemini.GeminiService{}, gen)
	})

	t.Run("auto falls back to ollama without key", func(t *testing.T) {
		gen, err := NewPitchGeneratorWithDynamicConfig(dynamicConfig(ProviderAuto, ""))
		require.NoError(t, err)
		assert.IsType(t, &OllamaService{}, gen)
	})
}
