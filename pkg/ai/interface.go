package ai

import "context"

// PitchGenerator is the interface for AI pitch generation.
// Implement this interface to add new AI providers (Gemini, Ollama, OpenAI, etc.)
type PitchGenerator interface {
	GeneratePitch(ctx context.Context, idea, description, industry, detailLevel string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
