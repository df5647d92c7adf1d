package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration
	DatabaseURL      string

	// Firestore (pitch document store)
	GoogleProjectID string
	PitchCollection string

	// AI provider
	AIProvider    string
	GeminiApiKey  string
	OllamaBaseURL string
	OllamaModel   string

	// Email (SES)
	AWSRegion    string
	EmailFrom    string
	EmailEnabled bool

	// Base URL used for links embedded in notification emails
	AppBaseURL string

	MaxPitchesPerUser int

	LogLevel  string
	LogFormat string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	accessExpiry := 15 * time.Minute
	if exp := os.Getenv("JWT_ACCESS_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			accessExpiry = parsed
		}
	}

	refreshExpiry := 168 * time.Hour // 7 days
	if exp := os.Getenv("JWT_REFRESH_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			refreshExpiry = parsed
		}
	}

	maxPitches := 3
	if v := os.Getenv("MAX_PITCHES_PER_USER"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxPitches = parsed
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTAccessExpiry:   accessExpiry,
		JWTRefreshExpiry:  refreshExpiry,
		DatabaseURL:       getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=pitchcraft port=5432 sslmode=disable"),
		GoogleProjectID:   getEnv("GOOGLE_PROJECT_ID", ""),
		PitchCollection:   getEnv("PITCH_COLLECTION", "pitches"),
		AIProvider:        getEnv("AI_PROVIDER", "auto"),
		GeminiApiKey:      getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:       getEnv("OLLAMA_MODEL", "llama3"),
		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		EmailFrom:         getEnv("EMAIL_FROM", "no-reply@pitchcraft.app"),
		EmailEnabled:      getEnv("EMAIL_ENABLED", "true") == "true",
		AppBaseURL:        getEnv("APP_BASE_URL", "http://localhost:5173"),
		MaxPitchesPerUser: maxPitches,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
