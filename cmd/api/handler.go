package api

import (
	authDelivery "pitchcraft-backend/internal/auth/delivery"
	authUsecase "pitchcraft-backend/internal/auth/usecase"
	pitchDelivery "pitchcraft-backend/internal/pitch/delivery"
	pitchUsecasePkg "pitchcraft-backend/internal/pitch/usecase"
	"pitchcraft-backend/pkg/ai"
	"pitchcraft-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	pitchUsecase    pitchUsecasePkg.PitchUsecase
	config          *config.Config
	logger          *zap.Logger
	authHandler     *authDelivery.AuthHandler
	pitchHandler    *pitchDelivery.PitchHandler
	settingsHandler *SettingsHandler
}

func NewHandler(authUc authUsecase.AuthUsecase, pitchUc pitchUsecasePkg.PitchUsecase, notifier pitchUsecasePkg.Notifier, cfg *config.Config, logger *zap.Logger) *Handler {
	// Runtime Ollama settings, shared between the settings API and the AI factory
	ollamaSettings := NewOllamaSettings(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI service with dynamic config getters for runtime updates
	aiCfg := ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiApiKey,
		GetOllamaBaseURL: ollamaSettings.BaseURL,
		GetOllamaModel:   ollamaSettings.Model,
	}
	aiService, err := ai.NewPitchGeneratorWithDynamicConfig(aiCfg)
	if err != nil {
		logger.Warn("failed to initialize AI service", zap.Error(err))
	} else {
		logger.Info("AI service initialized", zap.String("provider", cfg.AIProvider))
		pitchUc.SetGenerator(aiService)
	}

	if notifier != nil {
		pitchUc.SetNotifier(notifier)
	}

	return &Handler{
		authUsecase:     authUc,
		pitchUsecase:    pitchUc,
		config:          cfg,
		logger:          logger,
		authHandler:     authDelivery.NewAuthHandler(authUc),
		pitchHandler:    pitchDelivery.NewPitchHandler(pitchUc),
		settingsHandler: NewSettingsHandler(ollamaSettings),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.authUsecase, h.authHandler, h.pitchHandler, h.settingsHandler)

	return r.Run(addr)
}
