package api

import (
	"net/http"

	authDelivery "pitchcraft-backend/internal/auth/delivery"
	authUsecase "pitchcraft-backend/internal/auth/usecase"
	pitchDelivery "pitchcraft-backend/internal/pitch/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecase.AuthUsecase, authHandler *authDelivery.AuthHandler, pitchHandler *pitchDelivery.PitchHandler, settingsHandler *SettingsHandler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/register", authHandler.Register)
			auth.POST("/google", authHandler.GoogleSignIn)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", authDelivery.AuthMiddleware(authUsecase), authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		// Pitch routes (protected)
		pitches := api.Group("/pitches")
		pitches.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			pitches.GET("", pitchHandler.GetPitches)
			pitches.POST("", pitchHandler.CreatePitch)
			pitches.GET("/:id", pitchHandler.GetPitchByID)
			pitches.DELETE("/:id", pitchHandler.DeletePitch)
			pitches.POST("/:id/generate", pitchHandler.GeneratePitch)
			pitches.POST("/:id/regenerate", pitchHandler.RegeneratePitch)
			pitches.GET("/:id/export", pitchHandler.ExportPitch)
		}

		// Settings routes (public) - Runtime configuration
		settings := api.Group("/settings")
		{
			settings.GET("/ollama", settingsHandler.GetOllama)
			settings.PUT("/ollama", settingsHandler.UpdateOllama)
			settings.POST("/ollama/test", settingsHandler.TestOllama)
		}
	}
}
