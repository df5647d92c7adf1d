package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// OllamaSettings holds the Ollama connection settings that can be repointed
// at runtime through the settings API. Reads go through getters so the AI
// factory always sees the current values.
type OllamaSettings struct {
	mu      sync.RWMutex
	baseURL string
	model   string
}

// NewOllamaSettings seeds the runtime settings from static config.
func NewOllamaSettings(baseURL, model string) *OllamaSettings {
	return &OllamaSettings{
		baseURL: baseURL,
		model:   model,
	}
}

// BaseURL returns the current Ollama base URL.
func (s *OllamaSettings) BaseURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseURL
}

// Model returns the current Ollama model name.
func (s *OllamaSettings) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

func (s *OllamaSettings) update(baseURL, model string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = baseURL
	if model != "" {
		s.model = model
	}
}

// SettingsHandler serves the runtime-configuration endpoints.
type SettingsHandler struct {
	settings   *OllamaSettings
	httpClient *http.Client
}

// NewSettingsHandler creates a SettingsHandler over the given settings.
func NewSettingsHandler(settings *OllamaSettings) *SettingsHandler {
	return &SettingsHandler{
		settings:   settings,
		httpClient: http.DefaultClient,
	}
}

// UpdateOllamaSettingsRequest is the request body for updating Ollama settings.
type UpdateOllamaSettingsRequest struct {
	OllamaBaseURL string `json:"ollama_base_url" binding:"required"`
	OllamaModel   string `json:"ollama_model,omitempty"`
}

// GetOllama returns the current Ollama configuration
// GET /api/settings/ollama
func (h *SettingsHandler) GetOllama(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ollama_base_url": h.settings.BaseURL(),
		"ollama_model":    h.settings.Model(),
	})
}

// UpdateOllama repoints the running server at another Ollama instance
// PUT /api/settings/ollama
func (h *SettingsHandler) UpdateOllama(c *gin.Context) {
	var req UpdateOllamaSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.settings.update(req.OllamaBaseURL, req.OllamaModel)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Ollama settings updated successfully",
		"ollama_base_url": h.settings.BaseURL(),
		"ollama_model":    h.settings.Model(),
	})
}

// TestOllama probes the Ollama tags endpoint to verify the server is reachable
// POST /api/settings/ollama/test
func (h *SettingsHandler) TestOllama(c *gin.Context) {
	var req struct {
		OllamaBaseURL string `json:"ollama_base_url"`
	}
	// Fall back to the current settings when no URL is supplied
	if err := c.ShouldBindJSON(&req); err != nil || req.OllamaBaseURL == "" {
		req.OllamaBaseURL = h.settings.BaseURL()
	}

	resp, err := h.httpClient.Get(req.OllamaBaseURL + "/api/tags")
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected": false,
			"error":     err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"connected":   false,
			"status_code": resp.StatusCode,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"connected":       true,
		"ollama_base_url": req.OllamaBaseURL,
	})
}
