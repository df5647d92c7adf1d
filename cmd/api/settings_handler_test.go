package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsRouter(settings *OllamaSettings) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSettingsHandler(settings)

	r := gin.New()
	r.GET("/api/settings/ollama", h.GetOllama)
	r.PUT("/api/settings/ollama", h.UpdateOllama)
	r.POST("/api/settings/ollama/test", h.TestOllama)
	return r
}

func TestOllamaSettings_UpdateFlowsToGetters(t *testing.T) {
	settings := NewOllamaSettings("http://localhost:11434", "llama3")
	r := settingsRouter(settings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/settings/ollama",
		strings.NewReader(`{"ollama_base_url":"http://gpu-box:11434","ollama_model":"mistral"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	// The AI factory reads through these same getters
	assert.Equal(t, "http://gpu-box:11434", settings.BaseURL())
	assert.Equal(t, "mistral", settings.Model())
}

func TestOllamaSettings_UpdateKeepsModelWhenOmitted(t *testing.T) {
	settings := NewOllamaSettings("http://localhost:11434", "llama3")
	r := settingsRouter(settings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/api/settings/ollama",
		strings.NewReader(`{"ollama_base_url":"http://gpu-box:11434"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "llama3", settings.Model())
}

func TestGetOllamaSettings(t *testing.T) {
	settings := NewOllamaSettings("http://localhost:11434", "llama3")
	r := settingsRouter(settings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/settings/ollama", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http://localhost:11434")
	assert.Contains(t, w.Body.String(), "llama3")
}

func TestTestOllamaConnection(t *testing.T) {
	tags := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/tags" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer tags.Close()

	t.Run("reachable server", func(t *testing.T) {
		settings := NewOllamaSettings(tags.URL, "llama3")
		r := settingsRouter(settings)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/settings/ollama/test", nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"connected":true`)
	})

	t.Run("unreachable server", func(t *testing.T) {
		settings := NewOllamaSettings("http://127.0.0.1:1", "llama3")
		r := settingsRouter(settings)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/settings/ollama/test", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
