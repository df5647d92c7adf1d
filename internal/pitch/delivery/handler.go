package delivery

import (
	"errors"
	"net/http"
	"strconv"

	authdomain "pitchcraft-backend/internal/auth/domain"
	"pitchcraft-backend/internal/pitch/dto"
	"pitchcraft-backend/internal/pitch/usecase"

	"github.com/gin-gonic/gin"
)

// PitchHandler handles pitch-related HTTP requests
type PitchHandler struct {
	pitchUsecase usecase.PitchUsecase
}

// NewPitchHandler creates a new PitchHandler
func NewPitchHandler(pitchUsecase usecase.PitchUsecase) *PitchHandler {
	return &PitchHandler{
		pitchUsecase: pitchUsecase,
	}
}

// GetPitches returns all pitches for the authenticated user
// GET /api/pitches?limit=50
func (h *PitchHandler) GetPitches(c *gin.Context) {
	userID := c.GetString("userID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	pitches, err := h.pitchUsecase.GetUserPitches(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PitchListResponse{
		Pitches: pitches,
		Total:   len(pitches),
	})
}

// CreatePitch creates a new pitch brief
// POST /api/pitches
func (h *PitchHandler) CreatePitch(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePitchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pitch, err := h.pitchUsecase.CreatePitch(c.Request.Context(), user, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrPitchLimitReached) {
			c.JSON(http.StatusConflict, gin.H{"error": "You have reached the maximum number of pitches. Delete one to create a new pitch."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pitch)
}

// GetPitchByID returns a specific pitch
// GET /api/pitches/:id
func (h *PitchHandler) GetPitchByID(c *gin.Context) {
	userID := c.GetString("userID")
	pitchID := c.Param("id")

	pitch, err := h.pitchUsecase.GetPitchByID(c.Request.Context(), userID, pitchID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pitch)
}

// DeletePitch deletes a pitch
// DELETE /api/pitches/:id
func (h *PitchHandler) DeletePitch(c *gin.Context) {
	userID := c.GetString("userID")
	pitchID := c.Param("id")

	if err := h.pitchUsecase.DeletePitch(c.Request.Context(), userID, pitchID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pitch deleted successfully"})
}

// GeneratePitch returns the stored generated text, producing it first when
// the pitch has none yet
// POST /api/pitches/:id/generate
func (h *PitchHandler) GeneratePitch(c *gin.Context) {
	userID := c.GetString("userID")
	pitchID := c.Param("id")

	pitch, generated, err := h.pitchUsecase.GenerateIfMissing(c.Request.Context(), userID, pitchID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Pitch:     pitch,
		Generated: generated,
	})
}

// RegeneratePitch replaces the stored generated text with a fresh one
// POST /api/pitches/:id/regenerate
func (h *PitchHandler) RegeneratePitch(c *gin.Context) {
	userID := c.GetString("userID")
	pitchID := c.Param("id")

	pitch, err := h.pitchUsecase.Regenerate(c.Request.Context(), userID, pitchID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GenerateResponse{
		Pitch:     pitch,
		Generated: true,
	})
}

// ExportPitch renders the pitch as a downloadable PDF report
// GET /api/pitches/:id/export
func (h *PitchHandler) ExportPitch(c *gin.Context) {
	userID := c.GetString("userID")
	pitchID := c.Param("id")

	pdfBytes, err := h.pitchUsecase.ExportPDF(c.Request.Context(), userID, pitchID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="pitch-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *PitchHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrPitchNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pitch not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrGenerationInProgress):
		c.JSON(http.StatusConflict, gin.H{"error": "Generation already in progress for this pitch"})
	case errors.Is(err, usecase.ErrNotGenerated):
		c.JSON(http.StatusConflict, gin.H{"error": "Pitch has not been generated yet"})
	case errors.Is(err, usecase.ErrGeneratorUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service not configured"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func currentUser(c *gin.Context) (*authdomain.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := value.(*authdomain.User)
	return user, ok
}
