package dto

import pitchdomain "pitchcraft-backend/internal/pitch/domain"

// CreatePitchRequest mirrors the create-pitch form fields. Field presence and
// enum membership are the only validation performed, matching the
// required-field constraints of the original form.
type CreatePitchRequest struct {
	Idea        string `json:"idea" binding:"required"`
	Description string `json:"description" binding:"required"`
	Industry    string `json:"industry" binding:"required,oneof=Education Health Finance E-commerce Technology Other"`
	DetailLevel string `json:"detail_level" binding:"required,oneof=short medium long"`
}

type PitchListResponse struct {
	Pitches []*pitchdomain.Pitch `json:"pitches"`
	Total   int                  `json:"total"`
}

// GenerateResponse carries the pitch after a fetch-or-generate call.
// Generated reports whether this call invoked the AI service (false when the
// stored text was returned verbatim).
type GenerateResponse struct {
	Pitch     *pitchdomain.Pitch `json:"pitch"`
	Generated bool               `json:"generated"`
}
