package repository

import (
	"context"

	pitchdomain "pitchcraft-backend/internal/pitch/domain"
)

// PitchRepository defines persistence operations for pitch documents.
// Implementations return (nil, nil) when a document does not exist.
type PitchRepository interface {
	Create(ctx context.Context, pitch *pitchdomain.Pitch) (string, error)
	FindByID(ctx context.Context, id string) (*pitchdomain.Pitch, error)
	FindByOwner(ctx context.Context, ownerID string, limit int) ([]*pitchdomain.Pitch, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
	UpdateGeneration(ctx context.Context, id, generatedPitch string) error
	Delete(ctx context.Context, id string) error
}
