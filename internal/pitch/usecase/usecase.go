package usecase

import (
	"context"
	"errors"

	authdomain "pitchcraft-backend/internal/auth/domain"
	"pitchcraft-backend/internal/notification"
	pitchdomain "pitchcraft-backend/internal/pitch/domain"
	pitchdto "pitchcraft-backend/internal/pitch/dto"
	"pitchcraft-backend/pkg/ai"
)

var (
	ErrPitchNotFound        = errors.New("pitch not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrPitchLimitReached    = errors.New("pitch limit reached")
	ErrGenerationInProgress = errors.New("generation already in progress")
	ErrNotGenerated         = errors.New("pitch has not been generated yet")
	ErrGeneratorUnavailable = errors.New("AI service not configured")
)

// PitchUsecase exposes the pitch operations used by delivery.
type PitchUsecase interface {
	CreatePitch(ctx context.Context, owner *authdomain.User, req *pitchdto.CreatePitchRequest) (*pitchdomain.Pitch, error)
	GetUserPitches(ctx context.Context, userID string, limit int) ([]*pitchdomain.Pitch, error)
	GetPitchByID(ctx context.Context, userID, pitchID string) (*pitchdomain.Pitch, error)
	DeletePitch(ctx context.Context, userID, pitchID string) error

	// GenerateIfMissing implements the fetch-or-generate-once flow: stored
	// text is returned as-is; otherwise one generation call runs and its
	// result is persisted. The bool reports whether generation was invoked.
	GenerateIfMissing(ctx context.Context, userID, pitchID string) (*pitchdomain.Pitch, bool, error)

	// Regenerate overwrites previously stored text. It never re-sends the
	// one-time notification email.
	Regenerate(ctx context.Context, userID, pitchID string) (*pitchdomain.Pitch, error)

	ExportPDF(ctx context.Context, userID, pitchID string) ([]byte, error)

	SetGenerator(gen ai.PitchGenerator)
	SetNotifier(n Notifier)
}

// Notifier queues a best-effort notification email.
type Notifier interface {
	Queue(job notification.EmailJob) bool
}
