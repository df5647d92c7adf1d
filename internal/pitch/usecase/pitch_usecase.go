package usecase

import (
	"context"
	"time"

	authdomain "pitchcraft-backend/internal/auth/domain"
	"pitchcraft-backend/internal/notification"
	pitchdomain "pitchcraft-backend/internal/pitch/domain"
	pitchdto "pitchcraft-backend/internal/pitch/dto"
	"pitchcraft-backend/internal/pitch/repository"
	"pitchcraft-backend/pkg/ai"
	"pitchcraft-backend/pkg/pdf"

	"go.uber.org/zap"
)

// pitchUsecase implements PitchUsecase interface
type pitchUsecase struct {
	pitchRepo  repository.PitchRepository
	generator  ai.PitchGenerator
	notifier   Notifier
	logger     *zap.Logger
	maxPitches int
	generating *generationTracker
}

// NewPitchUsecase creates a new instance of pitchUsecase
func NewPitchUsecase(pitchRepo repository.PitchRepository, logger *zap.Logger, maxPitches int) PitchUsecase {
	return &pitchUsecase{
		pitchRepo:  pitchRepo,
		logger:     logger,
		maxPitches: maxPitches,
		generating: newGenerationTracker(),
	}
}

func (u *pitchUsecase) SetGenerator(gen ai.PitchGenerator) {
	u.generator = gen
}

func (u *pitchUsecase) SetNotifier(n Notifier) {
	u.notifier = n
}

func (u *pitchUsecase) CreatePitch(ctx context.Context, owner *authdomain.User, req *pitchdto.CreatePitchRequest) (*pitchdomain.Pitch, error) {
	count, err := u.pitchRepo.CountByOwner(ctx, owner.ID)
	if err != nil {
		return nil, err
	}
	if u.maxPitches > 0 && count >= u.maxPitches {
		return nil, ErrPitchLimitReached
	}

	pitch := &pitchdomain.Pitch{
		OwnerID:     owner.ID,
		OwnerEmail:  owner.Email,
		OwnerName:   owner.Name,
		Idea:        req.Idea,
		Description: req.Description,
		Industry:    pitchdomain.Industry(req.Industry),
		DetailLevel: pitchdomain.DetailLevel(req.DetailLevel),
	}

	if _, err := u.pitchRepo.Create(ctx, pitch); err != nil {
		return nil, err
	}

	return pitch, nil
}

func (u *pitchUsecase) GetUserPitches(ctx context.Context, userID string, limit int) ([]*pitchdomain.Pitch, error) {
	return u.pitchRepo.FindByOwner(ctx, userID, limit)
}

func (u *pitchUsecase) GetPitchByID(ctx context.Context, userID, pitchID string) (*pitchdomain.Pitch, error) {
	pitch, err := u.pitchRepo.FindByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}
	if pitch == nil {
		return nil, ErrPitchNotFound
	}
	if pitch.OwnerID != userID {
		return nil, ErrUnauthorized
	}
	return pitch, nil
}

func (u *pitchUsecase) DeletePitch(ctx context.Context, userID, pitchID string) error {
	pitch, err := u.GetPitchByID(ctx, userID, pitchID)
	if err != nil {
		return err
	}
	return u.pitchRepo.Delete(ctx, pitch.ID)
}

func (u *pitchUsecase) GenerateIfMissing(ctx context.Context, userID, pitchID string) (*pitchdomain.Pitch, bool, error) {
	pitch, err := u.GetPitchByID(ctx, userID, pitchID)
	if err != nil {
		return nil, false, err
	}

	if pitch.HasGeneration() {
		return pitch, false, nil
	}

	pitch, err = u.generate(ctx, pitch, true)
	if err != nil {
		return nil, false, err
	}
	return pitch, true, nil
}

func (u *pitchUsecase) Regenerate(ctx context.Context, userID, pitchID string) (*pitchdomain.Pitch, error) {
	pitch, err := u.GetPitchByID(ctx, userID, pitchID)
	if err != nil {
		return nil, err
	}

	return u.generate(ctx, pitch, false)
}

// generate runs a single generation call under the per-pitch state machine,
// persists the result, and — only for a first generation — queues the
// one-time notification email.
func (u *pitchUsecase) generate(ctx context.Context, pitch *pitchdomain.Pitch, firstTime bool) (*pitchdomain.Pitch, error) {
	if u.generator == nil {
		return nil, ErrGeneratorUnavailable
	}

	if !u.generating.begin(pitch.ID) {
		return nil, ErrGenerationInProgress
	}
	defer u.generating.end(pitch.ID)

	text, err := u.generator.GeneratePitch(ctx, pitch.Idea, pitch.Description, string(pitch.Industry), string(pitch.DetailLevel))
	if err != nil {
		u.logger.Error("pitch generation failed", zap.String("pitchId", pitch.ID), zap.Error(err))
		return nil, err
	}

	if err := u.pitchRepo.UpdateGeneration(ctx, pitch.ID, text); err != nil {
		return nil, err
	}

	// Re-read so the server-assigned generation timestamp is populated
	updated, err := u.pitchRepo.FindByID(ctx, pitch.ID)
	if err != nil || updated == nil {
		// The write succeeded; fall back to the in-memory copy with a
		// client-side timestamp standing in for the server one
		now := time.Now()
		pitch.GeneratedPitch = text
		pitch.GeneratedAt = &now
		updated = pitch
	}

	if firstTime && u.notifier != nil {
		u.notifier.Queue(notification.EmailJob{
			To:       updated.OwnerEmail,
			UserName: updated.OwnerName,
			PitchID:  updated.ID,
			Idea:     updated.Idea,
			Summary:  text,
		})
	}

	return updated, nil
}

func (u *pitchUsecase) ExportPDF(ctx context.Context, userID, pitchID string) ([]byte, error) {
	pitch, err := u.GetPitchByID(ctx, userID, pitchID)
	if err != nil {
		return nil, err
	}

	if !pitch.HasGeneration() {
		return nil, ErrNotGenerated
	}

	report := pdf.Report{
		Title: "Startup Pitch Report",
		Details: []pdf.Detail{
			{Label: "Idea", Value: pitch.Idea},
			{Label: "Description", Value: pitch.Description},
			{Label: "Industry", Value: string(pitch.Industry)},
			{Label: "Detail Level", Value: string(pitch.DetailLevel)},
		},
		BodyHeading: "AI Generated Pitch",
		Body:        pitch.GeneratedPitch,
	}

	return report.Build()
}
