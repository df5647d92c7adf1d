package repository

import (
	"context"
	"fmt"

	pitchdomain "pitchcraft-backend/internal/pitch/domain"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// firestorePitchRepository implements PitchRepository on a Firestore collection
type firestorePitchRepository struct {
	client     *firestore.Client
	collection string
}

// NewFirestorePitchRepository creates a Firestore-backed PitchRepository.
func NewFirestorePitchRepository(client *firestore.Client, collection string) PitchRepository {
	if collection == "" {
		collection = "pitches"
	}
	return &firestorePitchRepository{
		client:     client,
		collection: collection,
	}
}

// NewFirestoreClient creates the shared Firestore client for the given project.
func NewFirestoreClient(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID must be provided to create a firestore client")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	return client, nil
}

func (r *firestorePitchRepository) Create(ctx context.Context, pitch *pitchdomain.Pitch) (string, error) {
	docRef, _, err := r.client.Collection(r.collection).Add(ctx, pitch)
	if err != nil {
		return "", fmt.Errorf("failed to create pitch document: %w", err)
	}
	pitch.ID = docRef.ID
	return docRef.ID, nil
}

func (r *firestorePitchRepository) FindByID(ctx context.Context, id string) (*pitchdomain.Pitch, error) {
	snap, err := r.client.Collection(r.collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pitch %s: %w", id, err)
	}

	var pitch pitchdomain.Pitch
	if err := snap.DataTo(&pitch); err != nil {
		return nil, fmt.Errorf("failed to decode pitch %s: %w", id, err)
	}
	pitch.ID = snap.Ref.ID
	return &pitch, nil
}

func (r *firestorePitchRepository) FindByOwner(ctx context.Context, ownerID string, limit int) ([]*pitchdomain.Pitch, error) {
	query := r.client.Collection(r.collection).Where("ownerId", "==", ownerID)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var pitches []*pitchdomain.Pitch
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list pitches for owner %s: %w", ownerID, err)
		}

		var pitch pitchdomain.Pitch
		if err := snap.DataTo(&pitch); err != nil {
			return nil, fmt.Errorf("failed to decode pitch %s: %w", snap.Ref.ID, err)
		}
		pitch.ID = snap.Ref.ID
		pitches = append(pitches, &pitch)
	}

	return pitches, nil
}

func (r *firestorePitchRepository) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	docs, err := r.client.Collection(r.collection).
		Where("ownerId", "==", ownerID).
		Select().
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, fmt.Errorf("failed to count pitches for owner %s: %w", ownerID, err)
	}
	return len(docs), nil
}

func (r *firestorePitchRepository) UpdateGeneration(ctx context.Context, id, generatedPitch string) error {
	updates := []firestore.Update{
		{Path: "generatedPitch", Value: generatedPitch},
		{Path: "generatedAt", Value: firestore.ServerTimestamp},
	}
	if _, err := r.client.Collection(r.collection).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update generation for pitch %s: %w", id, err)
	}
	return nil
}

func (r *firestorePitchRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(r.collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete pitch %s: %w", id, err)
	}
	return nil
}
