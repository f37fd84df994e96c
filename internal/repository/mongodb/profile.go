package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// ProfileRepository is a MongoDB implementation of repository.ProfileRepository.
type ProfileRepository struct {
	store *Store
	col   *mongo.Collection
}

// NewProfileRepository creates a new MongoDB profile repository.
func NewProfileRepository(store *Store) *ProfileRepository {
	return &ProfileRepository{store: store, col: store.db.Collection(ProfileCollection)}
}

// GetByDriver retrieves the profile for driverID.
func (r *ProfileRepository) GetByDriver(ctx context.Context, driverID string) (*domain.Profile, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	var profile domain.Profile
	err := r.col.FindOne(ctx, bson.M{"driver_id": driverID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, repository.NewStorageError("get profile", err)
	}
	return &profile, nil
}

// Replace upserts the driver's profile in one operation, then removes any
// extra documents for the same driver left behind by delete-then-insert
// writers. When a concurrent upsert wins the insert, the unique driver_id
// index rejects this one and the winner's document is replaced instead, so
// the last writer's fields are stored.
func (r *ProfileRepository) Replace(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	replacement := *profile
	replacement.ID = primitive.NilObjectID

	filter := bson.M{"driver_id": profile.DriverID}
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var stored domain.Profile
	err := r.col.FindOneAndReplace(ctx, filter, replacement, opts).Decode(&stored)
	if mongo.IsDuplicateKeyError(err) {
		// A concurrent upsert for this driver inserted first. Its document
		// now exists, so replace it in place.
		err = r.col.FindOneAndReplace(ctx, filter, replacement, opts.SetUpsert(false)).Decode(&stored)
	}
	if err != nil {
		return nil, repository.NewStorageError("replace profile", err)
	}

	_, err = r.col.DeleteMany(ctx, bson.M{
		"driver_id": profile.DriverID,
		"_id":       bson.M{"$ne": stored.ID},
	})
	if err != nil {
		return nil, repository.NewStorageError("dedupe profile", err)
	}

	return &stored, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
