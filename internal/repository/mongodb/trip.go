package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// TripRepository is a MongoDB implementation of repository.TripRepository.
type TripRepository struct {
	store *Store
	col   *mongo.Collection
}

// NewTripRepository creates a new MongoDB trip repository.
func NewTripRepository(store *Store) *TripRepository {
	return &TripRepository{store: store, col: store.db.Collection(TripsCollection)}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, trip)
	if err != nil {
		return repository.NewStorageError("insert trip", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		trip.ID = id
	}
	return nil
}

// ListByDriver returns up to limit trips recorded for driverID.
func (r *TripRepository) ListByDriver(ctx context.Context, driverID string, limit int) ([]*domain.Trip, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	trips, err := findByDriver[domain.Trip](ctx, r.col, driverID, limit)
	if err != nil {
		return nil, repository.NewStorageError("list trips", err)
	}
	return trips, nil
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
