package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"drivelog/internal/repository"
)

// Collection names. They match the collections written by earlier versions
// of the service, so existing data stays readable.
const (
	TripsCollection    = "trips"
	ExpensesCollection = "expenses"
	ProfileCollection  = "profile"
)

// Store wraps the database handle shared by the repositories.
type Store struct {
	db        *mongo.Database
	opTimeout time.Duration
}

// NewStore creates a Store. A zero opTimeout leaves deadlines to the caller's
// context.
func NewStore(db *mongo.Database, opTimeout time.Duration) *Store {
	return &Store{db: db, opTimeout: opTimeout}
}

// Database returns the underlying database handle.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// withTimeout bounds a single store operation.
func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// Ping runs the ping command against the database.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if err := s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return repository.NewStorageError("ping", err)
	}
	return nil
}

// CollectionNames lists the collections in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, repository.NewStorageError("list collections", err)
	}
	return names, nil
}

// EnsureIndexes creates the driver_id indexes. The profile index is unique so
// that concurrent upserts for one driver cannot both insert.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	byDriver := bson.D{{Key: "driver_id", Value: 1}}
	var errs []error
	for _, name := range []string{TripsCollection, ExpensesCollection} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: byDriver})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s index: %w", name, err))
		}
	}

	_, err := s.db.Collection(ProfileCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    byDriver,
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		errs = append(errs, fmt.Errorf("%s index: %w", ProfileCollection, err))
	}

	return errors.Join(errs...)
}

// WipeResult reports how many documents were removed from a collection.
type WipeResult struct {
	Collection string
	Deleted    int64
}

// Wipe deletes every document in every collection. It is irreversible and is
// only meant for maintenance tooling.
func (s *Store) Wipe(ctx context.Context) ([]WipeResult, error) {
	names, err := s.CollectionNames(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]WipeResult, 0, len(names))
	for _, name := range names {
		opCtx, cancel := s.withTimeout(ctx)
		res, err := s.db.Collection(name).DeleteMany(opCtx, bson.D{})
		cancel()
		if err != nil {
			return results, repository.NewStorageError("wipe "+name, err)
		}
		results = append(results, WipeResult{Collection: name, Deleted: res.DeletedCount})
	}
	return results, nil
}

// clampLimit keeps listings within the fixed result cap.
func clampLimit(limit int) int64 {
	if limit <= 0 || limit > repository.DefaultListLimit {
		return repository.DefaultListLimit
	}
	return int64(limit)
}

// findByDriver decodes up to limit documents whose driver_id matches.
// No sort is applied; callers get the store's natural order.
func findByDriver[T any](ctx context.Context, col *mongo.Collection, driverID string, limit int) ([]*T, error) {
	cur, err := col.Find(ctx, bson.M{"driver_id": driverID}, options.Find().SetLimit(clampLimit(limit)))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*T, 0)
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

var _ repository.Pinger = (*Store)(nil)
