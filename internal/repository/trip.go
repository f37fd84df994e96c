package repository

import (
	"context"

	"drivelog/internal/domain"
)

// DefaultListLimit caps every driver-scoped listing.
const DefaultListLimit = 100

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip and sets its store-generated ID.
	Create(ctx context.Context, trip *domain.Trip) error

	// ListByDriver returns up to limit trips for the driver, in store order.
	// An empty slice is returned when the driver has none.
	ListByDriver(ctx context.Context, driverID string, limit int) ([]*domain.Trip, error)
}
