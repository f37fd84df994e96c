package repository

import (
	"context"

	"drivelog/internal/domain"
)

// ProfileRepository defines the persistence operations for driver profiles.
type ProfileRepository interface {
	// GetByDriver returns the driver's profile or ErrNotFound.
	GetByDriver(ctx context.Context, driverID string) (*domain.Profile, error)

	// Replace stores profile as the only profile for its driver, creating it
	// if none exists. The stored document is returned.
	Replace(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
}
