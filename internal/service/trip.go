package service

import (
	"context"
	"fmt"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// TripService records and lists driving trips.
type TripService struct {
	tripRepo   repository.TripRepository
	normalizer *Normalizer
	listLimit  int
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo repository.TripRepository, normalizer *Normalizer, listLimit int) *TripService {
	return &TripService{
		tripRepo:   tripRepo,
		normalizer: normalizer,
		listLimit:  listLimit,
	}
}

// RecordTrip validates, normalizes and stores a trip submission.
func (s *TripService) RecordTrip(ctx context.Context, rec Record) (*domain.Trip, error) {
	trip, err := s.normalizer.Trip(rec)
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("record trip: %w", err)
	}

	return trip, nil
}

// ListTrips returns the driver's trips, at most listLimit of them.
func (s *TripService) ListTrips(ctx context.Context, driverID string) ([]*domain.Trip, error) {
	trips, err := s.tripRepo.ListByDriver(ctx, s.normalizer.DriverID(driverID), s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list trips: %w", err)
	}
	return trips, nil
}
