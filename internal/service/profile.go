package service

import (
	"context"
	"fmt"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// ProfileService reads and replaces driver profiles.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	normalizer  *Normalizer
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, normalizer *Normalizer) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		normalizer:  normalizer,
	}
}

// GetProfile returns the driver's profile or repository.ErrNotFound.
func (s *ProfileService) GetProfile(ctx context.Context, driverID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByDriver(ctx, s.normalizer.DriverID(driverID))
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile validates the submission and replaces the driver's profile
// with it. Fields not submitted are not carried over from the old profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, rec Record) (*domain.Profile, error) {
	profile, err := s.normalizer.Profile(rec)
	if err != nil {
		return nil, err
	}

	stored, err := s.profileRepo.Replace(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return stored, nil
}
