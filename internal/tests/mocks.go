package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is an in-memory TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips []*domain.Trip

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
	ListError   error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{}
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	trip.ID = primitive.NewObjectID()
	clone := *trip
	m.trips = append(m.trips, &clone)
	return nil
}

func (m *MockTripRepository) ListByDriver(ctx context.Context, driverID string, limit int) ([]*domain.Trip, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0)
	for _, t := range m.trips {
		if len(result) == limit {
			break
		}
		if t.DriverID == driverID {
			clone := *t
			result = append(result, &clone)
		}
	}
	return result, nil
}

// CountTrips returns the number of stored trips.
func (m *MockTripRepository) CountTrips() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.trips)
}

// ──────────────────────────────────────────────
// MOCK EXPENSE REPOSITORY
// ──────────────────────────────────────────────

// MockExpenseRepository is an in-memory ExpenseRepository.
type MockExpenseRepository struct {
	mu       sync.RWMutex
	expenses []*domain.Expense

	CreateError error
	ListError   error
}

// NewMockExpenseRepository creates a new mock expense repository.
func NewMockExpenseRepository() *MockExpenseRepository {
	return &MockExpenseRepository{}
}

func (m *MockExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	expense.ID = primitive.NewObjectID()
	clone := *expense
	m.expenses = append(m.expenses, &clone)
	return nil
}

func (m *MockExpenseRepository) ListByDriver(ctx context.Context, driverID string, limit int) ([]*domain.Expense, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Expense, 0)
	for _, e := range m.expenses {
		if len(result) == limit {
			break
		}
		if e.DriverID == driverID {
			clone := *e
			result = append(result, &clone)
		}
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK PROFILE REPOSITORY
// ──────────────────────────────────────────────

// MockProfileRepository is an in-memory ProfileRepository that, like the
// real store, keeps one document per driver.
type MockProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*domain.Profile

	ReplaceCallCount int32
	ReplaceError     error
	GetError         error
}

// NewMockProfileRepository creates a new mock profile repository.
func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{profiles: make(map[string]*domain.Profile)}
}

func (m *MockProfileRepository) GetByDriver(ctx context.Context, driverID string) (*domain.Profile, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.profiles[driverID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (m *MockProfileRepository) Replace(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	atomic.AddInt32(&m.ReplaceCallCount, 1)
	if m.ReplaceError != nil {
		return nil, m.ReplaceError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *profile
	if existing, ok := m.profiles[profile.DriverID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = primitive.NewObjectID()
	}
	m.profiles[profile.DriverID] = &stored
	clone := stored
	return &clone, nil
}

// CountProfiles returns the number of stored profiles for driverID.
func (m *MockProfileRepository) CountProfiles(driverID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.profiles[driverID]; ok {
		return 1
	}
	return 0
}

// ──────────────────────────────────────────────
// MOCK STORE PINGER
// ──────────────────────────────────────────────

// MockPinger reports a configurable store state.
type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Err
}

// Ensure mocks implement interfaces.
var (
	_ repository.TripRepository    = (*MockTripRepository)(nil)
	_ repository.ExpenseRepository = (*MockExpenseRepository)(nil)
	_ repository.ProfileRepository = (*MockProfileRepository)(nil)
	_ repository.Pinger            = (*MockPinger)(nil)
)
