package service

import (
	"context"
	"fmt"

	"drivelog/internal/domain"
)

// SummaryService aggregates a driver's records for one day.
type SummaryService struct {
	trips      *TripService
	expenses   *ExpenseService
	normalizer *Normalizer
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(trips *TripService, expenses *ExpenseService, normalizer *Normalizer) *SummaryService {
	return &SummaryService{
		trips:      trips,
		expenses:   expenses,
		normalizer: normalizer,
	}
}

// DailySummary totals the driver's trips and expenses dated day. An empty day
// means today (UTC). Only the capped listings are considered.
func (s *SummaryService) DailySummary(ctx context.Context, driverID, day string) (*domain.DailySummary, error) {
	driverID = s.normalizer.DriverID(driverID)
	if day == "" {
		day = s.normalizer.Today()
	}
	if err := s.normalizer.ValidateDay("date", day); err != nil {
		return nil, err
	}

	trips, err := s.trips.ListTrips(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("daily summary: %w", err)
	}
	expenses, err := s.expenses.ListExpenses(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("daily summary: %w", err)
	}

	return Summarize(driverID, day, trips, expenses), nil
}

// Summarize totals the trips and expenses dated day.
func Summarize(driverID, day string, trips []*domain.Trip, expenses []*domain.Expense) *domain.DailySummary {
	sum := &domain.DailySummary{DriverID: driverID, Date: day}

	for _, t := range trips {
		if t.TripDate != day {
			continue
		}
		sum.TripEntries++
		sum.TotalTrips += t.TotalTrips
		sum.EarningsOla += t.EarningsOla
		sum.EarningsUber += t.EarningsUber
		sum.EarningsRapido += t.EarningsRapido
		sum.GrossEarnings += t.GrossEarnings
	}

	for _, e := range expenses {
		if e.ExpenseDate != day {
			continue
		}
		sum.ExpenseEntries++
		sum.Fuel += e.Fuel
		sum.Other += e.Other
	}

	sum.Expenses = sum.Fuel + sum.Other
	sum.NetEarnings = sum.GrossEarnings - sum.Expenses
	return sum
}
