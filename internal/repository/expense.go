package repository

import (
	"context"

	"drivelog/internal/domain"
)

// ExpenseRepository defines the persistence operations for expenses.
type ExpenseRepository interface {
	// Create persists a new expense and sets its store-generated ID.
	Create(ctx context.Context, expense *domain.Expense) error

	// ListByDriver returns up to limit expenses for the driver, in store order.
	ListByDriver(ctx context.Context, driverID string, limit int) ([]*domain.Expense, error)
}
