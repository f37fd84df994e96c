package service

import (
	"context"
	"fmt"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// ExpenseService records and lists driver expenses.
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
	normalizer  *Normalizer
	listLimit   int
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo repository.ExpenseRepository, normalizer *Normalizer, listLimit int) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		normalizer:  normalizer,
		listLimit:   listLimit,
	}
}

// RecordExpense validates, normalizes and stores an expense submission.
func (s *ExpenseService) RecordExpense(ctx context.Context, rec Record) (*domain.Expense, error) {
	expense, err := s.normalizer.Expense(rec)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("record expense: %w", err)
	}

	return expense, nil
}

// ListExpenses returns the driver's expenses, at most listLimit of them.
func (s *ExpenseService) ListExpenses(ctx context.Context, driverID string) ([]*domain.Expense, error) {
	expenses, err := s.expenseRepo.ListByDriver(ctx, s.normalizer.DriverID(driverID), s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
