package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"drivelog/internal/domain"
	"drivelog/internal/repository"
)

// ExpenseRepository is a MongoDB implementation of repository.ExpenseRepository.
type ExpenseRepository struct {
	store *Store
	col   *mongo.Collection
}

// NewExpenseRepository creates a new MongoDB expense repository.
func NewExpenseRepository(store *Store) *ExpenseRepository {
	return &ExpenseRepository{store: store, col: store.db.Collection(ExpensesCollection)}
}

// Create persists a new expense.
func (r *ExpenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	res, err := r.col.InsertOne(ctx, expense)
	if err != nil {
		return repository.NewStorageError("insert expense", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		expense.ID = id
	}
	return nil
}

// ListByDriver returns up to limit expenses recorded for driverID.
func (r *ExpenseRepository) ListByDriver(ctx context.Context, driverID string, limit int) ([]*domain.Expense, error) {
	ctx, cancel := r.store.withTimeout(ctx)
	defer cancel()

	expenses, err := findByDriver[domain.Expense](ctx, r.col, driverID, limit)
	if err != nil {
		return nil, repository.NewStorageError("list expenses", err)
	}
	return expenses, nil
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
