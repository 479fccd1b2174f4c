package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type ExpenseRepository interface {
	Insert(ctx context.Context, expense *db_models.Expense) error
	ListByTrip(ctx context.Context, tripID string) ([]db_models.Expense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, expense *db_models.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.Expense, error) {
	var expenses []db_models.Expense
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&expenses).Error
	if err != nil {
		return nil, err
	}
	return expenses, nil
}
