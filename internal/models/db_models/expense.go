package db_models

import "github.com/google/uuid"

// Expense keeps its payload as a document. New writes are canonical
// {description,amount,paidBy or paidByUserId}; the ledger view tolerates
// the older layouts still present in storage.
type Expense struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;index"`
	Record JSONMap   `gorm:"type:jsonb"`
}
