package db_models

import "github.com/google/uuid"

const (
	MessagePending   = "pending"
	MessageConfirmed = "confirmed"
	MessageFailed    = "failed"
)

// ChatMessage keeps its payload as a document, same reasoning as Expense.
// Status lets a client render a failed optimistic send distinctly instead
// of leaving a ghost message.
type ChatMessage struct {
	BaseModel
	TripID uuid.UUID `gorm:"type:uuid;index"`
	Record JSONMap   `gorm:"type:jsonb"`
	Status string    `gorm:"default:confirmed"`
}
