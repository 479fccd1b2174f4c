package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type MessageRepository interface {
	Insert(ctx context.Context, message *db_models.ChatMessage) error
	ListByTrip(ctx context.Context, tripID string) ([]db_models.ChatMessage, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Insert(ctx context.Context, message *db_models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
