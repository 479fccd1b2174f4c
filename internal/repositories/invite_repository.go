package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
)

type InviteRepository interface {
	Insert(ctx context.Context, invite *db_models.Invite) error
	FindByID(ctx context.Context, id string) (*db_models.Invite, error)
	// ListActionableByEmail returns the invites addressed to email that are
	// still pending/sent/recorded_not_sent, oldest first. tripID narrows to
	// one trip when non-empty.
	ListActionableByEmail(ctx context.Context, email string, tripID string) ([]db_models.Invite, error)
	UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error
}

type inviteRepository struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Insert(ctx context.Context, invite *db_models.Invite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

func (r *inviteRepository) FindByID(ctx context.Context, id string) (*db_models.Invite, error) {
	var invite db_models.Invite
	err := r.db.WithContext(ctx).First(&invite, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invite, nil
}

func (r *inviteRepository) ListActionableByEmail(ctx context.Context, email string, tripID string) ([]db_models.Invite, error) {
	query := r.db.WithContext(ctx).
		Where("email = ? AND status IN ?", email, []string{
			db_models.InviteStatusPending,
			db_models.InviteStatusSent,
			db_models.InviteStatusRecordedNoMail,
		})
	if tripID != "" {
		query = query.Where("trip_id = ?", tripID)
	}

	var invites []db_models.Invite
	err := query.Order("created_at ASC").Find(&invites).Error
	if err != nil {
		return nil, err
	}
	return invites, nil
}

func (r *inviteRepository) UpdateStatus(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Invite{}).
		Where("id = ?", id).
		Updates(fields).Error
}
