package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripmate/internal/models/db_models"
)

type ActivityRepository interface {
	Insert(ctx context.Context, activity *db_models.Activity) error
	ExistsByDayTitle(ctx context.Context, tripID string, day int, title string) (bool, error)
	ListByTrip(ctx context.Context, tripID string) ([]db_models.Activity, error)
	FindByID(ctx context.Context, id string) (*db_models.Activity, error)
	// UpdateReactions re-reads the activity row under a row lock and writes
	// the list returned by apply, so concurrent reaction edits serialize
	// instead of overwriting each other.
	UpdateReactions(ctx context.Context, id string, apply func(db_models.ReactionList) db_models.ReactionList) (*db_models.Activity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Insert(ctx context.Context, activity *db_models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) ExistsByDayTitle(ctx context.Context, tripID string, day int, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Activity{}).
		Where("trip_id = ? AND day = ? AND title = ?", tripID, day, title).
		Count(&count).Error
	return count > 0, err
}

func (r *activityRepository) ListByTrip(ctx context.Context, tripID string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("created_at ASC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityRepository) FindByID(ctx context.Context, id string) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) UpdateReactions(ctx context.Context, id string, apply func(db_models.ReactionList) db_models.ReactionList) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&activity, "id = ?", id).Error; err != nil {
			return err
		}
		activity.Reactions = apply(activity.Reactions)
		return tx.Model(&activity).Update("reactions", activity.Reactions).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}
