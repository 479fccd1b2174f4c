package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripmate/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	FindByMember(ctx context.Context, userID string) ([]db_models.Trip, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	// AppendMember adds a member entry to the trip's member array with set
	// semantics on the member id. Runs in a transaction that locks the trip
	// row so two racing invite-accepts cannot lose an append. Reports
	// whether the entry was actually added.
	AppendMember(ctx context.Context, tripID string, entry map[string]interface{}) (bool, error)
	// UpdateItinerary rewrites the embedded itinerary document under a row
	// lock. mutate receives the current document (possibly nil) and returns
	// the replacement.
	UpdateItinerary(ctx context.Context, tripID string, mutate func(db_models.JSONMap) (db_models.JSONMap, error)) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindByMember(ctx context.Context, userID string) ([]db_models.Trip, error) {
	memberProbe, _ := json.Marshal([]map[string]string{{"id": userID}})

	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("organizer_id = ? OR members @> ?::jsonb", userID, string(memberProbe)).
		Order("created_at DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *tripRepository) AppendMember(ctx context.Context, tripID string, entry map[string]interface{}) (bool, error) {
	newID, _ := entry["id"].(string)
	appended := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip db_models.Trip
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}

		for _, existing := range trip.Members {
			if memberEntryID(existing) == newID {
				return nil // already a member
			}
		}

		trip.Members = append(trip.Members, entry)
		appended = true
		return tx.Model(&trip).Update("members", trip.Members).Error
	})
	return appended, err
}

func (r *tripRepository) UpdateItinerary(ctx context.Context, tripID string, mutate func(db_models.JSONMap) (db_models.JSONMap, error)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trip db_models.Trip
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trip, "id = ?", tripID).Error; err != nil {
			return err
		}
		updated, err := mutate(trip.Itinerary)
		if err != nil {
			return err
		}
		return tx.Model(&trip).Update("itinerary", updated).Error
	})
}

func memberEntryID(entry map[string]interface{}) string {
	for _, key := range []string{"id", "userId", "uid"} {
		if s, ok := entry[key].(string); ok && s != "" {
			return s
		}
	}
	if user, ok := entry["user"].(map[string]interface{}); ok {
		return memberEntryID(user)
	}
	return ""
}
