package repositories

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"tripmate/internal/infra"
)

// Trip event kinds carried on the NOTIFY channel.
const (
	EventItinerary = "itinerary"
	EventExpenses  = "expenses"
	EventMessages  = "messages"
	EventMembers   = "members"
)

type TripEvent struct {
	TripID string `json:"tripId"`
	Kind   string `json:"kind"`
}

// TripNotifier publishes change events through Postgres NOTIFY so every
// process with a live view hub sees writes from every other process.
type TripNotifier interface {
	NotifyTripEvent(ctx context.Context, tripID string, kind string) error
}

type tripNotifier struct {
	db *gorm.DB
}

func NewTripNotifier(db *gorm.DB) TripNotifier {
	return &tripNotifier{db: db}
}

func (n *tripNotifier) NotifyTripEvent(ctx context.Context, tripID string, kind string) error {
	payload, err := json.Marshal(TripEvent{TripID: tripID, Kind: kind})
	if err != nil {
		return err
	}
	return n.db.WithContext(ctx).
		Exec("SELECT pg_notify(?, ?)", infra.TripEventsChannel, string(payload)).Error
}
