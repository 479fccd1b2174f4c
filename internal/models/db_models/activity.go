package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

type Reaction struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Type     string `json:"type"`
}

type ReactionList []Reaction

func (l ReactionList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]Reaction{})
	}
	return json.Marshal(l)
}

func (l *ReactionList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		s, ok := value.(string)
		if !ok {
			return errors.New("jsonb scan: unsupported source type")
		}
		b = []byte(s)
	}
	return json.Unmarshal(b, l)
}

// Activity is one itinerary entry. (trip, day, title) is unique: proposing
// the same title twice on a day is a conflict, not a merge.
type Activity struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_trip_day_title"`
	Day         int       `gorm:"uniqueIndex:idx_trip_day_title"`
	Time        string
	Title       string `gorm:"uniqueIndex:idx_trip_day_title"`
	Category    string
	Duration    string
	CostTier    string
	Description string
	ImageURL    string
	ProposedBy  string
	Reactions   ReactionList `gorm:"type:jsonb"`
}
