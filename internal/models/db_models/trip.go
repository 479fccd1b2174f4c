package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	TripTypeIndividual = "individual"
	TripTypeGroup      = "group"
)

const (
	RoleOrganizer = "Organizer"
	RoleMember    = "Member"
	RoleGuest     = "Guest"

	MemberStatusConfirmed = "Confirmed"
	MemberStatusInvited   = "Invited"
)

type Trip struct {
	BaseModel
	OrganizerID     uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Destination     string
	StartDate       time.Time
	EndDate         time.Time
	TripType        string
	NumberOfPersons int
	Categories      pq.StringArray `gorm:"type:text[]"`

	// Members is an array of member entries. Entries written by this service
	// are canonical {id,name,avatar,role,status}; older data also carries
	// flat and nested {user:{...}} layouts.
	Members JSONList `gorm:"type:jsonb"`

	// Itinerary is the embedded day-indexed document, when present. Trips
	// without one fall back to the activities table.
	Itinerary JSONMap `gorm:"type:jsonb"`

	Activities []Activity
	Expenses   []Expense
	Messages   []ChatMessage
}

// DayCount is ceil((end-start)/1 day) with a floor of one day.
func (t *Trip) DayCount() int {
	if t.EndDate.Before(t.StartDate) {
		return 1
	}
	start := time.Date(t.StartDate.Year(), t.StartDate.Month(), t.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(t.EndDate.Year(), t.EndDate.Month(), t.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start)/(24*time.Hour)) + 1
	if days < 1 {
		return 1
	}
	return days
}
