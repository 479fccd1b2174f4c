package db_models

import "github.com/google/uuid"

const (
	InviteStatusPending        = "pending"
	InviteStatusSent           = "sent"
	InviteStatusRecordedNoMail = "recorded_not_sent"
	InviteStatusFailed         = "failed"
	InviteStatusAccepted       = "accepted"
	InviteStatusDeclined       = "declined"
)

type Invite struct {
	BaseModel
	TripID      uuid.UUID `gorm:"type:uuid;index"`
	Email       string    `gorm:"index"` // normalized to lowercase
	InviterName string
	InvitedByID uuid.UUID `gorm:"type:uuid"`
	Status      string
	LastError   string

	SentAt     *int64
	FailedAt   *int64
	AcceptedAt *int64
	DeclinedAt *int64
}

// Actionable reports whether the invite can still be accepted or declined.
func (i *Invite) Actionable() bool {
	switch i.Status {
	case InviteStatusPending, InviteStatusSent, InviteStatusRecordedNoMail:
		return true
	}
	return false
}
