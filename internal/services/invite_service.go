package services

import (
	"context"
	"log"
	"strings"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type InviteServiceInterface interface {
	CreateInvite(ctx context.Context, caller Caller, tripID string, req request_models.CreateInviteRequest) (*response_models.InviteView, error)
	Accept(ctx context.Context, caller Caller, inviteID string) error
	Decline(ctx context.Context, caller Caller, inviteID string) error
	// ListInvites returns the caller's actionable invites enriched with the
	// trip's name and destination. tripID narrows to one trip when non-empty.
	ListInvites(ctx context.Context, caller Caller, tripID string) ([]response_models.InviteView, error)
}

type InviteService struct {
	inviteRepo repositories.InviteRepository
	tripRepo   repositories.TripRepository
	trips      TripServiceInterface
	mail       IMailService
	notifier   repositories.TripNotifier
}

func NewInviteService(inviteRepo repositories.InviteRepository, tripRepo repositories.TripRepository, trips TripServiceInterface, mail IMailService, notifier repositories.TripNotifier) InviteServiceInterface {
	return &InviteService{
		inviteRepo: inviteRepo,
		tripRepo:   tripRepo,
		trips:      trips,
		mail:       mail,
		notifier:   notifier,
	}
}

func (s *InviteService) CreateInvite(ctx context.Context, caller Caller, tripID string, req request_models.CreateInviteRequest) (*response_models.InviteView, error) {
	trip, err := s.trips.RequireMember(ctx, caller.ID, tripID)
	if err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, utils.ErrInvalidInput
	}

	inviterName := caller.Name
	if inviterName == "" {
		inviterName = req.InviterName
	}
	if inviterName == "" {
		inviterName = "Organizer"
	}

	invite := &db_models.Invite{
		TripID:      trip.ID,
		Email:       email,
		InviterName: inviterName,
		InvitedByID: mustUUID(caller.ID),
		Status:      db_models.InviteStatusPending,
	}
	if err := s.inviteRepo.Insert(ctx, invite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// The invite row is durable before any delivery attempt, so a mail
	// outage never loses the invitation itself.
	now := utils.NowUnixSeconds()
	switch {
	case !s.mail.Configured():
		invite.Status = db_models.InviteStatusRecordedNoMail
		s.updateStatus(ctx, invite.ID.String(), map[string]interface{}{
			"status": db_models.InviteStatusRecordedNoMail,
		})
	default:
		if err := s.mail.SendTripInvite(email, inviterName, trip.Name, trip.Destination); err != nil {
			log.Printf("invite mail to %s: %v", email, err)
			invite.Status = db_models.InviteStatusFailed
			invite.LastError = err.Error()
			s.updateStatus(ctx, invite.ID.String(), map[string]interface{}{
				"status":     db_models.InviteStatusFailed,
				"last_error": err.Error(),
				"failed_at":  now,
			})
		} else {
			invite.Status = db_models.InviteStatusSent
			s.updateStatus(ctx, invite.ID.String(), map[string]interface{}{
				"status":  db_models.InviteStatusSent,
				"sent_at": now,
			})
		}
	}

	view := inviteToView(invite, trip)
	return &view, nil
}

func (s *InviteService) Accept(ctx context.Context, caller Caller, inviteID string) error {
	invite, err := s.requireAddressee(ctx, caller, inviteID)
	if err != nil {
		return err
	}

	if invite.Status == db_models.InviteStatusAccepted {
		return nil // idempotent
	}
	// declined is terminal; failed is inert until re-invited.
	if !invite.Actionable() {
		return utils.ErrInviteAlreadyDone
	}

	name := caller.Name
	if name == "" {
		name = emailLocalPart(invite.Email)
	}
	entry := map[string]interface{}{
		"id":     caller.ID,
		"name":   name,
		"role":   db_models.RoleMember,
		"status": db_models.MemberStatusConfirmed,
	}

	appended, err := s.tripRepo.AppendMember(ctx, invite.TripID.String(), entry)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := s.updateStatus(ctx, inviteID, map[string]interface{}{
		"status":      db_models.InviteStatusAccepted,
		"accepted_at": utils.NowUnixSeconds(),
	}); err != nil {
		return utils.ErrDatabaseError
	}

	if appended {
		notifyTripEvent(ctx, s.notifier, invite.TripID.String(), repositories.EventMembers)
	}
	return nil
}

func (s *InviteService) Decline(ctx context.Context, caller Caller, inviteID string) error {
	invite, err := s.requireAddressee(ctx, caller, inviteID)
	if err != nil {
		return err
	}

	if invite.Status == db_models.InviteStatusDeclined {
		return nil // idempotent
	}
	if !invite.Actionable() {
		return utils.ErrInviteAlreadyDone
	}

	if err := s.updateStatus(ctx, inviteID, map[string]interface{}{
		"status":      db_models.InviteStatusDeclined,
		"declined_at": utils.NowUnixSeconds(),
	}); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *InviteService) ListInvites(ctx context.Context, caller Caller, tripID string) ([]response_models.InviteView, error) {
	email := strings.ToLower(strings.TrimSpace(caller.Email))
	if email == "" {
		return []response_models.InviteView{}, nil
	}

	invites, err := s.inviteRepo.ListActionableByEmail(ctx, email, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.InviteView, 0, len(invites))
	for i := range invites {
		trip, err := s.tripRepo.FindByID(ctx, invites[i].TripID.String())
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		out = append(out, inviteToView(&invites[i], trip))
	}
	return out, nil
}

// requireAddressee loads the invite and verifies the caller is its
// addressee. Emails are compared case-insensitively since the invite
// stores them lowercase.
func (s *InviteService) requireAddressee(ctx context.Context, caller Caller, inviteID string) (*db_models.Invite, error) {
	invite, err := s.inviteRepo.FindByID(ctx, inviteID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if invite == nil {
		return nil, utils.ErrInviteNotFound
	}
	if !strings.EqualFold(caller.Email, invite.Email) {
		return nil, utils.ErrNotInviteAddressee
	}
	return invite, nil
}

func (s *InviteService) updateStatus(ctx context.Context, inviteID string, fields map[string]interface{}) error {
	if err := s.inviteRepo.UpdateStatus(ctx, inviteID, fields); err != nil {
		log.Printf("invite %s status update: %v", inviteID, err)
		return err
	}
	return nil
}

func inviteToView(invite *db_models.Invite, trip *db_models.Trip) response_models.InviteView {
	view := response_models.InviteView{
		ID:              invite.ID.String(),
		TripID:          invite.TripID.String(),
		TripName:        "(trip unavailable)",
		TripDestination: "",
		Email:           invite.Email,
		InviterName:     invite.InviterName,
		Status:          invite.Status,
		CreatedAt:       utils.FormatRFC3339(utils.FromUnixAuto(invite.CreatedAt)),
	}
	if trip != nil {
		view.TripName = trip.Name
		view.TripDestination = trip.Destination
	}
	return view
}

func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
