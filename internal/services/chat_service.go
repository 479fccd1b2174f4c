package services

import (
	"context"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/normalize"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type ChatServiceInterface interface {
	AddMessage(ctx context.Context, caller Caller, tripID string, req request_models.AddMessageRequest) (string, error)
	ListMessages(ctx context.Context, callerID, tripID string) ([]response_models.MessageView, error)
	View(ctx context.Context, tripID string) ([]response_models.MessageView, error)
}

type ChatService struct {
	tripRepo    repositories.TripRepository
	messageRepo repositories.MessageRepository
	trips       TripServiceInterface
	notifier    repositories.TripNotifier
}

func NewChatService(tripRepo repositories.TripRepository, messageRepo repositories.MessageRepository, trips TripServiceInterface, notifier repositories.TripNotifier) ChatServiceInterface {
	return &ChatService{
		tripRepo:    tripRepo,
		messageRepo: messageRepo,
		trips:       trips,
		notifier:    notifier,
	}
}

func (s *ChatService) AddMessage(ctx context.Context, caller Caller, tripID string, req request_models.AddMessageRequest) (string, error) {
	trip, err := s.trips.RequireMember(ctx, caller.ID, tripID)
	if err != nil {
		return "", err
	}

	userName := req.UserName
	if userName == "" {
		userName = caller.Name
	}

	// The server clock stamps the durable record; the client's optimistic
	// entry keeps its own clock only until this write acks.
	message := &db_models.ChatMessage{
		TripID: trip.ID,
		Record: db_models.JSONMap{
			"message":   req.Message,
			"userId":    caller.ID,
			"userName":  userName,
			"timestamp": utils.NowUnixSeconds(),
		},
		Status: db_models.MessageConfirmed,
	}
	if err := s.messageRepo.Insert(ctx, message); err != nil {
		return "", utils.ErrDatabaseError
	}

	notifyTripEvent(ctx, s.notifier, tripID, repositories.EventMessages)
	return message.ID.String(), nil
}

func (s *ChatService) ListMessages(ctx context.Context, callerID, tripID string) ([]response_models.MessageView, error) {
	if _, err := s.trips.RequireMember(ctx, callerID, tripID); err != nil {
		return nil, err
	}
	return s.View(ctx, tripID)
}

func (s *ChatService) View(ctx context.Context, tripID string) ([]response_models.MessageView, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	messages, err := s.messageRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	records := make([]map[string]interface{}, 0, len(messages))
	for _, m := range messages {
		rec := withRowFields(m.Record, m.ID.String(), m.CreatedAt)
		if _, ok := rec["status"]; !ok && m.Status != "" {
			rec["status"] = m.Status
		}
		records = append(records, rec)
	}

	lookup := normalize.BuildMemberLookup(trip.Members)
	return normalize.NormalizeMessages(records, lookup), nil
}
