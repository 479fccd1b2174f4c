package services

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/normalize"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type ItineraryServiceInterface interface {
	GetItinerary(ctx context.Context, callerID, tripID string) (*response_models.ItineraryView, error)
	AddActivity(ctx context.Context, caller Caller, tripID string, req request_models.AddActivityRequest) (string, error)
	ReactToActivity(ctx context.Context, caller Caller, tripID, activityID, reactionType string) ([]db_models.Reaction, error)
	ReactToHotel(ctx context.Context, caller Caller, tripID string, req request_models.HotelReactionRequest) error
	// View builds the normalized itinerary without a membership check; the
	// live hub calls it after the subscriber was already authorized.
	View(ctx context.Context, tripID string) (*response_models.ItineraryView, error)
}

type ItineraryService struct {
	tripRepo     repositories.TripRepository
	activityRepo repositories.ActivityRepository
	trips        TripServiceInterface
	notifier     repositories.TripNotifier
}

func NewItineraryService(tripRepo repositories.TripRepository, activityRepo repositories.ActivityRepository, trips TripServiceInterface, notifier repositories.TripNotifier) ItineraryServiceInterface {
	return &ItineraryService{
		tripRepo:     tripRepo,
		activityRepo: activityRepo,
		trips:        trips,
		notifier:     notifier,
	}
}

func (s *ItineraryService) GetItinerary(ctx context.Context, callerID, tripID string) (*response_models.ItineraryView, error) {
	if _, err := s.trips.RequireMember(ctx, callerID, tripID); err != nil {
		return nil, err
	}
	return s.View(ctx, tripID)
}

func (s *ItineraryService) View(ctx context.Context, tripID string) (*response_models.ItineraryView, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	activities, err := s.activityRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	lookup := normalize.BuildMemberLookup(trip.Members)
	view := normalize.NormalizeItinerary(trip.Itinerary, activityRecords(activities), trip.DayCount(), lookup)
	return &view, nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, caller Caller, tripID string, req request_models.AddActivityRequest) (string, error) {
	trip, err := s.trips.RequireMember(ctx, caller.ID, tripID)
	if err != nil {
		return "", err
	}

	day := req.Day
	if day < 1 {
		day = 1
	}

	exists, err := s.activityRepo.ExistsByDayTitle(ctx, tripID, day, req.Title)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if exists {
		return "", utils.ErrDuplicateActivity
	}

	activity := &db_models.Activity{
		TripID:      trip.ID,
		Day:         day,
		Time:        req.Time,
		Title:       req.Title,
		Category:    req.Type,
		Duration:    req.Duration,
		CostTier:    req.CostTier,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProposedBy:  caller.Name,
	}
	if err := s.activityRepo.Insert(ctx, activity); err != nil {
		// The unique index catches the race the existence check misses.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", utils.ErrDuplicateActivity
		}
		return "", utils.ErrDatabaseError
	}

	notifyTripEvent(ctx, s.notifier, tripID, repositories.EventItinerary)
	return activity.ID.String(), nil
}

func (s *ItineraryService) ReactToActivity(ctx context.Context, caller Caller, tripID, activityID, reactionType string) ([]db_models.Reaction, error) {
	if _, err := s.trips.RequireMember(ctx, caller.ID, tripID); err != nil {
		return nil, err
	}

	activity, err := s.activityRepo.FindByID(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil || activity.TripID != mustUUID(tripID) {
		return nil, utils.ErrActivityNotFound
	}

	updated, err := s.activityRepo.UpdateReactions(ctx, activityID, func(existing db_models.ReactionList) db_models.ReactionList {
		return normalize.ApplyReaction(existing, caller.ID, caller.Name, reactionType)
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if updated == nil {
		return nil, utils.ErrActivityNotFound
	}

	notifyTripEvent(ctx, s.notifier, tripID, repositories.EventItinerary)
	return updated.Reactions, nil
}

func (s *ItineraryService) ReactToHotel(ctx context.Context, caller Caller, tripID string, req request_models.HotelReactionRequest) error {
	if _, err := s.trips.RequireMember(ctx, caller.ID, tripID); err != nil {
		return err
	}

	err := s.tripRepo.UpdateItinerary(ctx, tripID, func(itinerary db_models.JSONMap) (db_models.JSONMap, error) {
		hotel, ok := normalize.HotelAt(itinerary, req.Day, req.Index)
		if !ok {
			return nil, utils.ErrInvalidInput
		}
		existing := reactionsFromMaps(hotel["reactions"])
		updated := normalize.ApplyReaction(existing, caller.ID, caller.Name, req.Type)
		hotel["reactions"] = reactionsToMaps(updated)
		return itinerary, nil
	})
	if err != nil {
		if errors.Is(err, utils.ErrInvalidInput) {
			return err
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrTripNotFound
		}
		return utils.ErrDatabaseError
	}

	notifyTripEvent(ctx, s.notifier, tripID, repositories.EventItinerary)
	return nil
}

func reactionsFromMaps(v interface{}) []db_models.Reaction {
	var items []map[string]interface{}
	switch raw := v.(type) {
	case []interface{}:
		for _, e := range raw {
			if m, ok := e.(map[string]interface{}); ok {
				items = append(items, m)
			}
		}
	case []map[string]interface{}:
		items = raw
	}

	out := make([]db_models.Reaction, 0, len(items))
	for _, m := range items {
		r := db_models.Reaction{}
		r.UserID, _ = m["userId"].(string)
		r.UserName, _ = m["userName"].(string)
		r.Type, _ = m["type"].(string)
		if r.Type != "" {
			out = append(out, r)
		}
	}
	return out
}

func reactionsToMaps(reactions []db_models.Reaction) []interface{} {
	out := make([]interface{}, 0, len(reactions))
	for _, r := range reactions {
		out = append(out, map[string]interface{}{
			"userId":   r.UserID,
			"userName": r.UserName,
			"type":     r.Type,
		})
	}
	return out
}

// activityRecords converts stored activity rows into the canonical record
// maps the normalizer consumes.
func activityRecords(activities []db_models.Activity) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(activities))
	for _, a := range activities {
		out = append(out, map[string]interface{}{
			"id":          a.ID.String(),
			"day":         float64(a.Day),
			"time":        a.Time,
			"title":       a.Title,
			"category":    a.Category,
			"duration":    a.Duration,
			"costTier":    a.CostTier,
			"description": a.Description,
			"imageUrl":    a.ImageURL,
			"proposedBy":  a.ProposedBy,
			"reactions":   []db_models.Reaction(a.Reactions),
		})
	}
	return out
}

func mustUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

// notifyTripEvent publishes best-effort; a missed notification only delays
// a live view until the next event.
func notifyTripEvent(ctx context.Context, notifier repositories.TripNotifier, tripID, kind string) {
	if notifier == nil {
		return
	}
	if err := notifier.NotifyTripEvent(ctx, tripID, kind); err != nil {
		log.Printf("notify %s/%s: %v", tripID, kind, err)
	}
}
