package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/normalize"
	"tripmate/internal/repositories"
	"tripmate/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, caller Caller, req request_models.CreateTripRequest) (string, error)
	ListTrips(ctx context.Context, callerID string) ([]response_models.TripResponse, error)
	GetTrip(ctx context.Context, callerID, tripID string) (*response_models.TripDetailResponse, error)
	PatchTrip(ctx context.Context, callerID, tripID string, req request_models.PatchTripRequest) error
	// RequireMember loads the trip and verifies the caller belongs to it.
	RequireMember(ctx context.Context, callerID, tripID string) (*db_models.Trip, error)
}

type TripService struct {
	tripRepo     repositories.TripRepository
	activityRepo repositories.ActivityRepository
	notifier     repositories.TripNotifier
}

func NewTripService(tripRepo repositories.TripRepository, activityRepo repositories.ActivityRepository, notifier repositories.TripNotifier) TripServiceInterface {
	return &TripService{
		tripRepo:     tripRepo,
		activityRepo: activityRepo,
		notifier:     notifier,
	}
}

// parseDate accepts the two date layouts clients send.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func (t *TripService) CreateTrip(ctx context.Context, caller Caller, req request_models.CreateTripRequest) (string, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return "", utils.ErrInvalidInput
	}
	if end.Before(start) {
		return "", utils.ErrInvalidInput
	}

	tripType := req.TripType
	if tripType == "" {
		tripType = db_models.TripTypeIndividual
	}
	if tripType != db_models.TripTypeIndividual && tripType != db_models.TripTypeGroup {
		return "", utils.ErrInvalidInput
	}

	persons := req.NumberOfPersons
	if persons == 0 {
		persons = req.Budget
	}
	if persons < 1 {
		persons = 1
	}

	organizerID, err := uuid.Parse(caller.ID)
	if err != nil {
		return "", utils.ErrInvalidInput
	}

	trip := &db_models.Trip{
		OrganizerID:     organizerID,
		Name:            req.Name,
		Destination:     req.Destination,
		StartDate:       start,
		EndDate:         end,
		TripType:        tripType,
		NumberOfPersons: persons,
		Categories:      req.Categories,
		Members: db_models.JSONList{{
			"id":     caller.ID,
			"name":   caller.Name,
			"role":   db_models.RoleOrganizer,
			"status": db_models.MemberStatusConfirmed,
		}},
	}
	if err := t.tripRepo.Insert(ctx, trip); err != nil {
		return "", utils.ErrDatabaseError
	}
	return trip.ID.String(), nil
}

func (t *TripService) ListTrips(ctx context.Context, callerID string) ([]response_models.TripResponse, error) {
	trips, err := t.tripRepo.FindByMember(ctx, callerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, tripToResponse(&trips[i]))
	}
	return out, nil
}

func (t *TripService) GetTrip(ctx context.Context, callerID, tripID string) (*response_models.TripDetailResponse, error) {
	trip, err := t.RequireMember(ctx, callerID, tripID)
	if err != nil {
		return nil, err
	}

	activities, err := t.activityRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	lookup := normalize.BuildMemberLookup(trip.Members)
	return &response_models.TripDetailResponse{
		TripResponse: tripToResponse(trip),
		Itinerary: normalize.NormalizeItinerary(
			trip.Itinerary, activityRecords(activities), trip.DayCount(), lookup),
	}, nil
}

func (t *TripService) PatchTrip(ctx context.Context, callerID, tripID string, req request_models.PatchTripRequest) error {
	trip, err := t.RequireMember(ctx, callerID, tripID)
	if err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}

	start, end := trip.StartDate, trip.EndDate
	if req.StartDate != nil {
		if start, err = parseDate(*req.StartDate); err != nil {
			return utils.ErrInvalidInput
		}
		fields["start_date"] = start
	}
	if req.EndDate != nil {
		if end, err = parseDate(*req.EndDate); err != nil {
			return utils.ErrInvalidInput
		}
		fields["end_date"] = end
	}
	if end.Before(start) {
		return utils.ErrInvalidInput
	}

	if req.Categories != nil {
		fields["categories"] = pq.StringArray(*req.Categories)
	}
	if req.NumberOfPersons != nil {
		if *req.NumberOfPersons < 1 {
			return utils.ErrInvalidInput
		}
		fields["number_of_persons"] = *req.NumberOfPersons
	}
	if req.Itinerary != nil {
		fields["itinerary"] = db_models.JSONMap(req.Itinerary)
	}
	if req.Members != nil {
		// New member entries need a stable id; name-keyed entries collide.
		for _, entry := range req.Members {
			if id, _ := entry["id"].(string); id == "" {
				return utils.ErrInvalidInput
			}
		}
		fields["members"] = db_models.JSONList(req.Members)
	}

	if len(fields) == 0 {
		return nil
	}
	if err := t.tripRepo.UpdateFields(ctx, tripID, fields); err != nil {
		return utils.ErrDatabaseError
	}

	if _, ok := fields["itinerary"]; ok {
		t.notify(ctx, tripID, repositories.EventItinerary)
	}
	if _, ok := fields["members"]; ok {
		t.notify(ctx, tripID, repositories.EventMembers)
	}
	return nil
}

func (t *TripService) RequireMember(ctx context.Context, callerID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if !isTripMember(trip, callerID) {
		return nil, utils.ErrNotTripMember
	}
	return trip, nil
}

func (t *TripService) notify(ctx context.Context, tripID, kind string) {
	notifyTripEvent(ctx, t.notifier, tripID, kind)
}

func isTripMember(trip *db_models.Trip, callerID string) bool {
	if trip.OrganizerID.String() == callerID {
		return true
	}
	_, ok := normalize.BuildMemberLookup(trip.Members)[callerID]
	return ok
}

func tripToResponse(trip *db_models.Trip) response_models.TripResponse {
	categories := []string(trip.Categories)
	if categories == nil {
		categories = []string{}
	}
	return response_models.TripResponse{
		ID:              trip.ID.String(),
		Name:            trip.Name,
		Destination:     trip.Destination,
		StartDate:       trip.StartDate.Format("2006-01-02"),
		EndDate:         trip.EndDate.Format("2006-01-02"),
		TripType:        trip.TripType,
		NumberOfPersons: trip.NumberOfPersons,
		Categories:      categories,
		OrganizerID:     trip.OrganizerID.String(),
		Members:         normalize.Members(trip.Members),
		CreatedAt:       utils.FormatRFC3339(utils.FromUnixAuto(trip.CreatedAt)),
	}
}
