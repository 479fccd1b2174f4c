package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/request_models"
	"tripmate/pkg/utils"
)

type fakeActivityRepo struct {
	order      []string
	activities map[string]*db_models.Activity
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: map[string]*db_models.Activity{}}
}

func (r *fakeActivityRepo) Insert(_ context.Context, activity *db_models.Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	r.activities[activity.ID.String()] = activity
	r.order = append(r.order, activity.ID.String())
	return nil
}

func (r *fakeActivityRepo) ExistsByDayTitle(_ context.Context, tripID string, day int, title string) (bool, error) {
	for _, a := range r.activities {
		if a.TripID.String() == tripID && a.Day == day && a.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeActivityRepo) ListByTrip(_ context.Context, tripID string) ([]db_models.Activity, error) {
	var out []db_models.Activity
	for _, id := range r.order {
		if a := r.activities[id]; a.TripID.String() == tripID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeActivityRepo) FindByID(_ context.Context, id string) (*db_models.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeActivityRepo) UpdateReactions(_ context.Context, id string, apply func(db_models.ReactionList) db_models.ReactionList) (*db_models.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	a.Reactions = apply(a.Reactions)
	copied := *a
	return &copied, nil
}

type tripFixture struct {
	trips      TripServiceInterface
	itinerary  ItineraryServiceInterface
	tripRepo   *fakeTripRepo
	activities *fakeActivityRepo
	notifier   *fakeNotifier
	organizer  Caller
}

func newTripFixture(t *testing.T) *tripFixture {
	t.Helper()

	tripRepo := newFakeTripRepo()
	activities := newFakeActivityRepo()
	notifier := &fakeNotifier{}
	trips := NewTripService(tripRepo, activities, notifier)

	return &tripFixture{
		trips:      trips,
		itinerary:  NewItineraryService(tripRepo, activities, trips, notifier),
		tripRepo:   tripRepo,
		activities: activities,
		notifier:   notifier,
		organizer:  Caller{ID: uuid.New().String(), Email: "ana@example.com", Name: "Ana"},
	}
}

func (f *tripFixture) createParisTrip(t *testing.T) string {
	t.Helper()
	tripID, err := f.trips.CreateTrip(context.Background(), f.organizer, request_models.CreateTripRequest{
		Name:        "Paris Trip",
		Destination: "Paris",
		StartDate:   "2026-01-10",
		EndDate:     "2026-01-12",
		TripType:    db_models.TripTypeGroup,
	})
	if err != nil {
		t.Fatalf("CreateTrip: %v", err)
	}
	return tripID
}

func TestTripLifecycle(t *testing.T) {
	t.Run("creator becomes the organizer member", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)

		trip := f.tripRepo.trips[tripID]
		if len(trip.Members) != 1 {
			t.Fatalf("members = %d, want 1", len(trip.Members))
		}
		if trip.Members[0]["role"] != db_models.RoleOrganizer {
			t.Fatalf("role = %v", trip.Members[0]["role"])
		}
	})

	t.Run("three calendar days yield three itinerary days", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)

		view, err := f.itinerary.GetItinerary(context.Background(), f.organizer.ID, tripID)
		if err != nil {
			t.Fatalf("GetItinerary: %v", err)
		}
		if len(view.Days) != 3 {
			t.Fatalf("days = %d, want 3", len(view.Days))
		}
		for i, day := range view.Days {
			if day.Day != i+1 {
				t.Fatalf("day[%d].Day = %d", i, day.Day)
			}
		}
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		f := newTripFixture(t)
		_, err := f.trips.CreateTrip(context.Background(), f.organizer, request_models.CreateTripRequest{
			Name:        "Backwards",
			Destination: "Nowhere",
			StartDate:   "2026-01-12",
			EndDate:     "2026-01-10",
		})
		if !errors.Is(err, utils.ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("non-member cannot read the trip", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)

		_, err := f.trips.GetTrip(context.Background(), uuid.New().String(), tripID)
		if !errors.Is(err, utils.ErrNotTripMember) {
			t.Fatalf("err = %v, want ErrNotTripMember", err)
		}
	})
}

func TestAddActivity(t *testing.T) {
	t.Run("activity lands on its day with attribution", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)

		activityID, err := f.itinerary.AddActivity(context.Background(), f.organizer, tripID, request_models.AddActivityRequest{
			Day:   1,
			Time:  "10:00",
			Title: "Louvre Visit",
		})
		if err != nil {
			t.Fatalf("AddActivity: %v", err)
		}

		view, err := f.itinerary.GetItinerary(context.Background(), f.organizer.ID, tripID)
		if err != nil {
			t.Fatalf("GetItinerary: %v", err)
		}
		day1 := view.Days[0]
		if len(day1.Activities) != 1 {
			t.Fatalf("day 1 activities = %d, want 1", len(day1.Activities))
		}
		got := day1.Activities[0]
		if got.ID != activityID || got.Title != "Louvre Visit" || got.Time != "10:00" {
			t.Fatalf("activity = %+v", got)
		}
		if got.ProposedBy != "Ana" {
			t.Fatalf("proposedBy = %q, want Ana", got.ProposedBy)
		}
	})

	t.Run("duplicate day and title is a conflict", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)

		req := request_models.AddActivityRequest{Day: 1, Title: "Louvre Visit"}
		if _, err := f.itinerary.AddActivity(context.Background(), f.organizer, tripID, req); err != nil {
			t.Fatalf("first AddActivity: %v", err)
		}
		_, err := f.itinerary.AddActivity(context.Background(), f.organizer, tripID, req)
		if !errors.Is(err, utils.ErrDuplicateActivity) {
			t.Fatalf("err = %v, want ErrDuplicateActivity", err)
		}

		// Same title on a different day is fine.
		if _, err := f.itinerary.AddActivity(context.Background(), f.organizer, tripID,
			request_models.AddActivityRequest{Day: 2, Title: "Louvre Visit"}); err != nil {
			t.Fatalf("AddActivity day 2: %v", err)
		}
	})

	t.Run("day below one is clamped to day one", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)

		if _, err := f.itinerary.AddActivity(context.Background(), f.organizer, tripID,
			request_models.AddActivityRequest{Day: 0, Title: "Arrival"}); err != nil {
			t.Fatalf("AddActivity: %v", err)
		}

		view, _ := f.itinerary.GetItinerary(context.Background(), f.organizer.ID, tripID)
		if len(view.Days[0].Activities) != 1 {
			t.Fatalf("day 1 activities = %d, want 1", len(view.Days[0].Activities))
		}
	})
}

func TestReactToActivity(t *testing.T) {
	f := newTripFixture(t)
	tripID := f.createParisTrip(t)

	activityID, err := f.itinerary.AddActivity(context.Background(), f.organizer, tripID,
		request_models.AddActivityRequest{Day: 1, Title: "Louvre Visit"})
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	reactions, err := f.itinerary.ReactToActivity(context.Background(), f.organizer, tripID, activityID, db_models.ReactionLike)
	if err != nil {
		t.Fatalf("ReactToActivity: %v", err)
	}
	if len(reactions) != 1 || reactions[0].Type != db_models.ReactionLike {
		t.Fatalf("reactions = %+v", reactions)
	}

	// Same reaction again toggles it off.
	reactions, err = f.itinerary.ReactToActivity(context.Background(), f.organizer, tripID, activityID, db_models.ReactionLike)
	if err != nil {
		t.Fatalf("toggle ReactToActivity: %v", err)
	}
	if len(reactions) != 0 {
		t.Fatalf("reactions after toggle = %+v", reactions)
	}

	t.Run("activity from another trip is not reachable", func(t *testing.T) {
		otherTripID := f.createParisTrip(t)
		_, err := f.itinerary.ReactToActivity(context.Background(), f.organizer, otherTripID, activityID, db_models.ReactionLike)
		if !errors.Is(err, utils.ErrActivityNotFound) {
			t.Fatalf("err = %v, want ErrActivityNotFound", err)
		}
	})
}

func TestReactToHotel(t *testing.T) {
	seedItinerary := func(f *tripFixture, tripID string) {
		// Legacy embedded shape: string day number, hotels under the older
		// hotelSuggestions key. The view renders these, so reactions must
		// reach them too.
		f.tripRepo.trips[tripID].Itinerary = db_models.JSONMap{
			"days": []interface{}{
				map[string]interface{}{
					"day": "1",
					"hotelSuggestions": []interface{}{
						map[string]interface{}{"name": "Hotel du Nord"},
					},
				},
			},
		}
	}

	t.Run("reaction lands on a legacy-shaped hotel", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)
		seedItinerary(f, tripID)

		err := f.itinerary.ReactToHotel(context.Background(), f.organizer, tripID, request_models.HotelReactionRequest{
			Day: 1, Index: 0, Type: db_models.ReactionLike,
		})
		if err != nil {
			t.Fatalf("ReactToHotel: %v", err)
		}

		view, err := f.itinerary.GetItinerary(context.Background(), f.organizer.ID, tripID)
		if err != nil {
			t.Fatalf("GetItinerary: %v", err)
		}
		hotel := view.Days[0].Hotels[0]
		if len(hotel.Reactions) != 1 || hotel.Reactions[0].Type != db_models.ReactionLike {
			t.Fatalf("reactions = %+v", hotel.Reactions)
		}
		if hotel.Reactions[0].UserName != "Ana" {
			t.Fatalf("userName = %q, want Ana", hotel.Reactions[0].UserName)
		}
	})

	t.Run("same reaction toggles off", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)
		seedItinerary(f, tripID)

		req := request_models.HotelReactionRequest{Day: 1, Index: 0, Type: db_models.ReactionLike}
		for i := 0; i < 2; i++ {
			if err := f.itinerary.ReactToHotel(context.Background(), f.organizer, tripID, req); err != nil {
				t.Fatalf("ReactToHotel #%d: %v", i+1, err)
			}
		}

		view, _ := f.itinerary.GetItinerary(context.Background(), f.organizer.ID, tripID)
		if got := len(view.Days[0].Hotels[0].Reactions); got != 0 {
			t.Fatalf("reactions after toggle = %d, want 0", got)
		}
	})

	t.Run("index past the day's hotel list is invalid input", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)
		seedItinerary(f, tripID)

		err := f.itinerary.ReactToHotel(context.Background(), f.organizer, tripID, request_models.HotelReactionRequest{
			Day: 1, Index: 3, Type: db_models.ReactionLike,
		})
		if !errors.Is(err, utils.ErrInvalidInput) {
			t.Fatalf("err = %v, want ErrInvalidInput", err)
		}
	})

	t.Run("non-member cannot react", func(t *testing.T) {
		f := newTripFixture(t)
		tripID := f.createParisTrip(t)
		seedItinerary(f, tripID)

		outsider := Caller{ID: uuid.New().String(), Email: "x@example.com", Name: "X"}
		err := f.itinerary.ReactToHotel(context.Background(), outsider, tripID, request_models.HotelReactionRequest{
			Day: 1, Index: 0, Type: db_models.ReactionLike,
		})
		if !errors.Is(err, utils.ErrNotTripMember) {
			t.Fatalf("err = %v, want ErrNotTripMember", err)
		}
	})
}
