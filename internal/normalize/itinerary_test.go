package normalize

import (
	"reflect"
	"testing"
)

func TestNormalizeItinerary(t *testing.T) {
	lookup := BuildMemberLookup([]map[string]interface{}{
		{"id": "u1", "name": "Alice"},
	})

	t.Run("embedded itinerary is canonical", func(t *testing.T) {
		embedded := map[string]interface{}{
			"days": []interface{}{
				map[string]interface{}{
					"day": float64(1),
					"activities": []interface{}{
						map[string]interface{}{"activity": "Louvre Visit", "startTime": "10:00"},
					},
					"hotels": []interface{}{
						map[string]interface{}{"hotelName": "Hotel du Nord", "stars": float64(4)},
					},
				},
			},
		}
		// Sub-collection activities must be ignored when an embedded doc exists.
		subcollection := []map[string]interface{}{
			{"day": float64(1), "title": "Should not appear"},
		}

		view := NormalizeItinerary(embedded, subcollection, 3, lookup)
		if len(view.Days) != 3 {
			t.Fatalf("expected 3 days, got %d", len(view.Days))
		}
		d1 := view.Days[0]
		if len(d1.Activities) != 1 || d1.Activities[0].Title != "Louvre Visit" || d1.Activities[0].Time != "10:00" {
			t.Fatalf("unexpected day 1 activities: %+v", d1.Activities)
		}
		if len(d1.Hotels) != 1 || d1.Hotels[0].Name != "Hotel du Nord" || d1.Hotels[0].Rating != 4 {
			t.Fatalf("unexpected day 1 hotels: %+v", d1.Hotels)
		}
	})

	t.Run("falls back to the activities sub-collection", func(t *testing.T) {
		acts := []map[string]interface{}{
			{"id": "a1", "day": float64(2), "title": "Museum", "proposedById": "u1"},
			{"id": "a2", "title": "Breakfast"}, // missing day defaults to 1
		}
		view := NormalizeItinerary(nil, acts, 2, lookup)
		if len(view.Days) != 2 {
			t.Fatalf("expected 2 days, got %d", len(view.Days))
		}
		if view.Days[0].Activities[0].Title != "Breakfast" {
			t.Fatalf("missing-day activity should land on day 1: %+v", view.Days[0])
		}
		if view.Days[1].Activities[0].ProposedBy != "Alice" {
			t.Fatalf("proposedById should resolve through the registry: %+v", view.Days[1].Activities[0])
		}
	})

	t.Run("day completeness with no data", func(t *testing.T) {
		view := NormalizeItinerary(nil, nil, 0, lookup)
		if len(view.Days) != 1 || view.Days[0].Day != 1 {
			t.Fatalf("expected a single empty day 1, got %+v", view.Days)
		}
		if view.Days[0].Activities == nil || view.Days[0].Hotels == nil {
			t.Fatal("empty day must carry empty, non-nil lists")
		}
	})

	t.Run("days are contiguous for the whole date span", func(t *testing.T) {
		view := NormalizeItinerary(nil, []map[string]interface{}{
			{"day": float64(4), "title": "Late entry"},
		}, 3, lookup)
		if len(view.Days) != 4 {
			t.Fatalf("expected 4 days, got %d", len(view.Days))
		}
		for i, d := range view.Days {
			if d.Day != i+1 {
				t.Fatalf("days not contiguous: %+v", view.Days)
			}
		}
	})

	t.Run("idempotent over its own output", func(t *testing.T) {
		embedded := map[string]interface{}{
			"days": []interface{}{
				map[string]interface{}{
					"day": float64(1),
					"activities": []interface{}{
						map[string]interface{}{"title": "Walk", "time": "09:00", "category": "outdoors"},
					},
				},
				map[string]interface{}{
					"day":        float64(2),
					"activities": []interface{}{},
				},
			},
		}
		first := NormalizeItinerary(embedded, nil, 2, lookup)

		// Re-encode the first pass as a stored document and normalize again.
		roundtrip := map[string]interface{}{"days": []interface{}{}}
		for _, d := range first.Days {
			acts := []interface{}{}
			for _, a := range d.Activities {
				acts = append(acts, map[string]interface{}{
					"title": a.Title, "time": a.Time, "category": a.Category, "day": float64(a.Day),
				})
			}
			roundtrip["days"] = append(roundtrip["days"].([]interface{}), map[string]interface{}{
				"day": float64(d.Day), "activities": acts,
			})
		}
		second := NormalizeItinerary(roundtrip, nil, 2, lookup)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
		}
	})
}

func TestHotelAt(t *testing.T) {
	itinerary := map[string]interface{}{
		"days": []interface{}{
			map[string]interface{}{
				// legacy string day with hotels under the older key
				"day": "1",
				"hotelSuggestions": []interface{}{
					map[string]interface{}{"name": "Hotel du Nord"},
				},
			},
			map[string]interface{}{
				"day": float64(2),
				"hotels": []interface{}{
					map[string]interface{}{"name": "Le Meurice"},
					map[string]interface{}{"name": "Hotel Lutetia"},
				},
			},
		},
	}

	t.Run("every hotel the view renders is addressable", func(t *testing.T) {
		view := NormalizeItinerary(itinerary, nil, 2, MemberLookup{})
		for _, day := range view.Days {
			for i, rendered := range day.Hotels {
				hotel, ok := HotelAt(itinerary, day.Day, i)
				if !ok {
					t.Fatalf("day %d hotel %d not addressable", day.Day, i)
				}
				if name, _ := hotel["name"].(string); name != rendered.Name {
					t.Fatalf("day %d hotel %d = %q, view shows %q", day.Day, i, name, rendered.Name)
				}
			}
		}
	})

	t.Run("returned map aliases the document", func(t *testing.T) {
		hotel, ok := HotelAt(itinerary, 1, 0)
		if !ok {
			t.Fatal("hotel not found")
		}
		hotel["reactions"] = []interface{}{
			map[string]interface{}{"userId": "u1", "userName": "Alice", "type": "like"},
		}

		again, _ := HotelAt(itinerary, 1, 0)
		if again["reactions"] == nil {
			t.Fatal("write through the returned map did not land in the document")
		}
	})

	t.Run("day without a number falls back to its position", func(t *testing.T) {
		doc := map[string]interface{}{
			"days": []interface{}{
				map[string]interface{}{
					"hotels": []interface{}{map[string]interface{}{"name": "Somewhere"}},
				},
			},
		}
		if _, ok := HotelAt(doc, 1, 0); !ok {
			t.Fatal("positional day fallback not applied")
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		if _, ok := HotelAt(itinerary, 1, 1); ok {
			t.Fatal("index past the end must not resolve")
		}
		if _, ok := HotelAt(itinerary, 1, -1); ok {
			t.Fatal("negative index must not resolve")
		}
	})

	t.Run("unknown day", func(t *testing.T) {
		if _, ok := HotelAt(itinerary, 5, 0); ok {
			t.Fatal("missing day must not resolve")
		}
	})
}
