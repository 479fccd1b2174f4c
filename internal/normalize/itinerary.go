package normalize

import (
	"sort"

	"tripmate/internal/models/response_models"
)

// NormalizeItinerary merges a trip's itinerary into one day-indexed view.
//
// Preference order: an embedded itinerary document with at least one day is
// canonical; otherwise activities from the per-trip sub-collection are
// grouped by their day field. dayCount is the trip's calendar day span; the
// output always covers days 1..max(dayCount, highest day seen) with no gaps
// so there is never an empty itinerary to render.
//
// Idempotent: normalizing an already-normalized structure yields the same
// structure (the canonical field names sit first in every key list).
func NormalizeItinerary(embedded map[string]interface{}, activities []map[string]interface{}, dayCount int, lookup MemberLookup) response_models.ItineraryView {
	byDay := map[int]*response_models.DayView{}

	day := func(n int) *response_models.DayView {
		if d, ok := byDay[n]; ok {
			return d
		}
		d := &response_models.DayView{
			Day:        n,
			Activities: []response_models.ActivityView{},
			Hotels:     []response_models.HotelView{},
		}
		byDay[n] = d
		return d
	}

	embeddedDays := asList(embedded["days"])
	if len(embeddedDays) > 0 {
		for i, rawDay := range embeddedDays {
			n := positiveInt(rawDay["day"], i+1)
			d := day(n)
			for _, rawAct := range asList(rawDay["activities"]) {
				d.Activities = append(d.Activities, coerceActivity(rawAct, n, lookup))
			}
			for _, rawHotel := range asList(firstPresent(rawDay, "hotels", "hotelSuggestions")) {
				d.Hotels = append(d.Hotels, coerceHotel(rawHotel))
			}
		}
	} else {
		for _, rawAct := range activities {
			n := positiveInt(rawAct["day"], 1)
			d := day(n)
			d.Activities = append(d.Activities, coerceActivity(rawAct, n, lookup))
		}
	}

	highest := dayCount
	for n := range byDay {
		if n > highest {
			highest = n
		}
	}
	if highest < 1 {
		highest = 1
	}
	for n := 1; n <= highest; n++ {
		day(n)
	}

	days := make([]response_models.DayView, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	return response_models.ItineraryView{Days: days}
}

// HotelAt finds the hotel stored at (day, index) inside an embedded
// itinerary document, tolerating the same legacy day and key shapes the
// view reads. The returned map aliases the document, so reaction writes
// land in place. Hotels have no stable id; position is their identity.
func HotelAt(itinerary map[string]interface{}, dayNumber, index int) (map[string]interface{}, bool) {
	for i, rawDay := range asList(itinerary["days"]) {
		if positiveInt(rawDay["day"], i+1) != dayNumber {
			continue
		}
		hotels := asList(firstPresent(rawDay, "hotels", "hotelSuggestions"))
		if index < 0 || index >= len(hotels) {
			return nil, false
		}
		return hotels[index], true
	}
	return nil, false
}

func firstPresent(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// coerceActivity projects one stored activity through the tolerant field
// mapping. Title has worn three names over the product's history.
func coerceActivity(m map[string]interface{}, dayNumber int, lookup MemberLookup) response_models.ActivityView {
	proposedBy := firstString(m, "proposedBy", "proposed_by")
	if proposedBy == "" {
		if id := firstString(m, "proposedById", "proposedByUserId"); id != "" {
			proposedBy = lookup.Resolve(id).Name
		}
	}
	return response_models.ActivityView{
		ID:          firstString(m, "id"),
		Day:         positiveInt(m["day"], dayNumber),
		Time:        firstString(m, "time", "startTime", "start_time"),
		Title:       firstString(m, "title", "activity", "name"),
		Category:    firstString(m, "category", "type", "activityType"),
		Duration:    firstString(m, "duration"),
		CostTier:    firstString(m, "costTier", "cost", "cost_tier"),
		Description: firstString(m, "description", "details"),
		ImageURL:    firstString(m, "imageUrl", "image", "image_url"),
		ProposedBy:  proposedBy,
		Reactions:   coerceReactions(m["reactions"]),
	}
}

func coerceHotel(m map[string]interface{}) response_models.HotelView {
	return response_models.HotelView{
		Name:       firstString(m, "name", "hotelName", "title"),
		Rating:     firstNumber(m, 0, "rating", "stars"),
		Address:    firstString(m, "address", "location"),
		Attraction: firstString(m, "attraction", "nearbyAttraction", "summary"),
		Website:    firstString(m, "website", "url", "link"),
		Image:      firstString(m, "image", "imageUrl", "image_url"),
		Reactions:  coerceReactions(m["reactions"]),
	}
}
