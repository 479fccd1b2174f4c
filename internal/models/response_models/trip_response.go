package response_models

import "tripmate/internal/models/db_models"

type MemberInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}

type ActivityView struct {
	ID          string               `json:"id,omitempty"`
	Day         int                  `json:"day"`
	Time        string               `json:"time,omitempty"`
	Title       string               `json:"title"`
	Category    string               `json:"category,omitempty"`
	Duration    string               `json:"duration,omitempty"`
	CostTier    string               `json:"costTier,omitempty"`
	Description string               `json:"description,omitempty"`
	ImageURL    string               `json:"imageUrl,omitempty"`
	ProposedBy  string               `json:"proposedBy,omitempty"`
	Reactions   []db_models.Reaction `json:"reactions"`
}

type HotelView struct {
	Name       string               `json:"name"`
	Rating     float64              `json:"rating,omitempty"`
	Address    string               `json:"address,omitempty"`
	Attraction string               `json:"attraction,omitempty"`
	Website    string               `json:"website,omitempty"`
	Image      string               `json:"image,omitempty"`
	Reactions  []db_models.Reaction `json:"reactions"`
}

type DayView struct {
	Day        int            `json:"day"`
	Activities []ActivityView `json:"activities"`
	Hotels     []HotelView    `json:"hotels"`
}

type ItineraryView struct {
	Days []DayView `json:"days"`
}

type TripResponse struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Destination     string       `json:"destination"`
	StartDate       string       `json:"startDate"`
	EndDate         string       `json:"endDate"`
	TripType        string       `json:"tripType"`
	NumberOfPersons int          `json:"numberOfPersons"`
	Categories      []string     `json:"categories"`
	OrganizerID     string       `json:"organizerId"`
	Members         []MemberInfo `json:"members"`
	CreatedAt       string       `json:"createdAt,omitempty"`
}

type TripDetailResponse struct {
	TripResponse
	Itinerary ItineraryView `json:"itinerary"`
}
