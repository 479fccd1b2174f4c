package request_models

type CreateTripRequest struct {
	Name            string   `json:"name" binding:"required"`
	Destination     string   `json:"destination" binding:"required"`
	StartDate       string   `json:"startDate" binding:"required"`
	EndDate         string   `json:"endDate" binding:"required"`
	TripType        string   `json:"tripType"`
	NumberOfPersons int      `json:"numberOfPersons"`
	Budget          int      `json:"budget"` // legacy alias for numberOfPersons
	Categories      []string `json:"categories"`
}

// PatchTripRequest covers the allowed subset of updatable trip fields.
// Pointer fields distinguish "absent" from "set to zero value".
type PatchTripRequest struct {
	Name            *string                  `json:"name"`
	StartDate       *string                  `json:"startDate"`
	EndDate         *string                  `json:"endDate"`
	Categories      *[]string                `json:"categories"`
	NumberOfPersons *int                     `json:"numberOfPersons"`
	Itinerary       map[string]interface{}   `json:"itinerary"`
	Members         []map[string]interface{} `json:"members"`
}

type AddActivityRequest struct {
	Day         int    `json:"day"`
	Time        string `json:"time"`
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type"`
	Duration    string `json:"duration"`
	CostTier    string `json:"costTier"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type AddExpenseRequest struct {
	Description  string  `json:"description" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	PaidBy       string  `json:"paidBy"`
	PaidByUserID string  `json:"paidByUserId"`
}

type AddMessageRequest struct {
	UserName string `json:"userName"`
	Message  string `json:"message" binding:"required"`
}

type ReactionRequest struct {
	Type string `json:"type" binding:"required,oneof=like dislike"`
}

type HotelReactionRequest struct {
	Day   int    `json:"day" binding:"required,min=1"`
	Index int    `json:"index" binding:"min=0"`
	Type  string `json:"type" binding:"required,oneof=like dislike"`
}
