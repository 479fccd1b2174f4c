package response_models

type PaidBy struct {
	Name string `json:"name"`
}

type ExpenseView struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	PaidBy      PaidBy  `json:"paidBy"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

type MessageUser struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type MessageView struct {
	ID        string      `json:"id"`
	User      MessageUser `json:"user"`
	Message   string      `json:"message"`
	Timestamp string      `json:"timestamp"`
	Status    string      `json:"status,omitempty"`
}

type InviteView struct {
	ID              string `json:"id"`
	TripID          string `json:"tripId"`
	TripName        string `json:"tripName"`
	TripDestination string `json:"tripDestination"`
	Email           string `json:"email"`
	InviterName     string `json:"inviterName"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}
