package request_models

type CreateInviteRequest struct {
	Email       string `json:"email" binding:"required,email"`
	InviterName string `json:"inviterName"`
}
