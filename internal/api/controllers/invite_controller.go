package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type InviteController struct {
	inviteService services.InviteServiceInterface
}

func NewInviteController(inviteService services.InviteServiceInterface) *InviteController {
	return &InviteController{
		inviteService: inviteService,
	}
}

// ListInvites godoc
// @Summary List the caller's actionable invites
// @Description Fetch invites addressed to the caller that are still pending, enriched with trip info
// @Tags Invite
// @Produce json
// @Param tripId query string false "Filter to one trip"
// @Success 200 {array} response_models.InviteView
// @Security BearerAuth
// @Router /invites [get]
func (i *InviteController) ListInvites(c *gin.Context) {
	invites, err := i.inviteService.ListInvites(c.Request.Context(), callerFrom(c), c.Query("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, invites, "Invites fetched successfully")
}

// CreateInvite godoc
// @Summary Invite someone to a trip
// @Description Record an invitation and attempt mail delivery; the invite survives delivery failure
// @Tags Invite
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.CreateInviteRequest true "Invitee email"
// @Success 201 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/{id}/invite [post]
func (i *InviteController) CreateInvite(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	invite, err := i.inviteService.CreateInvite(c.Request.Context(), callerFrom(c), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusCreated, gin.H{
		"inviteId": invite.ID,
		"email":    invite.Email,
		"message":  inviteOutcomeMessage(invite.Status),
	})
}

// AcceptInvite godoc
// @Summary Accept an invite
// @Description Join the trip as a Member; only the invite's addressee may accept
// @Tags Invite
// @Produce json
// @Param id path string true "Invite ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/{id}/accept [post]
func (i *InviteController) AcceptInvite(c *gin.Context) {
	inviteID := c.Param("id")
	if inviteID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invite ID is required")
		return
	}

	if err := i.inviteService.Accept(c.Request.Context(), callerFrom(c), inviteID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusOK, gin.H{"message": "Invite accepted"})
}

// DeclineInvite godoc
// @Summary Decline an invite
// @Tags Invite
// @Produce json
// @Param id path string true "Invite ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /invites/{id}/decline [post]
func (i *InviteController) DeclineInvite(c *gin.Context) {
	inviteID := c.Param("id")
	if inviteID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Invite ID is required")
		return
	}

	if err := i.inviteService.Decline(c.Request.Context(), callerFrom(c), inviteID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusOK, gin.H{"message": "Invite declined"})
}

func inviteOutcomeMessage(status string) string {
	switch status {
	case "sent":
		return "Invitation sent"
	case "recorded_not_sent":
		return "Invitation recorded; email delivery is not configured"
	case "failed":
		return "Invitation recorded; email delivery failed"
	}
	return "Invitation recorded"
}
