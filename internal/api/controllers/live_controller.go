package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type LiveController struct {
	liveService services.LiveServiceInterface
	tripService services.TripServiceInterface
}

func NewLiveController(liveService services.LiveServiceInterface, tripService services.TripServiceInterface) *LiveController {
	return &LiveController{
		liveService: liveService,
		tripService: tripService,
	}
}

// StreamTrip godoc
// @Summary Stream live trip updates
// @Description Server-sent events: one event per collection change, carrying the rebuilt view
// @Tags Live
// @Produce text/event-stream
// @Param id path string true "Trip ID"
// @Success 200 {string} string "SSE stream"
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/live [get]
func (l *LiveController) StreamTrip(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if _, err := l.tripService.RequireMember(c.Request.Context(), c.GetString("user_id"), tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	events := l.liveService.Subscribe(tripID)
	defer l.liveService.Unsubscribe(tripID, events)

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case event, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(event.Kind, event)
			return true
		}
	})
}
