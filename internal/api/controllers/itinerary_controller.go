package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetItinerary godoc
// @Summary Get the normalized itinerary
// @Description Fetch the trip's day-indexed itinerary merged from all stored shapes
// @Tags Itinerary
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.ItineraryView
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// AddActivity godoc
// @Summary Add an activity
// @Description Append an activity to a trip day; duplicate (day, title) is rejected
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddActivityRequest true "Activity details"
// @Success 201 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/activities [post]
func (i *ItineraryController) AddActivity(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	activityID, err := i.itineraryService.AddActivity(c.Request.Context(), callerFrom(c), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusCreated, gin.H{"activityId": activityID})
}

// ReactToActivity godoc
// @Summary React to an activity
// @Description Toggle the caller's like/dislike on an activity
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param activityId path string true "Activity ID"
// @Param request body request_models.ReactionRequest true "Reaction type"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/activities/{activityId}/reactions [post]
func (i *ItineraryController) ReactToActivity(c *gin.Context) {
	tripID := c.Param("id")
	activityID := c.Param("activityId")
	if tripID == "" || activityID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID and activity ID are required")
		return
	}

	var req request_models.ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	reactions, err := i.itineraryService.ReactToActivity(c.Request.Context(), callerFrom(c), tripID, activityID, req.Type)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reactions, "Reaction updated")
}

// ReactToHotel godoc
// @Summary React to a hotel suggestion
// @Description Toggle the caller's like/dislike on a hotel, addressed by day and position
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.HotelReactionRequest true "Day, index and reaction type"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/hotel-reactions [post]
func (i *ItineraryController) ReactToHotel(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.HotelReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := i.itineraryService.ReactToHotel(c.Request.Context(), callerFrom(c), tripID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusOK, gin.H{"message": "Reaction updated"})
}
