package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripmate/internal/models/request_models"
	"tripmate/internal/services"
	"tripmate/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// AddMessage godoc
// @Summary Send a chat message
// @Tags Chat
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param request body request_models.AddMessageRequest true "Message"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{id}/messages [post]
func (ch *ChatController) AddMessage(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	messageID, err := ch.chatService.AddMessage(c.Request.Context(), callerFrom(c), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondFields(c, http.StatusCreated, gin.H{"messageId": messageID})
}

// ListMessages godoc
// @Summary List trip chat messages
// @Description Fetch the normalized transcript ordered by timestamp ascending
// @Tags Chat
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {array} response_models.MessageView
// @Security BearerAuth
// @Router /trips/{id}/messages [get]
func (ch *ChatController) ListMessages(c *gin.Context) {
	tripID := c.Param("id")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	messages, err := ch.chatService.ListMessages(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}
