package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextute/chatbot-be/service"
	"github.com/nextute/chatbot-be/types"
)

type ChatHandler interface {
	HandleChat(c *gin.Context)
}

type chatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) ChatHandler {
	return &chatHandler{
		chatService: chatService,
	}
}

func (h *chatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	resp, err := h.chatService.Answer(c.Request.Context(), req.Query, req.ConversationHistory, req.UseSemanticSearch)
	if err != nil {
		// ErrEmptyQuery is the only error Answer returns; provider
		// failures already degraded into a successful answer.
		if errors.Is(err, types.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  false,
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   resp,
	})
}
