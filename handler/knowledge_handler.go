package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nextute/chatbot-be/service"
	"github.com/nextute/chatbot-be/types"
)

type KnowledgeHandler interface {
	HandleRefresh(c *gin.Context)
}

type knowledgeHandler struct {
	store *service.KnowledgeStore
}

func NewKnowledgeHandler(store *service.KnowledgeStore) KnowledgeHandler {
	return &knowledgeHandler{
		store: store,
	}
}

// HandleRefresh rebuilds the knowledge base from current records. Unlike the
// chat path, a failure here is surfaced: this is an explicit administrative
// action and the previous snapshot stays in place.
func (h *knowledgeHandler) HandleRefresh(c *gin.Context) {
	count, err := h.store.Rebuild(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.RefreshKnowledgeResponse{
			Message: "knowledge base rebuilt",
			Entries: count,
		},
	})
}
