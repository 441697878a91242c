package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/trangvu/shopmart/internal/server/http/dto"
)

// ChatHandler serves the shopping assistant endpoint.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Reply handles POST /api/chat. Works for anonymous callers; guide answers
// change when the caller is logged in.
func (h *ChatHandler) Reply(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	reply, err := h.facade.ChatReply(c.Request.Context(), req.Message, CurrentUserID(c) != 0)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply})
}
