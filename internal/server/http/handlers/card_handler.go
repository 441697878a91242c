package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/server/http/dto"
)

// CardHandler manages the user's saved payment cards.
type CardHandler struct {
	facade CardFacade
}

// NewCardHandler constructs CardHandler.
func NewCardHandler(facade CardFacade) *CardHandler {
	return &CardHandler{facade: facade}
}

// Save handles POST /api/user/cards.
func (h *CardHandler) Save(c *gin.Context) {
	var req dto.SaveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	card, err := h.facade.SaveCard(c.Request.Context(), CurrentUserID(c), req.Holder, req.Number, req.ExpMonth, req.ExpYear)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCard) {
			c.Status(http.StatusUnprocessableEntity)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toCardResponse(*card))
}

// List handles GET /api/user/cards.
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.facade.Cards(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.CardResponse, 0, len(cards))
	for _, card := range cards {
		response = append(response, toCardResponse(card))
	}
	c.JSON(http.StatusOK, response)
}

// Delete handles DELETE /api/user/cards/:id.
func (h *CardHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteCard(c.Request.Context(), CurrentUserID(c), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

func toCardResponse(card model.PaymentCard) dto.CardResponse {
	return dto.CardResponse{
		ID:       card.ID,
		Holder:   card.Holder,
		LastFour: card.LastFour,
		ExpMonth: card.ExpMonth,
		ExpYear:  card.ExpYear,
	}
}
