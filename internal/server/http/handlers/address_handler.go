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

// AddressHandler manages the user's saved delivery addresses.
type AddressHandler struct {
	facade AddressFacade
}

// NewAddressHandler constructs AddressHandler.
func NewAddressHandler(facade AddressFacade) *AddressHandler {
	return &AddressHandler{facade: facade}
}

// Create handles POST /api/user/addresses.
func (h *AddressHandler) Create(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	address, err := h.facade.CreateAddress(c.Request.Context(), &model.Address{
		UserID:      CurrentUserID(c),
		Recipient:   req.Recipient,
		Line:        req.Line,
		District:    req.District,
		City:        req.City,
		PhoneNumber: req.PhoneNumber,
		Type:        model.AddressType(req.Type),
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAddressNotFound),
			errors.Is(err, domainErrors.ErrInvalidPhone):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toAddressResponse(*address))
}

// List handles GET /api/user/addresses.
func (h *AddressHandler) List(c *gin.Context) {
	addresses, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		response = append(response, toAddressResponse(a))
	}
	c.JSON(http.StatusOK, response)
}

// SetDefault handles POST /api/user/addresses/:id/default.
func (h *AddressHandler) SetDefault(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.SetDefaultAddress(c.Request.Context(), CurrentUserID(c), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// Delete handles DELETE /api/user/addresses/:id.
func (h *AddressHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.DeleteAddress(c.Request.Context(), CurrentUserID(c), id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:          a.ID,
		Recipient:   a.Recipient,
		Line:        a.Line,
		District:    a.District,
		City:        a.City,
		PhoneNumber: a.PhoneNumber,
		Type:        string(a.Type),
		IsDefault:   a.IsDefault,
	}
}
