package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/server/http/dto"
)

// WishlistHandler manages the user's wishlist.
type WishlistHandler struct {
	facade WishlistFacade
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(facade WishlistFacade) *WishlistHandler {
	return &WishlistHandler{facade: facade}
}

// List handles GET /api/user/wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	products, err := h.facade.Wishlist(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, toProductResponse(p))
	}
	c.JSON(http.StatusOK, response)
}

// Add handles POST /api/user/wishlist/:productID.
func (h *WishlistHandler) Add(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddToWishlist(c.Request.Context(), CurrentUserID(c), productID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// Remove handles DELETE /api/user/wishlist/:productID.
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.RemoveFromWishlist(c.Request.Context(), CurrentUserID(c), productID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}
