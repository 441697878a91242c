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

// ReviewHandler manages product reviews.
type ReviewHandler struct {
	facade ReviewFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade ReviewFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/user/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review, err := h.facade.CreateReview(c.Request.Context(), &model.Review{
		UserID:    CurrentUserID(c),
		ProductID: req.ProductID,
		OrderID:   req.OrderID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRating):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrReviewNotAllowed):
			c.Status(http.StatusForbidden)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toReviewResponse(*review))
}

// ListByProduct handles GET /api/products/:id/reviews.
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reviews, avg, err := h.facade.ProductReviews(c.Request.Context(), productID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	response := dto.ReviewListResponse{
		Reviews:   make([]dto.ReviewResponse, 0, len(reviews)),
		AvgRating: avg,
	}
	for _, r := range reviews {
		response.Reviews = append(response.Reviews, toReviewResponse(r))
	}
	c.JSON(http.StatusOK, response)
}

func toReviewResponse(r model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
