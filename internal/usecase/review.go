package usecase

import (
	"context"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// ReviewUseCase gates review creation behind a delivered purchase.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
	orders  repository.OrderRepository
}

// NewReviewUseCase constructs ReviewUseCase.
func NewReviewUseCase(reviews repository.ReviewRepository, orders repository.OrderRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews, orders: orders}
}

// Create stores a review. The order must belong to the reviewer, be
// delivered, and contain the product; one review per (user, product, order).
func (u *ReviewUseCase) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domainErrors.ErrInvalidRating
	}

	order, err := u.orders.GetByID(ctx, review.OrderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != review.UserID || order.Status != model.OrderStatusDelivered {
		return nil, domainErrors.ErrReviewNotAllowed
	}

	entries, err := u.orders.Entries(ctx, review.OrderID)
	if err != nil {
		return nil, err
	}
	var purchased bool
	for _, e := range entries {
		if e.Line.ProductID == review.ProductID {
			purchased = true
			break
		}
	}
	if !purchased {
		return nil, domainErrors.ErrReviewNotAllowed
	}

	return u.reviews.Create(ctx, review)
}

// ListByProduct returns a product's reviews with their average rating.
func (u *ReviewUseCase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, float64, error) {
	reviews, err := u.reviews.ListByProduct(ctx, productID)
	if err != nil {
		return nil, 0, err
	}
	if len(reviews) == 0 {
		return reviews, 0, nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return reviews, float64(sum) / float64(len(reviews)), nil
}
