package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// ReviewRepository describes persistence operations for product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]model.Review, error)
}
