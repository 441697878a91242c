package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// WishlistRepository describes persistence operations for wishlists.
type WishlistRepository interface {
	Add(ctx context.Context, userID, productID int64) error
	Remove(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Product, error)
}
