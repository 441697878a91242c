package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// CartRepository describes persistence operations for carts and their lines.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error)
	Entries(ctx context.Context, cartID int64) ([]model.CartEntry, error)
	GetLine(ctx context.Context, cartID, productID int64) (*model.CartLine, error)
	InsertLine(ctx context.Context, line *model.CartLine) (*model.CartLine, error)
	UpdateLineQuantity(ctx context.Context, lineID int64, quantity int) error
	SetLineSelected(ctx context.Context, lineID int64, selected bool) error
	DeleteLine(ctx context.Context, lineID int64) error
	Clear(ctx context.Context, cartID int64) error
}
