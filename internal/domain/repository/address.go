package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// AddressRepository describes persistence operations for saved addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *model.Address) (*model.Address, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	GetByID(ctx context.Context, id int64) (*model.Address, error)
	SetDefault(ctx context.Context, userID, addressID int64) error
	Delete(ctx context.Context, id int64) error
}
