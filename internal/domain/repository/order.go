package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// OrderRepository describes persistence operations for orders.
//
// Place converts the draft's selected cart lines into an order in a single
// transaction: price snapshots, stock decrements, cart line removal and
// voucher usage increment all commit or roll back together.
type OrderRepository interface {
	Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Entries(ctx context.Context, orderID int64) ([]model.OrderEntry, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	Cancel(ctx context.Context, orderID int64) error
}
