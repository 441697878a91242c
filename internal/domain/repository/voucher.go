package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// VoucherRepository describes persistence operations for discount vouchers.
// Usage increments happen inside the order placement transaction, not here.
type VoucherRepository interface {
	Create(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error)
	GetByCode(ctx context.Context, userID int64, code string) (*model.Voucher, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Voucher, error)
}
