package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// VoucherUseCase validates and lists discount vouchers.
type VoucherUseCase struct {
	vouchers repository.VoucherRepository
	now      func() time.Time
}

// NewVoucherUseCase constructs VoucherUseCase.
func NewVoucherUseCase(vouchers repository.VoucherRepository) *VoucherUseCase {
	return &VoucherUseCase{vouchers: vouchers, now: time.Now}
}

// Validate resolves a voucher code for the user and checks it is still
// usable. An unknown code maps to ErrInvalidVoucher; capped and expired
// vouchers surface their own sentinels.
func (u *VoucherUseCase) Validate(ctx context.Context, userID int64, code string) (*model.Voucher, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainErrors.ErrInvalidVoucher
	}

	voucher, err := u.vouchers.GetByCode(ctx, userID, code)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidVoucher
		}
		return nil, err
	}

	if err := voucher.Usable(u.now()); err != nil {
		return nil, err
	}

	return voucher, nil
}

// ListByUser returns all vouchers granted to the user, usable or not.
func (u *VoucherUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Voucher, error) {
	return u.vouchers.ListByUser(ctx, userID)
}

// Grant stores a new voucher for a user. Discount type and target are
// validated here so checkout never meets a voucher it cannot apply.
func (u *VoucherUseCase) Grant(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error) {
	switch voucher.DiscountType {
	case model.DiscountPercentage, model.DiscountFixed:
	default:
		return nil, domainErrors.ErrInvalidVoucher
	}
	switch voucher.Target {
	case model.TargetProduct, model.TargetShipping:
	default:
		return nil, domainErrors.ErrInvalidVoucher
	}
	if voucher.MaxUsage <= 0 {
		voucher.MaxUsage = 1
	}
	return u.vouchers.Create(ctx, voucher)
}
