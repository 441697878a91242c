package model

import (
	"time"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
)

// DiscountType describes how a voucher value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// VoucherTarget describes which part of the total a voucher reduces.
type VoucherTarget string

const (
	TargetProduct  VoucherTarget = "PRODUCT"
	TargetShipping VoucherTarget = "SHIPPING"
)

// Voucher is a user-scoped discount code with a usage cap.
// A voucher at or over its cap is inert but never deleted.
type Voucher struct {
	ID            int64
	UserID        int64
	Code          string
	Title         string
	Description   string
	DiscountType  DiscountType
	Target        VoucherTarget
	DiscountValue float64
	UsageCount    int
	MaxUsage      int
	ExpiresAt     time.Time
}

// Usable reports whether the voucher may still be applied at the given time.
func (v *Voucher) Usable(now time.Time) error {
	if v.UsageCount >= v.MaxUsage {
		return domainErrors.ErrVoucherLimitReached
	}
	if !v.ExpiresAt.IsZero() && v.ExpiresAt.Before(now) {
		return domainErrors.ErrVoucherExpired
	}
	return nil
}

// DiscountOn computes the raw discount for the given base amount.
// Clamping against shipping totals is the pricing calculator's concern.
func (v *Voucher) DiscountOn(base float64) float64 {
	if v.DiscountType == DiscountPercentage {
		return base * v.DiscountValue / 100.0
	}
	return v.DiscountValue
}
