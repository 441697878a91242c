package dto

import "time"

// ValidateVoucherRequest checks a code against the caller's wallet.
type ValidateVoucherRequest struct {
	Code string `json:"code"`
}

// VoucherResponse describes a discount voucher.
type VoucherResponse struct {
	ID            int64      `json:"id"`
	Code          string     `json:"code"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discount_type"`
	Target        string     `json:"target"`
	DiscountValue float64    `json:"discount_value"`
	UsageCount    int        `json:"usage_count"`
	MaxUsage      int        `json:"max_usage"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

// GrantVoucherRequest is the admin payload for issuing a voucher to a user.
type GrantVoucherRequest struct {
	UserID        int64      `json:"user_id"`
	Code          string     `json:"code"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DiscountType  string     `json:"discount_type"`
	Target        string     `json:"target"`
	DiscountValue float64    `json:"discount_value"`
	MaxUsage      int        `json:"max_usage"`
	ExpiresAt     *time.Time `json:"expires_at"`
}
