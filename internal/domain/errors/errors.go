package errors

import "errors"

var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrInvalidVoucher        = errors.New("invalid voucher code")
	ErrVoucherLimitReached   = errors.New("voucher usage limit reached")
	ErrVoucherExpired        = errors.New("voucher expired")
	ErrInvalidShippingMethod = errors.New("unknown shipping method")
	ErrAddressNotFound       = errors.New("address not found")
	ErrOrderNotCancellable   = errors.New("order can no longer be cancelled")
	ErrInvalidStatusChange   = errors.New("invalid order status change")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrReviewNotAllowed      = errors.New("review not allowed for this purchase")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidCard           = errors.New("invalid card number")
)
