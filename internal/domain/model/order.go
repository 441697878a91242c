package model

import "time"

// OrderStatus describes the fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CanTransition reports whether an order may move from its current status
// to the given one. Orders move forward (pending → shipped → delivered) or
// sideways to cancelled from pending only; terminal states absorb.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return to == OrderStatusShipped || to == OrderStatusCancelled
	case OrderStatusShipped:
		return to == OrderStatusDelivered
	default:
		return false
	}
}

// Order is a placed purchase with an immutable address and price snapshot.
type Order struct {
	ID             int64
	UserID         int64
	Number         string
	Status         OrderStatus
	TotalPrice     float64
	Address        string
	PhoneNumber    string
	ShippingMethod string
	ShippingFee    float64
	DiscountAmount float64
	CreatedAt      time.Time
}

// OrderLine snapshots one purchased product. UnitPrice is the product price
// at the time of sale and never changes afterwards.
type OrderLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// OrderEntry joins an order line with its product record.
type OrderEntry struct {
	Line    OrderLine
	Product Product
}

// OrderDraft carries everything the storage layer needs to place an order
// atomically: order header fields plus the voucher whose usage to burn.
type OrderDraft struct {
	UserID         int64
	CartID         int64
	Number         string
	Address        string
	PhoneNumber    string
	ShippingMethod string
	ShippingFee    float64
	DiscountAmount float64
	TotalPrice     float64
	VoucherID      int64
}
