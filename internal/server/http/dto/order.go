package dto

import "time"

// QuoteRequest asks for a checkout price preview.
type QuoteRequest struct {
	Street           string `json:"street"`
	District         string `json:"district"`
	City             string `json:"city"`
	ShippingMethodID string `json:"shipping_method_id"`
	VoucherCode      string `json:"voucher_code"`
}

// QuoteResponse is the priced preview of a checkout.
type QuoteResponse struct {
	Subtotal         float64 `json:"subtotal"`
	ProductDiscount  float64 `json:"product_discount"`
	MethodFee        float64 `json:"method_fee"`
	DistanceFee      float64 `json:"distance_fee"`
	ShippingDiscount float64 `json:"shipping_discount"`
	ShippingTotal    float64 `json:"shipping_total"`
	GrandTotal       float64 `json:"grand_total"`
	DistanceKm       float64 `json:"distance_km"`
	ShippingMethod   string  `json:"shipping_method"`
}

// PlaceOrderRequest describes order placement.
type PlaceOrderRequest struct {
	Address          string  `json:"address"`
	PhoneNumber      string  `json:"phone_number"`
	ShippingMethodID string  `json:"shipping_method_id"`
	DistanceFee      float64 `json:"distance_fee"`
	VoucherCode      string  `json:"voucher_code"`
}

// OrderResponse is the order header returned by list and place.
type OrderResponse struct {
	ID             int64     `json:"id"`
	Number         string    `json:"number"`
	Status         string    `json:"status"`
	TotalPrice     float64   `json:"total_price"`
	Address        string    `json:"address"`
	PhoneNumber    string    `json:"phone_number"`
	ShippingMethod string    `json:"shipping_method"`
	ShippingFee    float64   `json:"shipping_fee"`
	DiscountAmount float64   `json:"discount_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

// OrderItemResponse is an order line with its product snapshot.
type OrderItemResponse struct {
	Product   ProductResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unit_price"`
}

// OrderDetailResponse is an order with its lines.
type OrderDetailResponse struct {
	OrderResponse
	Items []OrderItemResponse `json:"items"`
}

// UpdateOrderStatusRequest advances fulfillment from the admin surface.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// ShippingMethodResponse is a selectable delivery option.
type ShippingMethodResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}
