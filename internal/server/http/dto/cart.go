package dto

// AddCartItemRequest describes the add-to-cart payload.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// UpdateCartItemRequest changes a line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// SelectCartItemRequest toggles a line's checkout selection.
type SelectCartItemRequest struct {
	Selected bool `json:"selected"`
}

// CartItemResponse is a cart line joined with its product.
type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Selected bool            `json:"selected"`
}
