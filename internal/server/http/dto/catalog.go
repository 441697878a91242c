package dto

import "time"

// ProductResponse describes a catalog item.
type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// RatedProductResponse is a catalog item with its average review rating.
type RatedProductResponse struct {
	ProductResponse
	AvgRating float64 `json:"avg_rating"`
}

// CreateProductRequest describes the admin payload for adding a product.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
}
