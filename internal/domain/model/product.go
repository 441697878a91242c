package model

import "time"

// Product is a catalog item available for purchase.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
	CreatedAt   time.Time
}

// RatedProduct pairs a product with its aggregated review rating.
type RatedProduct struct {
	Product   Product
	AvgRating float64
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

// Sort keys accepted by ProductFilter.SortBy.
const (
	SortByPrice  = "price"
	SortByStock  = "stock"
	SortByNewest = "created_at"

	DefaultPageSize = 20
)
