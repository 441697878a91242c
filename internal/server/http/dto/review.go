package dto

import "time"

// CreateReviewRequest rates a purchased product.
type CreateReviewRequest struct {
	ProductID int64  `json:"product_id"`
	OrderID   int64  `json:"order_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewResponse describes a published review.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewListResponse pairs a product's reviews with their average rating.
type ReviewListResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	AvgRating float64          `json:"avg_rating"`
}
