package model

import "time"

// Review is a product review tied to a purchase. Unique per
// (user, product, order) and immutable after creation.
type Review struct {
	ID        int64
	UserID    int64
	ProductID int64
	OrderID   int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
