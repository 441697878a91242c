package model

import "time"

// WishlistItem marks a product saved by a user. Unique per (user, product).
type WishlistItem struct {
	ID        int64
	UserID    int64
	ProductID int64
	CreatedAt time.Time
}
