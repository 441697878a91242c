package model

import "time"

// PaymentCard stores a saved card. Only the last four digits are retained.
type PaymentCard struct {
	ID        int64
	UserID    int64
	Holder    string
	LastFour  string
	ExpMonth  int
	ExpYear   int
	CreatedAt time.Time
}
