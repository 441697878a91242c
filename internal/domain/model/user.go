package model

import "time"

// User represents a registered customer.
type User struct {
	ID           int64
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}
