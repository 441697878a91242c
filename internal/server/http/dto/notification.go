package dto

import "time"

// NotificationResponse describes a user notification.
type NotificationResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	ReferenceID int64     `json:"reference_id,omitempty"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// UnreadCountResponse reports how many notifications are unread.
type UnreadCountResponse struct {
	Count int `json:"count"`
}
