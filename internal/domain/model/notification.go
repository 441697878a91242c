package model

import "time"

// NotificationType categorizes user-facing notifications.
type NotificationType string

const (
	NotificationOrder    NotificationType = "ORDER"
	NotificationShipping NotificationType = "SHIPPING"
	NotificationVoucher  NotificationType = "VOUCHER"
)

// Notification records a user-facing status message. Published marks rows
// already handed to the event publisher (outbox flag).
type Notification struct {
	ID          int64
	UserID      int64
	Title       string
	Message     string
	Type        NotificationType
	ReferenceID int64
	Read        bool
	Published   bool
	CreatedAt   time.Time
}
