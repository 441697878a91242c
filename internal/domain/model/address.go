package model

import "time"

// AddressType distinguishes saved address kinds.
type AddressType string

const (
	AddressHome   AddressType = "HOME"
	AddressOffice AddressType = "OFFICE"
)

// Address is a saved shipping address. At most one per user is default.
type Address struct {
	ID          int64
	UserID      int64
	Recipient   string
	Line        string
	District    string
	City        string
	PhoneNumber string
	Type        AddressType
	IsDefault   bool
	CreatedAt   time.Time
}
