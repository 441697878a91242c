package dto

// AddressRequest describes a saved delivery address payload.
type AddressRequest struct {
	Recipient   string `json:"recipient"`
	Line        string `json:"line"`
	District    string `json:"district"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
	Type        string `json:"type"`
	IsDefault   bool   `json:"is_default"`
}

// AddressResponse describes a saved delivery address.
type AddressResponse struct {
	ID          int64  `json:"id"`
	Recipient   string `json:"recipient"`
	Line        string `json:"line"`
	District    string `json:"district"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
	Type        string `json:"type"`
	IsDefault   bool   `json:"is_default"`
}
