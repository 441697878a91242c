package dto

// SaveCardRequest describes a payment card payload. The full number is
// validated but never stored.
type SaveCardRequest struct {
	Holder   string `json:"holder"`
	Number   string `json:"number"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}

// CardResponse describes a saved card, masked to its last four digits.
type CardResponse struct {
	ID       int64  `json:"id"`
	Holder   string `json:"holder"`
	LastFour string `json:"last_four"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}
