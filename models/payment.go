package models

import "time"

// PaymentRequest describes a charge to be executed against a tokenized card.
type PaymentRequest struct {
	UserID      string
	Token       string // payment method token produced by the provider
	Amount      float64
	Currency    string
	Idempotency string
	Description string
	Metadata    map[string]string
}

// Invoice records the outcome of a payment attempt.
type Invoice struct {
	InvoiceID string
	UserID    string
	Amount    float64
	Currency  string
	Status    string // "paid", "pending", "failed"
	PaymentID string
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
