package payment

import (
	"context"

	"staybook/models"
)

// CardDetails is the raw card input collected by the booking wizard. It is
// exchanged for a provider token and then discarded; it is never persisted.
type CardDetails struct {
	Number     string
	ExpMonth   int64
	ExpYear    int64
	CVC        string
	HolderName string
}

// Provider tokenizes cards and executes charges.
type Provider interface {
	Tokenize(ctx context.Context, card CardDetails) (string, error)
	Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}
