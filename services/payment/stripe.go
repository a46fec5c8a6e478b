package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/paymentmethod"
	"go.uber.org/zap"

	"staybook/models"
)

// StripeProvider implements Provider against the Stripe API. The global
// stripe.Key is set once at startup from configuration.
type StripeProvider struct {
	Logger *zap.Logger
}

func NewStripeProvider(logger *zap.Logger) *StripeProvider {
	return &StripeProvider{Logger: logger}
}

// Tokenize exchanges raw card details for a Stripe PaymentMethod id.
func (p *StripeProvider) Tokenize(ctx context.Context, card CardDetails) (string, error) {
	params := &stripe.PaymentMethodParams{
		Type: stripe.String("card"),
		Card: &stripe.PaymentMethodCardParams{
			Number:   stripe.String(card.Number),
			ExpMonth: stripe.Int64(card.ExpMonth),
			ExpYear:  stripe.Int64(card.ExpYear),
			CVC:      stripe.String(card.CVC),
		},
		BillingDetails: &stripe.PaymentMethodBillingDetailsParams{
			Name: stripe.String(card.HolderName),
		},
	}
	params.Context = ctx

	pm, err := paymentmethod.New(params)
	if err != nil {
		return "", fmt.Errorf("card tokenization failed: %w", err)
	}
	return pm.ID, nil
}

// Charge creates and confirms a PaymentIntent against a tokenized card.
func (p *StripeProvider) Charge(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(toMinorUnits(req.Amount)),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.Token),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	if req.Idempotency != "" {
		params.IdempotencyKey = stripe.String(req.Idempotency)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		inv.Error = err.Error()
		inv.UpdatedAt = time.Now()
		return inv, fmt.Errorf("payment failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = mapIntentStatus(pi.Status)
	inv.UpdatedAt = time.Now()

	p.Logger.Info("payment processed",
		zap.String("invoice", inv.InvoiceID),
		zap.String("paymentIntent", pi.ID),
		zap.String("status", inv.Status),
	)
	return inv, nil
}

func mapIntentStatus(status stripe.PaymentIntentStatus) string {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return "paid"
	case stripe.PaymentIntentStatusProcessing:
		return "pending"
	default:
		return "failed"
	}
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ParseExpiry splits an "MM/YY" or "MM/YYYY" expiry string.
func ParseExpiry(expiry string) (month, year int64, err error) {
	parts := strings.Split(strings.TrimSpace(expiry), "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid expiry date %q", expiry)
	}
	m, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid expiry month %q", parts[0])
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid expiry year %q", parts[1])
	}
	if y < 100 {
		y += 2000
	}
	return m, y, nil
}
