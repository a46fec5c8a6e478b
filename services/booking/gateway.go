package booking

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"staybook/models"
	"staybook/services/payment"
	"staybook/services/wizard"
	"staybook/utils"
)

// Submit turns an accumulated wizard draft into a confirmed booking. The
// card data on the draft is tokenized first and only the token travels to
// the charge; the draft's payment info never reaches storage. On any
// failure no confirmation is produced and the draft stays untouched.
func (s *DefaultBookingService) Submit(ctx context.Context, userID string, draft *wizard.BookingDraft) (*models.BookingConfirmation, error) {
	if draft.SelectedRoom == nil {
		return nil, newSubmitError("noRoom", "no room selected on the draft")
	}

	quote, err := s.QuoteStay(draft.SelectedRoom, draft.CheckIn, draft.CheckOut)
	if err != nil {
		return nil, err
	}

	expMonth, expYear, err := payment.ParseExpiry(draft.PaymentInfo.ExpiryDate)
	if err != nil {
		return nil, newSubmitError("badCard", err.Error())
	}

	token, err := s.Payments.Tokenize(ctx, payment.CardDetails{
		Number:     draft.PaymentInfo.CardNumber,
		ExpMonth:   expMonth,
		ExpYear:    expYear,
		CVC:        draft.PaymentInfo.CVV,
		HolderName: draft.PaymentInfo.CardholderName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize card: %w", err)
	}

	bookingID := uuid.New().String()
	invoice, err := s.Payments.Charge(ctx, models.PaymentRequest{
		UserID:      userID,
		Token:       token,
		Amount:      quote.Total,
		Currency:    s.Currency,
		Idempotency: bookingID,
		Description: fmt.Sprintf("%d night(s), %s room %s", quote.Nights, draft.SelectedRoom.Type, draft.SelectedRoom.Number),
		Metadata: map[string]string{
			"bookingId": bookingID,
			"roomId":    draft.SelectedRoom.ID,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("payment was not accepted: %w", err)
	}

	record := &models.Booking{
		ID:                 bookingID,
		ConfirmationNumber: newConfirmationNumber(),
		RoomID:             draft.SelectedRoom.ID,
		RoomType:           draft.SelectedRoom.Type,
		UserID:             userID,
		GuestName:          strings.TrimSpace(draft.GuestDetails.FirstName + " " + draft.GuestDetails.LastName),
		GuestEmail:         draft.GuestDetails.Email,
		GuestPhone:         draft.GuestDetails.Phone,
		CheckIn:            draft.CheckIn,
		CheckOut:           draft.CheckOut,
		Adults:             draft.GuestDetails.Adults,
		Children:           draft.GuestDetails.Children,
		SpecialRequests:    draft.GuestDetails.SpecialRequests,
		TotalAmount:        quote.Total,
		Currency:           s.Currency,
		PaymentStatus:      invoice.Status,
		InvoiceID:          invoice.InvoiceID,
		Status:             "Confirmed",
		CreatedAt:          time.Now(),
	}

	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, userID, record); err != nil {
			utils.GetLogger().Warn("booking confirmation push failed",
				zap.String("bookingId", record.ID), zap.Error(err))
		}
	}

	return &models.BookingConfirmation{
		BookingID:          record.ID,
		ConfirmationNumber: record.ConfirmationNumber,
		TotalAmount:        record.TotalAmount,
		Currency:           record.Currency,
		PaymentStatus:      record.PaymentStatus,
		CreatedAt:          record.CreatedAt,
	}, nil
}

// GetBooking fetches one booking owned by the user.
func (s *DefaultBookingService) GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}
	return booking, nil
}

// ListUserBookings returns the user's booking history, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// newConfirmationNumber generates a short human-readable reference like
// "SB-K7Q2M9XA".
func newConfirmationNumber() string {
	raw := make([]byte, 5)
	if _, err := rand.Read(raw); err != nil {
		// Fall back to a UUID fragment; references only need to be readable.
		return "SB-" + strings.ToUpper(uuid.New().String()[:8])
	}
	code := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)
	return "SB-" + code
}
