package booking

import (
	"context"

	bookingRepo "staybook/database/repository/booking"
	"staybook/models"
	"staybook/services/notification"
	"staybook/services/payment"
	"staybook/services/wizard"
)

// BookingService finalizes wizard drafts into persisted bookings and serves
// booking history. Its Submit method is the wizard's submission gateway.
type BookingService interface {
	Submit(ctx context.Context, userID string, draft *wizard.BookingDraft) (*models.BookingConfirmation, error)
	GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments payment.Provider
	Notifier notification.NotificationService
	Currency string
	TaxRate  float64 // fraction of the room subtotal, e.g. 0.12
}
