package booking

import (
	"context"

	"staybook/models"
)

// BookingRepository defines persistence operations for confirmed bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
