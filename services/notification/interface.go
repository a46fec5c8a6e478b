package notification

import (
	"context"

	userRepo "staybook/database/repository/user"
	"staybook/models"
)

// NotificationService sends guest-facing pushes about booking activity.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, userID string, booking *models.Booking) error
}

// DefaultNotificationService delivers via FCM.
type DefaultNotificationService struct {
	Users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) *DefaultNotificationService {
	return &DefaultNotificationService{Users: users}
}
