package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"staybook/models"
	"staybook/utils"
)

// SendBookingConfirmation looks up the user's FCM token and pushes the
// confirmation. Missing tokens and a disabled FCM client are not errors:
// the booking already succeeded and the push is best-effort.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, userID string, booking *models.Booking) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("FCM disabled, skipping booking confirmation push",
			zap.String("bookingId", booking.ID))
		return nil
	}

	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		utils.GetLogger().Debug("user has no FCM token, skipping push", zap.String("userId", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: "Booking confirmed",
			Body: fmt.Sprintf("Your %s room is booked for %s. Confirmation %s.",
				booking.RoomType, booking.CheckIn, booking.ConfirmationNumber),
		},
		Data: map[string]string{
			"bookingId":          booking.ID,
			"confirmationNumber": booking.ConfirmationNumber,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
