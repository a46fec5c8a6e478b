package wizard

import (
	"context"
	"time"

	"staybook/models"
)

// RoomSource resolves room ids against the catalog. Implemented by the
// rooms service.
type RoomSource interface {
	GetRoomByID(ctx context.Context, roomID string) (*models.Room, error)
}

// SubmissionGateway turns a completed draft into a confirmed booking.
// Implemented by the booking service. The gateway is responsible for
// tokenizing the card data; raw card fields never leave this process.
type SubmissionGateway interface {
	Submit(ctx context.Context, userID string, draft *BookingDraft) (*models.BookingConfirmation, error)
}

// WizardService manages the lifecycle of booking wizard sessions.
type WizardService interface {
	StartSession(ctx context.Context, userID string) (*Session, error)
	GetSession(ctx context.Context, userID, sessionID string) (*Session, error)
	SelectRoom(ctx context.Context, userID, sessionID, roomID, checkIn, checkOut string) (*Session, error)
	UpdateGuestDetails(ctx context.Context, userID, sessionID string, patch GuestDetailsPatch) (*Session, error)
	UpdatePaymentInfo(ctx context.Context, userID, sessionID string, patch PaymentInfoPatch) (*Session, error)
	Advance(ctx context.Context, userID, sessionID string) (*Session, error)
	Back(ctx context.Context, userID, sessionID string) (*Session, error)
	Submit(ctx context.Context, userID, sessionID string) (*Session, error)
	CancelSession(ctx context.Context, userID, sessionID string) error
}

// DefaultWizardService implements WizardService on top of a DraftStore.
type DefaultWizardService struct {
	Store      DraftStore
	Rooms      RoomSource
	Gateway    SubmissionGateway
	SessionTTL time.Duration
}

func (s *DefaultWizardService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return 30 * time.Minute
}
