package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"staybook/utils"
)

// StartSession creates a fresh wizard session for the user and stores it.
func (s *DefaultWizardService) StartSession(ctx context.Context, userID string) (*Session, error) {
	now := time.Now()
	session := &Session{
		SessionID: uuid.New().String(),
		UserID:    userID,
		Draft:     *NewBookingDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Save(ctx, session, s.ttl()); err != nil {
		return nil, fmt.Errorf("failed to start wizard session: %w", err)
	}
	return session, nil
}

// GetSession fetches a session owned by the given user.
func (s *DefaultWizardService) GetSession(ctx context.Context, userID, sessionID string) (*Session, error) {
	return s.load(ctx, userID, sessionID)
}

// SelectRoom resolves the room against the catalog and stores it on the
// draft along with the requested stay dates.
func (s *DefaultWizardService) SelectRoom(ctx context.Context, userID, sessionID, roomID, checkIn, checkOut string) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	room, err := s.Rooms.GetRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRoomNotInCatalog, roomID)
	}

	session.Draft.SetSelectedRoom(room)
	session.Draft.CheckIn = checkIn
	session.Draft.CheckOut = checkOut
	return session, s.save(ctx, session)
}

// UpdateGuestDetails merges a partial guest-details update into the draft.
func (s *DefaultWizardService) UpdateGuestDetails(ctx context.Context, userID, sessionID string, patch GuestDetailsPatch) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	session.Draft.SetGuestDetails(patch)
	return session, s.save(ctx, session)
}

// UpdatePaymentInfo merges a partial payment-info update into the draft.
func (s *DefaultWizardService) UpdatePaymentInfo(ctx context.Context, userID, sessionID string, patch PaymentInfoPatch) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	session.Draft.SetPaymentInfo(patch)
	return session, s.save(ctx, session)
}

// Advance validates the current step and, if it passes, moves the draft to
// the next step. On failure the field errors are stored on the draft and a
// ValidationError is returned alongside the refreshed session.
func (s *DefaultWizardService) Advance(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	if !session.Draft.ValidateCurrentStep() {
		verr := &ValidationError{Step: session.Draft.CurrentStep, Fields: session.Draft.Errors}
		if err := s.save(ctx, session); err != nil {
			return nil, err
		}
		return session, verr
	}

	session.Draft.NextStep()
	return session, s.save(ctx, session)
}

// Back moves the draft to the previous step. No validation applies when
// walking backwards.
func (s *DefaultWizardService) Back(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	session.Draft.PreviousStep()
	return session, s.save(ctx, session)
}

// Submit hands the accumulated draft to the submission gateway. It is only
// legal at the confirmation step, and the loading flag rejects a second
// submit while one is in flight. On failure the confirmation stays unset
// and the caller surfaces the error.
func (s *DefaultWizardService) Submit(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Draft.CurrentStep != StepConfirmation {
		return nil, ErrNotReadyToSubmit
	}
	if session.Draft.Loading {
		return nil, ErrSubmissionInFlight
	}

	session.Draft.SetLoading(true)
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}

	confirmation, err := s.Gateway.Submit(ctx, userID, &session.Draft)

	session.Draft.SetLoading(false)
	if err != nil {
		if saveErr := s.save(ctx, session); saveErr != nil {
			utils.GetLogger().Error("failed to release wizard loading flag", zap.Error(saveErr))
		}
		return nil, fmt.Errorf("booking submission failed: %w", err)
	}

	session.Draft.SetConfirmation(confirmation)
	// Card data has served its purpose; do not keep it past submission.
	session.Draft.PaymentInfo = PaymentInfo{}
	return session, s.save(ctx, session)
}

// CancelSession discards the session and its draft.
func (s *DefaultWizardService) CancelSession(ctx context.Context, userID, sessionID string) error {
	session, err := s.load(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	return s.Store.Delete(ctx, session.SessionID)
}

func (s *DefaultWizardService) load(ctx context.Context, userID, sessionID string) (*Session, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		// Do not leak whether the session exists for someone else.
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *DefaultWizardService) save(ctx context.Context, session *Session) error {
	session.UpdatedAt = time.Now()
	return s.Store.Save(ctx, session, s.ttl())
}
