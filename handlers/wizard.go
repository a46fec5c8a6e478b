package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"staybook/models"
	"staybook/services/wizard"
)

// WizardHandler serves the booking wizard session endpoints.
type WizardHandler struct {
	Service wizard.WizardService
	Logger  *zap.Logger
}

func NewWizardHandler(service wizard.WizardService, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{Service: service, Logger: logger}
}

// paymentSummary echoes only what is safe to show back to the client.
type paymentSummary struct {
	CardLast4      string                `json:"cardLast4,omitempty"`
	CardholderName string                `json:"cardholderName,omitempty"`
	BillingAddress wizard.BillingAddress `json:"billingAddress"`
	SaveCard       bool                  `json:"saveCard"`
}

type sessionResponse struct {
	SessionID    string                      `json:"sessionId"`
	CurrentStep  wizard.Step                 `json:"currentStep"`
	SelectedRoom *models.Room                `json:"selectedRoom,omitempty"`
	CheckIn      string                      `json:"checkIn,omitempty"`
	CheckOut     string                      `json:"checkOut,omitempty"`
	GuestDetails wizard.GuestDetails         `json:"guestDetails"`
	Payment      paymentSummary              `json:"payment"`
	Confirmation *models.BookingConfirmation `json:"confirmation,omitempty"`
	Errors       map[string]string           `json:"errors"`
	Loading      bool                        `json:"loading"`
}

func toSessionResponse(s *wizard.Session) sessionResponse {
	resp := sessionResponse{
		SessionID:    s.SessionID,
		CurrentStep:  s.Draft.CurrentStep,
		SelectedRoom: s.Draft.SelectedRoom,
		CheckIn:      s.Draft.CheckIn,
		CheckOut:     s.Draft.CheckOut,
		GuestDetails: s.Draft.GuestDetails,
		Payment: paymentSummary{
			CardholderName: s.Draft.PaymentInfo.CardholderName,
			BillingAddress: s.Draft.PaymentInfo.BillingAddress,
			SaveCard:       s.Draft.PaymentInfo.SaveCard,
		},
		Confirmation: s.Draft.Confirmation,
		Errors:       s.Draft.Errors,
		Loading:      s.Draft.Loading,
	}
	if n := len(s.Draft.PaymentInfo.CardNumber); n >= 4 {
		resp.Payment.CardLast4 = s.Draft.PaymentInfo.CardNumber[n-4:]
	}
	return resp
}

// StartSession creates a new wizard session for the authenticated user.
func (h *WizardHandler) StartSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.Service.StartSession(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to start wizard session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// GetSession returns the current state of a wizard session.
func (h *WizardHandler) GetSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.Service.GetSession(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// SelectRoom stores the chosen room and stay dates on the draft.
func (h *WizardHandler) SelectRoom(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		RoomID   string `json:"roomId" binding:"required"`
		CheckIn  string `json:"checkIn"`
		CheckOut string `json:"checkOut"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.SelectRoom(c.Request.Context(), userID, c.Param("sessionID"), input.RoomID, input.CheckIn, input.CheckOut)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// UpdateGuestDetails merges a partial guest-details update into the draft.
func (h *WizardHandler) UpdateGuestDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var patch wizard.GuestDetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdateGuestDetails(c.Request.Context(), userID, c.Param("sessionID"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// UpdatePaymentInfo merges a partial payment-info update into the draft.
func (h *WizardHandler) UpdatePaymentInfo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var patch wizard.PaymentInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdatePaymentInfo(c.Request.Context(), userID, c.Param("sessionID"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Advance validates the current step and moves the wizard forward.
func (h *WizardHandler) Advance(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.Service.Advance(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		var verr *wizard.ValidationError
		if errors.As(err, &verr) && session != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"errors":  verr.Fields,
				"session": toSessionResponse(session),
			})
			return
		}
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Back moves the wizard one step backwards.
func (h *WizardHandler) Back(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.Service.Back(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// Submit finalizes the booking through the submission gateway.
func (h *WizardHandler) Submit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	session, err := h.Service.Submit(c.Request.Context(), userID, c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(session))
}

// CancelSession discards the wizard session.
func (h *WizardHandler) CancelSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.CancelSession(c.Request.Context(), userID, c.Param("sessionID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.Is(err, wizard.ErrRoomNotInCatalog):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, wizard.ErrNotReadyToSubmit), errors.Is(err, wizard.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("wizard request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
