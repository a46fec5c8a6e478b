package wizard

import (
	"staybook/models"
)

// RoomPreferences holds optional stay preferences collected with the guest
// details. Each field defaults to "any"/false.
type RoomPreferences struct {
	BedType        string `json:"bedType"`
	Floor          string `json:"floor"`
	SmokingAllowed bool   `json:"smokingAllowed"`
}

// GuestDetails holds the contact and party information for the stay.
type GuestDetails struct {
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Adults          int             `json:"adults"`
	Children        int             `json:"children"`
	SpecialRequests string          `json:"specialRequests"`
	Preferences     RoomPreferences `json:"preferences"`
}

// BillingAddress is the card billing address.
type BillingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// PaymentInfo holds what the guest typed into the payment form. It is
// transient: it lives only inside the draft session and is never persisted
// past submission. The submission gateway exchanges it for a provider token.
type PaymentInfo struct {
	CardNumber     string         `json:"cardNumber"`
	ExpiryDate     string         `json:"expiryDate"` // "MM/YY"
	CVV            string         `json:"cvv"`
	CardholderName string         `json:"cardholderName"`
	BillingAddress BillingAddress `json:"billingAddress"`
	SaveCard       bool           `json:"saveCard"`
}

// BookingDraft is the mutable, session-scoped state of one booking wizard.
type BookingDraft struct {
	CurrentStep  Step                        `json:"currentStep"`
	SelectedRoom *models.Room                `json:"selectedRoom,omitempty"`
	CheckIn      string                      `json:"checkIn,omitempty"`  // "YYYY-MM-DD"
	CheckOut     string                      `json:"checkOut,omitempty"` // "YYYY-MM-DD"
	GuestDetails GuestDetails                `json:"guestDetails"`
	PaymentInfo  PaymentInfo                 `json:"paymentInfo"`
	Confirmation *models.BookingConfirmation `json:"confirmation,omitempty"`
	Errors       map[string]string           `json:"errors"`
	Loading      bool                        `json:"loading"`
}

// NewBookingDraft returns a draft at the initial step with default values.
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		CurrentStep: StepRoomSelection,
		GuestDetails: GuestDetails{
			Adults: 1,
			Preferences: RoomPreferences{
				BedType: "any",
				Floor:   "any",
			},
		},
		Errors: map[string]string{},
	}
}

// GuestDetailsPatch is a partial update of GuestDetails. Nil fields are
// left untouched so that successive patches never clobber sibling data.
type GuestDetailsPatch struct {
	FirstName       *string          `json:"firstName,omitempty"`
	LastName        *string          `json:"lastName,omitempty"`
	Email           *string          `json:"email,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	Adults          *int             `json:"adults,omitempty"`
	Children        *int             `json:"children,omitempty"`
	SpecialRequests *string          `json:"specialRequests,omitempty"`
	Preferences     *RoomPreferences `json:"preferences,omitempty"`
}

// PaymentInfoPatch is a partial update of PaymentInfo. The billing address
// is replaced as a whole when present (shallow merge).
type PaymentInfoPatch struct {
	CardNumber     *string         `json:"cardNumber,omitempty"`
	ExpiryDate     *string         `json:"expiryDate,omitempty"`
	CVV            *string         `json:"cvv,omitempty"`
	CardholderName *string         `json:"cardholderName,omitempty"`
	BillingAddress *BillingAddress `json:"billingAddress,omitempty"`
	SaveCard       *bool           `json:"saveCard,omitempty"`
}

// SetGuestDetails merges the patch into the draft's guest details.
func (d *BookingDraft) SetGuestDetails(p GuestDetailsPatch) {
	if p.FirstName != nil {
		d.GuestDetails.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.GuestDetails.LastName = *p.LastName
	}
	if p.Email != nil {
		d.GuestDetails.Email = *p.Email
	}
	if p.Phone != nil {
		d.GuestDetails.Phone = *p.Phone
	}
	if p.Adults != nil {
		d.GuestDetails.Adults = *p.Adults
	}
	if p.Children != nil {
		d.GuestDetails.Children = *p.Children
	}
	if p.SpecialRequests != nil {
		d.GuestDetails.SpecialRequests = *p.SpecialRequests
	}
	if p.Preferences != nil {
		d.GuestDetails.Preferences = *p.Preferences
	}
}

// SetPaymentInfo merges the patch into the draft's payment info.
func (d *BookingDraft) SetPaymentInfo(p PaymentInfoPatch) {
	if p.CardNumber != nil {
		d.PaymentInfo.CardNumber = *p.CardNumber
	}
	if p.ExpiryDate != nil {
		d.PaymentInfo.ExpiryDate = *p.ExpiryDate
	}
	if p.CVV != nil {
		d.PaymentInfo.CVV = *p.CVV
	}
	if p.CardholderName != nil {
		d.PaymentInfo.CardholderName = *p.CardholderName
	}
	if p.BillingAddress != nil {
		d.PaymentInfo.BillingAddress = *p.BillingAddress
	}
	if p.SaveCard != nil {
		d.PaymentInfo.SaveCard = *p.SaveCard
	}
}

// SetSelectedRoom sets or clears the room the wizard is booking.
func (d *BookingDraft) SetSelectedRoom(room *models.Room) {
	d.SelectedRoom = room
}

// SetConfirmation stores the result of a successful submission.
func (d *BookingDraft) SetConfirmation(c *models.BookingConfirmation) {
	d.Confirmation = c
}

// SetErrors replaces the field error map.
func (d *BookingDraft) SetErrors(errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	d.Errors = errs
}

// SetLoading toggles the submission in-flight flag.
func (d *BookingDraft) SetLoading(loading bool) {
	d.Loading = loading
}

// Clear resets every field to its default, returning the draft to the
// state produced by NewBookingDraft.
func (d *BookingDraft) Clear() {
	*d = *NewBookingDraft()
}
