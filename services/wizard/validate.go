package wizard

// Field error messages, one per required field. Email format checking is
// left to the client; the wizard only requires presence.
const (
	msgRoomRequired           = "Please select a room"
	msgFirstNameRequired      = "First name is required"
	msgLastNameRequired       = "Last name is required"
	msgEmailRequired          = "Email is required"
	msgPhoneRequired          = "Phone number is required"
	msgCardNumberRequired     = "Card number is required"
	msgExpiryDateRequired     = "Expiry date is required"
	msgCVVRequired            = "CVV is required"
	msgCardholderNameRequired = "Cardholder name is required"
)

// ValidateCurrentStep checks the slice of the draft relevant to the current
// step. It overwrites the error map on every call: all failing fields of the
// step are reported together, and a passing validation leaves the map empty.
func (d *BookingDraft) ValidateCurrentStep() bool {
	errs := map[string]string{}

	switch d.CurrentStep {
	case StepRoomSelection:
		if d.SelectedRoom == nil {
			errs["room"] = msgRoomRequired
		}
	case StepGuestDetails:
		if d.GuestDetails.FirstName == "" {
			errs["firstName"] = msgFirstNameRequired
		}
		if d.GuestDetails.LastName == "" {
			errs["lastName"] = msgLastNameRequired
		}
		if d.GuestDetails.Email == "" {
			errs["email"] = msgEmailRequired
		}
		if d.GuestDetails.Phone == "" {
			errs["phone"] = msgPhoneRequired
		}
	case StepPayment:
		if d.PaymentInfo.CardNumber == "" {
			errs["cardNumber"] = msgCardNumberRequired
		}
		if d.PaymentInfo.ExpiryDate == "" {
			errs["expiryDate"] = msgExpiryDateRequired
		}
		if d.PaymentInfo.CVV == "" {
			errs["cvv"] = msgCVVRequired
		}
		if d.PaymentInfo.CardholderName == "" {
			errs["cardholderName"] = msgCardholderNameRequired
		}
	case StepConfirmation:
		// Always valid.
	}

	d.Errors = errs
	return len(errs) == 0
}
