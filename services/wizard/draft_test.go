package wizard

import (
	"testing"
	"time"

	"staybook/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestNewBookingDraftDefaults(t *testing.T) {
	d := NewBookingDraft()

	if d.CurrentStep != StepRoomSelection {
		t.Errorf("expected initial step %s, got %s", StepRoomSelection, d.CurrentStep)
	}
	if d.SelectedRoom != nil {
		t.Error("expected no selected room")
	}
	if d.Confirmation != nil {
		t.Error("expected no confirmation")
	}
	if d.Loading {
		t.Error("expected loading to be false")
	}
	if len(d.Errors) != 0 {
		t.Errorf("expected empty errors map, got %v", d.Errors)
	}
	if d.GuestDetails.Adults != 1 {
		t.Errorf("expected 1 adult by default, got %d", d.GuestDetails.Adults)
	}
	if d.GuestDetails.Preferences.BedType != "any" || d.GuestDetails.Preferences.Floor != "any" {
		t.Errorf("expected 'any' preferences, got %+v", d.GuestDetails.Preferences)
	}
	if d.GuestDetails.Preferences.SmokingAllowed {
		t.Error("expected smoking preference to default to false")
	}
}

func TestSetGuestDetailsPreservesSiblings(t *testing.T) {
	d := NewBookingDraft()

	d.SetGuestDetails(GuestDetailsPatch{LastName: strPtr("Doe")})
	d.SetGuestDetails(GuestDetailsPatch{FirstName: strPtr("John")})

	if d.GuestDetails.FirstName != "John" {
		t.Errorf("expected first name John, got %q", d.GuestDetails.FirstName)
	}
	if d.GuestDetails.LastName != "Doe" {
		t.Errorf("expected last name Doe to survive the second patch, got %q", d.GuestDetails.LastName)
	}
	if d.GuestDetails.Adults != 1 {
		t.Errorf("expected default adult count to survive patches, got %d", d.GuestDetails.Adults)
	}

	d.SetGuestDetails(GuestDetailsPatch{Adults: intPtr(2), Children: intPtr(1)})
	if d.GuestDetails.FirstName != "John" || d.GuestDetails.LastName != "Doe" {
		t.Error("count patch clobbered name fields")
	}
	if d.GuestDetails.Adults != 2 || d.GuestDetails.Children != 1 {
		t.Errorf("expected 2 adults / 1 child, got %d/%d", d.GuestDetails.Adults, d.GuestDetails.Children)
	}
}

func TestSetPaymentInfoPreservesSiblings(t *testing.T) {
	d := NewBookingDraft()

	d.SetPaymentInfo(PaymentInfoPatch{CardNumber: strPtr("4242424242424242")})
	d.SetPaymentInfo(PaymentInfoPatch{
		ExpiryDate: strPtr("12/27"),
		CVV:        strPtr("123"),
	})

	if d.PaymentInfo.CardNumber != "4242424242424242" {
		t.Errorf("card number was clobbered: %q", d.PaymentInfo.CardNumber)
	}
	if d.PaymentInfo.ExpiryDate != "12/27" || d.PaymentInfo.CVV != "123" {
		t.Errorf("expected patched expiry/cvv, got %q/%q", d.PaymentInfo.ExpiryDate, d.PaymentInfo.CVV)
	}

	addr := BillingAddress{Street: "1 Main St", City: "Springfield", Country: "US"}
	d.SetPaymentInfo(PaymentInfoPatch{BillingAddress: &addr, SaveCard: boolPtr(true)})
	if d.PaymentInfo.CardNumber != "4242424242424242" {
		t.Error("billing address patch clobbered card number")
	}
	if d.PaymentInfo.BillingAddress.City != "Springfield" {
		t.Errorf("expected billing city Springfield, got %q", d.PaymentInfo.BillingAddress.City)
	}
	if !d.PaymentInfo.SaveCard {
		t.Error("expected save-card flag to be set")
	}
}

func TestClearResetsEverything(t *testing.T) {
	d := NewBookingDraft()

	d.SetSelectedRoom(&models.Room{ID: "r1", Type: "deluxe", NightlyRate: 250})
	d.CheckIn = "2026-09-01"
	d.CheckOut = "2026-09-04"
	d.SetGuestDetails(GuestDetailsPatch{FirstName: strPtr("John"), LastName: strPtr("Doe")})
	d.SetPaymentInfo(PaymentInfoPatch{CardNumber: strPtr("4242424242424242")})
	d.SetConfirmation(&models.BookingConfirmation{BookingID: "b1", CreatedAt: time.Now()})
	d.SetErrors(map[string]string{"room": "Please select a room"})
	d.SetLoading(true)
	d.CurrentStep = StepConfirmation

	d.Clear()

	fresh := NewBookingDraft()
	if d.CurrentStep != fresh.CurrentStep {
		t.Errorf("step not reset: %s", d.CurrentStep)
	}
	if d.SelectedRoom != nil || d.Confirmation != nil {
		t.Error("room or confirmation survived clear")
	}
	if d.CheckIn != "" || d.CheckOut != "" {
		t.Error("stay dates survived clear")
	}
	if d.GuestDetails != fresh.GuestDetails {
		t.Errorf("guest details not reset: %+v", d.GuestDetails)
	}
	if d.PaymentInfo != fresh.PaymentInfo {
		t.Errorf("payment info not reset: %+v", d.PaymentInfo)
	}
	if len(d.Errors) != 0 {
		t.Errorf("errors survived clear: %v", d.Errors)
	}
	if d.Loading {
		t.Error("loading flag survived clear")
	}
}

func TestSetErrorsNilBecomesEmptyMap(t *testing.T) {
	d := NewBookingDraft()
	d.SetErrors(nil)
	if d.Errors == nil {
		t.Error("expected a non-nil errors map")
	}
}
