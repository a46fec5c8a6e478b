package wizard

import (
	"testing"

	"staybook/models"
)

func TestValidateRoomSelectionStep(t *testing.T) {
	d := NewBookingDraft()

	if d.ValidateCurrentStep() {
		t.Error("expected validation to fail without a room")
	}
	if got := d.Errors["room"]; got != "Please select a room" {
		t.Errorf("unexpected room error: %q", got)
	}

	d.SetSelectedRoom(&models.Room{ID: "r1", Type: "standard", NightlyRate: 120})
	if !d.ValidateCurrentStep() {
		t.Errorf("expected validation to pass with a room, errors: %v", d.Errors)
	}
	if len(d.Errors) != 0 {
		t.Errorf("expected errors to be cleared on success, got %v", d.Errors)
	}
}

func TestValidateGuestDetailsReportsAllMissingFields(t *testing.T) {
	d := NewBookingDraft()
	d.CurrentStep = StepGuestDetails

	if d.ValidateCurrentStep() {
		t.Fatal("expected validation to fail on an empty guest form")
	}

	want := map[string]string{
		"firstName": "First name is required",
		"lastName":  "Last name is required",
		"email":     "Email is required",
		"phone":     "Phone number is required",
	}
	if len(d.Errors) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(d.Errors), d.Errors)
	}
	for field, msg := range want {
		if got := d.Errors[field]; got != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, got)
		}
	}
}

func TestValidateGuestDetailsPartialForm(t *testing.T) {
	d := NewBookingDraft()
	d.CurrentStep = StepGuestDetails
	d.SetGuestDetails(GuestDetailsPatch{
		FirstName: strPtr("John"),
		LastName:  strPtr("Doe"),
		Email:     strPtr("john@example.com"),
	})

	if d.ValidateCurrentStep() {
		t.Fatal("expected validation to fail without a phone number")
	}
	if len(d.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", d.Errors)
	}
	if got := d.Errors["phone"]; got != "Phone number is required" {
		t.Errorf("unexpected phone error: %q", got)
	}
}

func TestValidatePaymentStep(t *testing.T) {
	d := NewBookingDraft()
	d.CurrentStep = StepPayment
	d.SetPaymentInfo(PaymentInfoPatch{
		CardNumber:     strPtr("4242424242424242"),
		ExpiryDate:     strPtr("12/27"),
		CardholderName: strPtr("John Doe"),
	})

	if d.ValidateCurrentStep() {
		t.Fatal("expected validation to fail without a CVV")
	}
	if len(d.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %v", d.Errors)
	}
	if got := d.Errors["cvv"]; got != "CVV is required" {
		t.Errorf("unexpected cvv error: %q", got)
	}

	d.SetPaymentInfo(PaymentInfoPatch{CVV: strPtr("123")})
	if !d.ValidateCurrentStep() {
		t.Errorf("expected validation to pass with full card details, errors: %v", d.Errors)
	}
}

func TestValidateConfirmationStepAlwaysPasses(t *testing.T) {
	d := NewBookingDraft()
	d.CurrentStep = StepConfirmation
	if !d.ValidateCurrentStep() {
		t.Errorf("expected confirmation step to always validate, errors: %v", d.Errors)
	}
}

func TestValidateOverwritesStaleErrors(t *testing.T) {
	d := NewBookingDraft()
	d.SetErrors(map[string]string{"stale": "leftover from an earlier step"})
	d.SetSelectedRoom(&models.Room{ID: "r1"})

	if !d.ValidateCurrentStep() {
		t.Fatalf("expected validation to pass, errors: %v", d.Errors)
	}
	if _, ok := d.Errors["stale"]; ok {
		t.Error("stale error survived a revalidation")
	}
}
