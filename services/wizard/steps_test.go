package wizard

import "testing"

func TestNextStepWalksForwardAndStopsAtConfirmation(t *testing.T) {
	d := NewBookingDraft()

	expected := []Step{StepGuestDetails, StepPayment, StepConfirmation}
	for _, want := range expected {
		d.NextStep()
		if d.CurrentStep != want {
			t.Fatalf("expected step %s, got %s", want, d.CurrentStep)
		}
	}

	// Terminal state is idempotent: extra calls stay on confirmation.
	d.NextStep()
	d.NextStep()
	if d.CurrentStep != StepConfirmation {
		t.Errorf("expected terminal step to hold at %s, got %s", StepConfirmation, d.CurrentStep)
	}
}

func TestPreviousStepWalksBackAndStopsAtRoomSelection(t *testing.T) {
	d := NewBookingDraft()
	d.CurrentStep = StepConfirmation

	expected := []Step{StepPayment, StepGuestDetails, StepRoomSelection}
	for _, want := range expected {
		d.PreviousStep()
		if d.CurrentStep != want {
			t.Fatalf("expected step %s, got %s", want, d.CurrentStep)
		}
	}

	d.PreviousStep()
	if d.CurrentStep != StepRoomSelection {
		t.Errorf("expected initial step to hold at %s, got %s", StepRoomSelection, d.CurrentStep)
	}
}

func TestNextStepDoesNotValidate(t *testing.T) {
	// The draft-level sequencer is permissive: it can force-advance past an
	// invalid step. Gated advancement lives in the session service.
	d := NewBookingDraft()
	if d.SelectedRoom != nil {
		t.Fatal("expected no room on a fresh draft")
	}
	d.NextStep()
	if d.CurrentStep != StepGuestDetails {
		t.Errorf("expected force-advance to %s, got %s", StepGuestDetails, d.CurrentStep)
	}
}
