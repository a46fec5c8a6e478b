package wizard

// Step identifies a stage of the booking wizard.
type Step string

const (
	StepRoomSelection Step = "room-selection"
	StepGuestDetails  Step = "guest-details"
	StepPayment       Step = "payment"
	StepConfirmation  Step = "confirmation"
)

// stepOrder is the fixed, linear ordering of the wizard. There is no
// branching: every draft walks this list forward and backward only.
var stepOrder = []Step{
	StepRoomSelection,
	StepGuestDetails,
	StepPayment,
	StepConfirmation,
}

func stepIndex(s Step) int {
	for i, st := range stepOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// NextStep advances the draft to the next step in the fixed order.
// At the terminal confirmation step it is a no-op. NextStep does not
// validate; callers that want gated advancement use Advance on the
// session service instead.
func (d *BookingDraft) NextStep() {
	idx := stepIndex(d.CurrentStep)
	if idx < 0 || idx >= len(stepOrder)-1 {
		return
	}
	d.CurrentStep = stepOrder[idx+1]
}

// PreviousStep moves the draft to the prior step. At the initial
// room-selection step it is a no-op.
func (d *BookingDraft) PreviousStep() {
	idx := stepIndex(d.CurrentStep)
	if idx <= 0 {
		return
	}
	d.CurrentStep = stepOrder[idx-1]
}
