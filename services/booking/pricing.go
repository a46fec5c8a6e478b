package booking

import (
	"fmt"
	"math"
	"time"

	"staybook/models"
)

const dateLayout = "2006-01-02"

// StayQuote is the priced breakdown of a stay.
type StayQuote struct {
	Nights   int
	Subtotal float64
	Tax      float64
	Total    float64
}

// QuoteStay prices a stay in the given room. Missing or unparseable dates
// fall back to a single night; availability and real pricing checks belong
// to the booking API boundary, not the wizard.
func (s *DefaultBookingService) QuoteStay(room *models.Room, checkIn, checkOut string) (*StayQuote, error) {
	if room == nil {
		return nil, fmt.Errorf("cannot quote a stay without a room")
	}

	nights := nightsBetween(checkIn, checkOut)
	subtotal := room.NightlyRate * float64(nights)
	tax := roundCents(subtotal * s.TaxRate)

	return &StayQuote{
		Nights:   nights,
		Subtotal: roundCents(subtotal),
		Tax:      tax,
		Total:    roundCents(subtotal + tax),
	}, nil
}

func nightsBetween(checkIn, checkOut string) int {
	in, errIn := time.Parse(dateLayout, checkIn)
	out, errOut := time.Parse(dateLayout, checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
