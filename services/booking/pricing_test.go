package booking

import (
	"testing"

	"staybook/models"
)

func TestQuoteStayMultiNight(t *testing.T) {
	s := &DefaultBookingService{Currency: "usd", TaxRate: 0.12}
	room := &models.Room{ID: "r1", NightlyRate: 200}

	quote, err := s.QuoteStay(room, "2026-09-01", "2026-09-03")
	if err != nil {
		t.Fatalf("QuoteStay failed: %v", err)
	}
	if quote.Nights != 2 {
		t.Errorf("expected 2 nights, got %d", quote.Nights)
	}
	if quote.Subtotal != 400 {
		t.Errorf("expected subtotal 400, got %.2f", quote.Subtotal)
	}
	if quote.Tax != 48 {
		t.Errorf("expected tax 48, got %.2f", quote.Tax)
	}
	if quote.Total != 448 {
		t.Errorf("expected total 448, got %.2f", quote.Total)
	}
}

func TestQuoteStayFallsBackToOneNight(t *testing.T) {
	s := &DefaultBookingService{TaxRate: 0.1}
	room := &models.Room{NightlyRate: 150}

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"missing dates", "", ""},
		{"garbage dates", "not-a-date", "also-not"},
		{"inverted dates", "2026-09-05", "2026-09-01"},
		{"same day", "2026-09-01", "2026-09-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quote, err := s.QuoteStay(room, tc.checkIn, tc.checkOut)
			if err != nil {
				t.Fatalf("QuoteStay failed: %v", err)
			}
			if quote.Nights != 1 {
				t.Errorf("expected 1 night, got %d", quote.Nights)
			}
			if quote.Subtotal != 150 {
				t.Errorf("expected subtotal 150, got %.2f", quote.Subtotal)
			}
		})
	}
}

func TestQuoteStayRoundsToCents(t *testing.T) {
	s := &DefaultBookingService{TaxRate: 0.0825}
	room := &models.Room{NightlyRate: 99.99}

	quote, err := s.QuoteStay(room, "2026-09-01", "2026-09-04")
	if err != nil {
		t.Fatalf("QuoteStay failed: %v", err)
	}
	// 3 * 99.99 = 299.97, tax 24.747525 rounds to 24.75.
	if quote.Subtotal != 299.97 {
		t.Errorf("expected subtotal 299.97, got %.4f", quote.Subtotal)
	}
	if quote.Tax != 24.75 {
		t.Errorf("expected tax 24.75, got %.4f", quote.Tax)
	}
	if quote.Total != 324.72 {
		t.Errorf("expected total 324.72, got %.4f", quote.Total)
	}
}

func TestQuoteStayRequiresRoom(t *testing.T) {
	s := &DefaultBookingService{TaxRate: 0.12}
	if _, err := s.QuoteStay(nil, "2026-09-01", "2026-09-02"); err == nil {
		t.Error("expected an error without a room")
	}
}
