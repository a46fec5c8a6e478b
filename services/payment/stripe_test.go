package payment

import (
	"testing"

	"github.com/stripe/stripe-go/v76"
)

func TestParseExpiry(t *testing.T) {
	cases := []struct {
		in    string
		month int64
		year  int64
		ok    bool
	}{
		{"12/27", 12, 2027, true},
		{"01/2030", 1, 2030, true},
		{" 6 / 28 ", 6, 2028, true},
		{"13/27", 0, 0, false},
		{"0/27", 0, 0, false},
		{"1227", 0, 0, false},
		{"12/ab", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tc := range cases {
		month, year, err := ParseExpiry(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParseExpiry(%q) failed: %v", tc.in, err)
			continue
		}
		if !tc.ok {
			if err == nil {
				t.Errorf("ParseExpiry(%q) should have failed", tc.in)
			}
			continue
		}
		if month != tc.month || year != tc.year {
			t.Errorf("ParseExpiry(%q) = %d/%d, want %d/%d", tc.in, month, year, tc.month, tc.year)
		}
	}
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount float64
		want   int64
	}{
		{448, 44800},
		{99.99, 9999},
		{0.1, 10},
		{123.45, 12345},
	}
	for _, tc := range cases {
		if got := toMinorUnits(tc.amount); got != tc.want {
			t.Errorf("toMinorUnits(%v) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}

func TestMapIntentStatus(t *testing.T) {
	if got := mapIntentStatus(stripe.PaymentIntentStatusSucceeded); got != "paid" {
		t.Errorf("succeeded mapped to %q", got)
	}
	if got := mapIntentStatus(stripe.PaymentIntentStatusProcessing); got != "pending" {
		t.Errorf("processing mapped to %q", got)
	}
	if got := mapIntentStatus(stripe.PaymentIntentStatusRequiresAction); got != "failed" {
		t.Errorf("requires_action mapped to %q", got)
	}
}
