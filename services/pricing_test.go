package services

import "testing"

func TestSubtotal(t *testing.T) {
	if got := Subtotal(nil); got != 0 {
		t.Errorf("Subtotal(nil) = %d, want 0", got)
	}
	lines := []CartLine{
		{ItemID: 1, Name: "Latte", Price: 450, Quantity: 2},
		{ItemID: 2, Name: "Scone", Price: 225, Quantity: 1},
	}
	if got := Subtotal(lines); got != 1125 {
		t.Errorf("Subtotal = %d, want 1125", got)
	}
}

func TestTax(t *testing.T) {
	tests := []struct {
		subtotal int64
		rate     float64
		want     int64
	}{
		{900, 0.07, 63},
		{999, 0.07, 70},  // 69.93 rounds up
		{1050, 0.02, 21},
		{350, 0.07, 25},  // 24.5 rounds half up
		{900, 0, 0},
		{0, 0.07, 0},
	}
	for _, tt := range tests {
		if got := Tax(tt.subtotal, tt.rate); got != tt.want {
			t.Errorf("Tax(%d, %v) = %d, want %d", tt.subtotal, tt.rate, got, tt.want)
		}
	}

	// A bigger subtotal never pays less tax.
	prev := int64(-1)
	for subtotal := int64(0); subtotal <= 2000; subtotal += 37 {
		got := Tax(subtotal, 0.07)
		if got < prev {
			t.Fatalf("Tax not monotone: Tax(%d) = %d < %d", subtotal, got, prev)
		}
		prev = got
	}
}

func TestTipNamedPercents(t *testing.T) {
	tests := []struct {
		percent int
		want    int64
	}{
		{15, 135},
		{18, 162},
		{20, 180},
		{22, 198},
	}
	for _, tt := range tests {
		got := Tip(900, TipSelection{Percent: tt.percent})
		if got != tt.want {
			t.Errorf("Tip(900, %d%%) = %d, want %d", tt.percent, got, tt.want)
		}
	}
	// Rounding: 15% of 1111 = 166.65 -> 167.
	if got := Tip(1111, TipSelection{Percent: 15}); got != 167 {
		t.Errorf("Tip(1111, 15%%) = %d, want 167", got)
	}
}

func TestTipCustom(t *testing.T) {
	tests := []struct {
		entered float64
		want    int64
	}{
		{250, 250},
		{250.4, 250},
		{250.5, 251},
		{0, 0},
		{-50, -50}, // kept negative; checkout rejects it
	}
	for _, tt := range tests {
		got := Tip(900, TipSelection{Custom: true, CustomCents: tt.entered})
		if got != tt.want {
			t.Errorf("Tip(custom %v) = %d, want %d", tt.entered, got, tt.want)
		}
	}
}

func TestTotal(t *testing.T) {
	if got := Total(900, 63, 135); got != 1098 {
		t.Errorf("Total(900, 63, 135) = %d, want 1098", got)
	}
	if got := Total(0, 0, 0); got != 0 {
		t.Errorf("Total(0, 0, 0) = %d, want 0", got)
	}
}
