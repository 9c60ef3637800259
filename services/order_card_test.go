package services

import (
	"strings"
	"testing"

	"wolfcafe-telegram/models"
)

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		status, want string
	}{
		{"pending", "Pending"},
		{"fulfilled", "Fulfilled"},
		{"picked up", "Picked up"},
		{"canceled", "Canceled"},
		{"", "Pending"},
	}
	for _, tt := range tests {
		if got := StatusLabel(tt.status); got != tt.want {
			t.Errorf("StatusLabel(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func sampleOrder(status string) models.Order {
	return models.Order{
		ID:       7,
		Subtotal: 900,
		Tax:      63,
		Tip:      135,
		Created:  "2025-03-14T09:30:15",
		Status:   status,
		ItemStr:  "2x Latte ($4.50)",
	}
}

func TestBuildCustomerCard(t *testing.T) {
	st := StyleFor(ThemeDefault)

	card := BuildCustomerCard(sampleOrder(models.OrderStatusPending), st)
	if !strings.Contains(card.Text, "Order #7") || !strings.Contains(card.Text, "Total: $10.98") {
		t.Errorf("card text = %q", card.Text)
	}
	if len(card.Buttons) != 1 || card.Buttons[0][0].CallbackData != "order_status:7:canceled" {
		t.Errorf("pending buttons = %+v", card.Buttons)
	}

	card = BuildCustomerCard(sampleOrder(models.OrderStatusFulfilled), st)
	if len(card.Buttons) != 1 || card.Buttons[0][0].CallbackData != "order_status:7:picked up" {
		t.Errorf("fulfilled buttons = %+v", card.Buttons)
	}

	for _, terminal := range []string{models.OrderStatusPickedUp, models.OrderStatusCanceled} {
		card = BuildCustomerCard(sampleOrder(terminal), st)
		if len(card.Buttons) != 0 {
			t.Errorf("%s card has buttons: %+v", terminal, card.Buttons)
		}
	}
}

func TestBuildStaffCard(t *testing.T) {
	st := StyleFor(ThemeDefault)

	card := BuildStaffCard(sampleOrder(models.OrderStatusPending), "Ada", st)
	if !strings.HasPrefix(card.Text, "Customer: Ada\n") {
		t.Errorf("card text = %q", card.Text)
	}
	if len(card.Buttons) != 1 || card.Buttons[0][0].CallbackData != "order_status:7:fulfilled" {
		t.Errorf("pending buttons = %+v", card.Buttons)
	}

	card = BuildStaffCard(sampleOrder(models.OrderStatusFulfilled), "", st)
	if !strings.HasPrefix(card.Text, "Customer: Guest\n") {
		t.Errorf("empty name should render Guest: %q", card.Text)
	}
	if len(card.Buttons) != 0 {
		t.Errorf("fulfilled staff card has buttons: %+v", card.Buttons)
	}
}

func TestStyleFor(t *testing.T) {
	if StyleFor("nope") != StyleFor(ThemeDefault) {
		t.Error("unknown theme should fall back to default")
	}
	if StyleFor(ThemeVaporwave).Bullet == StyleFor(ThemeDefault).Bullet {
		t.Error("themes should differ")
	}
}

func TestStatusGlyph(t *testing.T) {
	st := StyleFor(ThemeDefault)
	if st.StatusGlyph("pending") != st.Pending || st.StatusGlyph("picked up") != st.PickedUp {
		t.Error("glyph lookup mismatch")
	}
	if st.StatusGlyph("weird") != st.Bullet {
		t.Error("unknown status should fall back to the bullet")
	}
}
