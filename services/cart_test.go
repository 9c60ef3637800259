package services

import (
	"errors"
	"testing"

	"wolfcafe-telegram/models"
)

func TestCartAddLine(t *testing.T) {
	c := &Cart{}
	latte := models.MenuItem{ID: 1, Name: "Latte", Price: 450}

	if err := c.AddLine(latte, 2); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if err := c.AddLine(latte, 1); !errors.Is(err, ErrDuplicateItem) {
		t.Errorf("duplicate add: got %v, want ErrDuplicateItem", err)
	}
	if err := c.AddLine(models.MenuItem{ID: 2, Name: "Scone", Price: 225}, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := c.AddLine(models.MenuItem{ID: 2, Name: "Scone", Price: 225}, -1); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("negative quantity: got %v, want ErrInvalidQuantity", err)
	}
	if len(c.Lines) != 1 {
		t.Fatalf("cart has %d lines, want 1", len(c.Lines))
	}
	if c.Lines[0].Price != 450 || c.Lines[0].Quantity != 2 {
		t.Errorf("line snapshot = %+v", c.Lines[0])
	}
}

func TestCartRemoveLine(t *testing.T) {
	c := &Cart{}
	_ = c.AddLine(models.MenuItem{ID: 1, Name: "Latte", Price: 450}, 1)
	_ = c.AddLine(models.MenuItem{ID: 2, Name: "Scone", Price: 225}, 1)

	c.RemoveLine(1)
	if len(c.Lines) != 1 || c.Lines[0].ItemID != 2 {
		t.Errorf("after remove: %+v", c.Lines)
	}
	// Removing an absent line is a no-op.
	c.RemoveLine(99)
	if len(c.Lines) != 1 {
		t.Errorf("remove absent changed the cart: %+v", c.Lines)
	}
}

func TestCartEmpty(t *testing.T) {
	c := &Cart{}
	if !c.Empty() {
		t.Error("new cart should be empty")
	}
	_ = c.AddLine(models.MenuItem{ID: 1, Name: "Latte", Price: 450}, 1)
	if c.Empty() {
		t.Error("cart with a line should not be empty")
	}
}

func TestCartSubtotal(t *testing.T) {
	c := &Cart{}
	_ = c.AddLine(models.MenuItem{ID: 1, Name: "Latte", Price: 450}, 2)
	_ = c.AddLine(models.MenuItem{ID: 2, Name: "Scone", Price: 225}, 1)
	if got := c.Subtotal(); got != 1125 {
		t.Errorf("Subtotal = %d, want 1125", got)
	}
}

func TestRestoreFromPriorOrder(t *testing.T) {
	catalog := []models.MenuItem{
		{ID: 10, Name: "Latte", Price: 475}, // price changed since the order
		{ID: 11, Name: "Muffin", Price: 300},
	}
	prior := []CartLine{
		{ItemID: 1, Name: "Latte", Price: 450, Quantity: 2},
		{ItemID: 2, Name: "Scone", Price: 225, Quantity: 1}, // gone from the catalog
	}

	got := RestoreFromPriorOrder(catalog, prior)
	if len(got) != 2 {
		t.Fatalf("restored %d lines, want 2", len(got))
	}
	// Matched by name: current catalog id and price, prior quantity.
	if got[0].ItemID != 10 || got[0].Price != 475 || got[0].Quantity != 2 {
		t.Errorf("matched line = %+v", got[0])
	}
	// Unmatched: prior snapshot kept, id zeroed.
	if got[1].ItemID != 0 || got[1].Price != 225 || got[1].Quantity != 1 {
		t.Errorf("unmatched line = %+v", got[1])
	}
}
