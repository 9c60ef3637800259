package services

import (
	"errors"

	"wolfcafe-telegram/models"
)

var (
	ErrDuplicateItem   = errors.New("item already in the order")
	ErrInvalidQuantity = errors.New("quantity must be a positive whole number")
)

// CartLine snapshots an item's id, name and price at the moment it is
// added, plus the chosen quantity. A cart holds at most one line per
// item id.
type CartLine struct {
	ItemID   int64  `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"qty"`
}

// Cart is one in-progress order, scoped to a single chat. It lives in
// memory while the user is in the ordering flow and is persisted per
// chat (cart_store.go) so a bot restart does not eat it. Destroyed on
// successful submission or discard.
type Cart struct {
	Lines []CartLine `json:"items"`
}

// AddLine appends a snapshot of item with the given quantity.
func (c *Cart) AddLine(item models.MenuItem, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	for _, l := range c.Lines {
		if l.ItemID == item.ID {
			return ErrDuplicateItem
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ItemID:   item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: qty,
	})
	return nil
}

// RemoveLine drops the line for itemID. Removing an absent line is a
// no-op, not an error.
func (c *Cart) RemoveLine(itemID int64) {
	for i, l := range c.Lines {
		if l.ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Subtotal is the cart's current subtotal in cents.
func (c *Cart) Subtotal() int64 {
	return Subtotal(c.Lines)
}

// Empty reports whether no line would survive submission.
func (c *Cart) Empty() bool {
	for _, l := range c.Lines {
		if l.Quantity > 0 {
			return false
		}
	}
	return true
}

// RestoreFromPriorOrder rebuilds cart lines from a previous order's
// item snapshots, used when a user goes back to edit an order before
// paying. Each prior line is matched by name against the current
// catalog: found means the catalog's current id and price with the
// prior quantity, not found means the prior snapshot is kept as-is
// (id 0) so the user can still see what they had. Matching by name
// rather than id is inherited behavior and is ambiguous when item
// names repeat.
func RestoreFromPriorOrder(catalog []models.MenuItem, prior []CartLine) []CartLine {
	restored := make([]CartLine, 0, len(prior))
	for _, p := range prior {
		line := CartLine{Name: p.Name, Price: p.Price, Quantity: p.Quantity}
		for _, item := range catalog {
			if item.Name == p.Name {
				line.ItemID = item.ID
				line.Price = item.Price
				break
			}
		}
		restored = append(restored, line)
	}
	return restored
}
