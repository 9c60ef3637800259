package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wolfcafe-telegram/models"
)

var (
	ErrEmptyCart           = errors.New("order has no items")
	ErrNegativeTip         = errors.New("tip must not be negative")
	ErrInvalidPayment      = errors.New("payment must be a positive amount")
	ErrInsufficientPayment = errors.New("payment is less than the order total")
)

// Order timestamps are café wall-clock time, not the user's.
var newYork = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// createdLayout is the backend's LocalDateTime form: date and time
// joined by T, no UTC offset.
const createdLayout = "2006-01-02T15:04:05"

// ValidateForSubmission rejects a cart with no positive-quantity lines.
func ValidateForSubmission(cart *Cart) error {
	if cart == nil || cart.Empty() {
		return ErrEmptyCart
	}
	return nil
}

// ValidateTip rejects a resolved tip below zero (possible only via the
// custom entry).
func ValidateTip(tipCents int64) error {
	if tipCents < 0 {
		return ErrNegativeTip
	}
	return nil
}

// SubmitPayment checks the entered payment against the total and
// returns the change due. Nothing is persisted here: the order is only
// sent to the backend after this succeeds, and the backend stays the
// authority on what gets saved.
func SubmitPayment(totalCents, enteredCents int64) (int64, error) {
	if enteredCents <= 0 {
		return 0, ErrInvalidPayment
	}
	if enteredCents < totalCents {
		return 0, ErrInsufficientPayment
	}
	return enteredCents - totalCents, nil
}

// BuildOrderPayload assembles the order-creation request: line
// snapshots (zero-quantity lines dropped), the computed totals, the
// local-time created stamp and the initial pending status. customerID
// nil marks a guest order.
func BuildOrderPayload(cart *Cart, customerID *int64, tax, tip int64, now time.Time) models.Order {
	var items []models.OrderItem
	var kept []CartLine
	for _, l := range cart.Lines {
		if l.Quantity <= 0 {
			continue
		}
		kept = append(kept, l)
		items = append(items, models.OrderItem{
			ID:       l.ItemID,
			ItemName: l.Name,
			Price:    l.Price,
			Quantity: l.Quantity,
		})
	}

	subtotal := Subtotal(kept)
	return models.Order{
		CustomerID: customerID,
		Items:      items,
		Subtotal:   subtotal,
		Tax:        tax,
		Tip:        tip,
		Total:      Total(subtotal, tax, tip),
		Created:    now.In(newYork).Format(createdLayout),
		Status:     models.OrderStatusPending,
		ItemStr:    ItemSummary(kept),
	}
}

// ItemSummary renders the "2x Latte ($4.50), 1x Scone ($2.25)" contents
// line stored with the order and shown in every order list.
func ItemSummary(lines []CartLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", l.Quantity, l.Name, FormatCents(l.Price)))
	}
	return strings.Join(parts, ", ")
}

// FormatCents renders integer cents as $X.YY.
func FormatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
