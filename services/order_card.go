package services

import (
	"fmt"
	"strconv"
	"strings"

	"wolfcafe-telegram/models"
)

// OrderCardButton is one inline button (text + callback data).
type OrderCardButton struct {
	Text         string
	CallbackData string
}

// OrderCardContent is the text and optional inline keyboard for one
// order card.
type OrderCardContent struct {
	Text    string
	Buttons [][]OrderCardButton
}

// StatusLabel renders a status for display ("picked up" → "Picked up").
func StatusLabel(status string) string {
	if status == "" {
		status = models.OrderStatusPending
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

func statusCallback(orderID int64, to string) string {
	return "order_status:" + strconv.FormatInt(orderID, 10) + ":" + to
}

func cardHeader(o models.Order, st StyleTokens) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d\n", o.ID)
	if created, err := ParseCreated(o.Created); err == nil {
		fmt.Fprintf(&b, "%s\n", created.Format("Jan 2, 2006 3:04 PM"))
	}
	b.WriteString("\n")
	if o.ItemStr != "" {
		for _, part := range strings.Split(o.ItemStr, ",") {
			fmt.Fprintf(&b, "%s %s\n", st.Bullet, strings.TrimSpace(part))
		}
	} else {
		b.WriteString("(no items)\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", FormatCents(o.Subtotal))
	fmt.Fprintf(&b, "Tax: %s\n", FormatCents(o.Tax))
	fmt.Fprintf(&b, "Tip: %s\n", FormatCents(o.Tip))
	fmt.Fprintf(&b, "Total: %s\n", FormatCents(o.FullTotal()))
	fmt.Fprintf(&b, "\n%s Status: %s", st.StatusGlyph(o.Status), StatusLabel(o.Status))
	return b.String()
}

// BuildCustomerCard is the guest/customer view of an order. The only
// actions ever offered are Cancel while pending and Pick Up once
// fulfilled; terminal orders get no buttons.
func BuildCustomerCard(o models.Order, st StyleTokens) OrderCardContent {
	text := cardHeader(o, st)

	var buttons [][]OrderCardButton
	switch o.Status {
	case models.OrderStatusPending:
		buttons = [][]OrderCardButton{
			{{Text: "Cancel", CallbackData: statusCallback(o.ID, models.OrderStatusCanceled)}},
		}
	case models.OrderStatusFulfilled:
		buttons = [][]OrderCardButton{
			{{Text: "Pick Up", CallbackData: statusCallback(o.ID, models.OrderStatusPickedUp)}},
		}
	}
	return OrderCardContent{Text: text, Buttons: buttons}
}

// BuildStaffCard is the staff/admin view: customer name on top and a
// Complete button while the order is pending.
func BuildStaffCard(o models.Order, customerName string, st StyleTokens) OrderCardContent {
	if customerName == "" {
		customerName = "Guest"
	}
	text := "Customer: " + customerName + "\n" + cardHeader(o, st)

	var buttons [][]OrderCardButton
	if o.Status == models.OrderStatusPending {
		buttons = [][]OrderCardButton{
			{{Text: "Complete", CallbackData: statusCallback(o.ID, models.OrderStatusFulfilled)}},
		}
	}
	return OrderCardContent{Text: text, Buttons: buttons}
}
