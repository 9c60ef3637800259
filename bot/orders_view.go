package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"wolfcafe-telegram/api"
	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Order lists always refetch from the backend; nothing is cached
// between renders.

const maxOrderCards = 10

// showViewerOrders is the guest/customer list: own orders for an
// authenticated session, today's walk-in orders for a guest.
func (b *Bot) showViewerOrders(ctx context.Context, chatID int64) {
	sess := b.session(ctx, chatID)
	orders, err := b.client(sess).ListOrders(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load orders", err)
		return
	}

	visible := services.SortByCreatedDescending(services.FilterForViewer(orders, sess, time.Now()))
	if len(visible) == 0 {
		b.send(chatID, "No orders found.")
		return
	}
	if len(visible) > maxOrderCards {
		b.send(chatID, fmt.Sprintf("Showing your %d most recent orders.", maxOrderCards))
		visible = visible[:maxOrderCards]
	}

	style := b.style(chatID)
	for _, o := range visible {
		content := services.BuildCustomerCard(o, style)
		if kb := cardMarkup(content); kb != nil {
			b.sendWithInline(chatID, content.Text, *kb)
		} else {
			b.send(chatID, content.Text)
		}
	}
}

// showStaffOrders lists a calendar day's orders (default today) with
// customer names, the day's revenue and Complete buttons.
func (b *Bot) showStaffOrders(ctx context.Context, chatID int64, date *time.Time) {
	sess := b.session(ctx, chatID)
	if !services.ViewerRole(sess).IsStaff() {
		return
	}
	client := b.client(sess)

	orders, err := client.ListOrders(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load orders", err)
		return
	}

	day := time.Now()
	if date != nil {
		day = *date
	}
	visible := services.SortByCreatedDescending(services.FilterByDate(orders, day))

	header := fmt.Sprintf("🧾 Orders for %s\nDaily Revenue: %s",
		day.Format("2006-01-02"),
		services.FormatCents(services.DailyRevenue(visible)))
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Today", "staffdate:today"),
			tgbotapi.NewInlineKeyboardButtonData("Pick a date", "staffdate:pick"),
		),
	)
	b.sendWithInline(chatID, header, kb)

	if len(visible) == 0 {
		b.send(chatID, "No orders found.")
		return
	}
	if len(visible) > maxOrderCards {
		visible = visible[:maxOrderCards]
	}

	style := b.style(chatID)
	names := map[int64]string{}
	for _, o := range visible {
		content := services.BuildStaffCard(o, b.customerName(ctx, client, names, o), style)
		if kb := cardMarkup(content); kb != nil {
			b.sendWithInline(chatID, content.Text, *kb)
		} else {
			b.send(chatID, content.Text)
		}
	}
}

// customerName resolves an order's customer display name, caching per
// render. Lookup failures fall back to Guest, same as the original
// staff screen.
func (b *Bot) customerName(ctx context.Context, client *api.Client, cache map[int64]string, o models.Order) string {
	if o.CustomerID == nil {
		return "Guest"
	}
	if name, ok := cache[*o.CustomerID]; ok {
		return name
	}
	name := "Guest"
	if u, err := client.GetUserByID(ctx, *o.CustomerID); err != nil {
		log.Printf("fetch customer %d: %v", *o.CustomerID, err)
	} else if u.Name != "" {
		name = u.Name
	}
	cache[*o.CustomerID] = name
	return name
}

func (b *Bot) handleStaffDateCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	switch cq.Data {
	case "staffdate:today":
		b.answerCallback(cq, "", false)
		b.showStaffOrders(ctx, chatID, nil)
	case "staffdate:pick":
		b.stateMu.Lock()
		if b.staffState[chatID] == nil {
			b.staffState[chatID] = &staffFlowState{}
		}
		b.staffState[chatID].Step = "orders_date"
		b.stateMu.Unlock()
		b.answerCallback(cq, "", false)
		b.send(chatID, "Send a date as YYYY-MM-DD.")
	default:
		b.answerCallback(cq, "", false)
	}
}

// handleStatusCallback is the one path that changes an order. The
// transition table is re-checked here so a stale card cannot request
// an illegal move, and the role gate mirrors which card ever shows the
// button.
func (b *Bot) handleStatusCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	parts := strings.SplitN(cq.Data, ":", 3)
	if len(parts) != 3 {
		b.answerCallback(cq, "", false)
		return
	}
	orderID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		b.answerCallback(cq, "", false)
		return
	}
	newStatus := parts[2]

	sess := b.session(ctx, chatID)
	role := services.ViewerRole(sess)
	if newStatus == models.OrderStatusFulfilled && !role.IsStaff() {
		b.answerCallback(cq, "Only staff can complete orders.", true)
		return
	}
	client := b.client(sess)

	order, err := client.GetOrder(ctx, orderID)
	if err != nil {
		b.answerCallback(cq, "Couldn't load that order.", true)
		log.Printf("load order %d: %v", orderID, err)
		return
	}
	if !services.ValidStatusTransition(order.Status, newStatus) {
		b.answerCallback(cq, fmt.Sprintf("This order is already %s.", services.StatusLabel(order.Status)), true)
		b.refreshOrderCard(ctx, cq, *order, role)
		return
	}

	if err := client.UpdateOrderStatus(ctx, orderID, newStatus); err != nil {
		b.answerCallback(cq, "Couldn't update the order. Please try again.", true)
		log.Printf("update order %d status: %v", orderID, err)
		return
	}

	order.Status = newStatus
	b.answerCallback(cq, "Order "+services.StatusLabel(newStatus), false)
	b.refreshOrderCard(ctx, cq, *order, role)
}

// refreshOrderCard redraws the card the button lived on with the
// order's current state.
func (b *Bot) refreshOrderCard(ctx context.Context, cq *tgbotapi.CallbackQuery, o models.Order, role models.Role) {
	chatID := cq.Message.Chat.ID
	style := b.style(chatID)

	var content services.OrderCardContent
	if role.IsStaff() {
		sess := b.session(ctx, chatID)
		names := map[int64]string{}
		content = services.BuildStaffCard(o, b.customerName(ctx, b.client(sess), names, o), style)
	} else {
		content = services.BuildCustomerCard(o, style)
	}
	b.editCard(chatID, cq.Message.MessageID, content)
}
