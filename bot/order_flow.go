package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// orderFlowState walks a chat through building an order, choosing a
// tip and paying. The cart itself is persisted per chat; the rest of
// this is screen state.
type orderFlowState struct {
	Step          string // "", "qty", "custom_tip", "payment"
	Cart          *services.Cart
	Catalog       []models.MenuItem
	TaxRate       float64 // decimal fraction, e.g. 0.02
	Tip           services.TipSelection
	PendingItemID int64
	Payload       *models.Order // built at checkout, awaiting payment
}

func (b *Bot) startOrder(ctx context.Context, chatID int64, restoreFrom []services.CartLine) {
	sess := b.session(ctx, chatID)
	client := b.client(sess)

	catalog, err := client.ListItems(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load menu", err)
		return
	}
	if len(catalog) == 0 {
		b.send(chatID, "The menu is empty right now. Please check back later.")
		return
	}

	// A missing tax rate is not fatal; the order just carries zero tax,
	// same as the original screen.
	rateFraction := 0.0
	if pct, err := client.GetTaxRate(ctx); err != nil {
		log.Printf("fetch tax rate: %v", err)
	} else {
		rateFraction = pct / 100
	}

	var cart *services.Cart
	if restoreFrom != nil {
		cart = &services.Cart{Lines: services.RestoreFromPriorOrder(catalog, restoreFrom)}
		_ = services.SaveCart(ctx, chatID, cart)
	} else {
		cart, err = services.LoadCart(ctx, chatID)
		if err != nil {
			b.reportError(ctx, chatID, "load cart", err)
			return
		}
	}

	st := &orderFlowState{
		Cart:    cart,
		Catalog: catalog,
		TaxRate: rateFraction,
		Tip:     services.TipSelection{Percent: services.TipPercents[0]},
	}
	b.stateMu.Lock()
	b.orderState[chatID] = st
	b.stateMu.Unlock()

	b.renderOrderScreen(chatID, st)
}

func (b *Bot) orderFlow(chatID int64) *orderFlowState {
	b.stateMu.RLock()
	st := b.orderState[chatID]
	b.stateMu.RUnlock()
	return st
}

func (b *Bot) renderOrderScreen(chatID int64, st *orderFlowState) {
	style := b.style(chatID)

	var text strings.Builder
	text.WriteString("🛒 New Order\n\n")
	if len(st.Cart.Lines) == 0 {
		text.WriteString("No items yet. Pick something from the menu below.\n")
	} else {
		for _, l := range st.Cart.Lines {
			fmt.Fprintf(&text, "%s %d × %s %s %s\n",
				style.Bullet, l.Quantity, l.Name, style.Divider,
				services.FormatCents(l.Price*int64(l.Quantity)))
		}
		fmt.Fprintf(&text, "\nSubtotal: %s\n", services.FormatCents(st.Cart.Subtotal()))
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, item := range st.Catalog {
		label := fmt.Sprintf("%s — %s", item.Name, services.FormatCents(item.Price))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, "additem:"+strconv.FormatInt(item.ID, 10)),
		))
	}
	for _, l := range st.Cart.Lines {
		if l.ItemID == 0 {
			continue // fallback line from a renamed item; removable only by discard
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➖ "+l.Name, "removeitem:"+strconv.FormatInt(l.ItemID, 10)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("💳 Checkout", "checkout"),
		tgbotapi.NewInlineKeyboardButtonData("🗑 Discard", "discard"),
	))

	b.sendWithInline(chatID, text.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleOrderCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	st := b.orderFlow(chatID)
	if st == nil {
		b.answerCallback(cq, "This order screen is stale. Start a new order.", true)
		return
	}
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "additem:"):
		id, _ := strconv.ParseInt(data[len("additem:"):], 10, 64)
		for _, item := range st.Catalog {
			if item.ID == id {
				st.PendingItemID = id
				st.Step = "qty"
				b.answerCallback(cq, "", false)
				b.send(chatID, fmt.Sprintf("How many × %s? Send a number.", item.Name))
				return
			}
		}
		b.answerCallback(cq, "That item is gone from the menu.", true)

	case strings.HasPrefix(data, "removeitem:"):
		id, _ := strconv.ParseInt(data[len("removeitem:"):], 10, 64)
		st.Cart.RemoveLine(id)
		_ = services.SaveCart(ctx, chatID, st.Cart)
		b.answerCallback(cq, "Removed", false)
		b.renderOrderScreen(chatID, st)

	case data == "checkout":
		if err := services.ValidateForSubmission(st.Cart); err != nil {
			b.answerCallback(cq, "Please add at least one item first.", true)
			return
		}
		b.answerCallback(cq, "", false)
		b.showTipPicker(chatID, st)

	case strings.HasPrefix(data, "tip:"):
		b.handleTipCallback(ctx, cq, st)

	case data == "discard":
		_ = services.DeleteCart(ctx, chatID)
		b.stateMu.Lock()
		delete(b.orderState, chatID)
		b.stateMu.Unlock()
		b.answerCallback(cq, "", false)
		b.sendMainMenu(ctx, chatID, "Order discarded.")

	case data == "editorder":
		// Back from the payment screen: rebuild the cart from the
		// payload snapshots against the current catalog.
		if st.Payload == nil {
			b.answerCallback(cq, "", false)
			return
		}
		prior := make([]services.CartLine, 0, len(st.Payload.Items))
		for _, it := range st.Payload.Items {
			prior = append(prior, services.CartLine{Name: it.ItemName, Price: it.Price, Quantity: it.Quantity})
		}
		b.answerCallback(cq, "", false)
		b.startOrder(ctx, chatID, prior)

	case data == "orderdone":
		b.answerCallback(cq, "", false)
		b.showViewerOrders(ctx, chatID)
	}
}

func (b *Bot) showTipPicker(chatID int64, st *orderFlowState) {
	subtotal := st.Cart.Subtotal()
	tax := services.Tax(subtotal, st.TaxRate)

	text := fmt.Sprintf("Subtotal: %s\nTax: %s\n\nAdd a tip?",
		services.FormatCents(subtotal), services.FormatCents(tax))

	var row []tgbotapi.InlineKeyboardButton
	for _, p := range services.TipPercents {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("%d%%", p), "tip:"+strconv.Itoa(p)))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Custom", "tip:custom"),
			tgbotapi.NewInlineKeyboardButtonData("No tip", "tip:0"),
		),
	)
	b.sendWithInline(chatID, text, kb)
}

func (b *Bot) handleTipCallback(ctx context.Context, cq *tgbotapi.CallbackQuery, st *orderFlowState) {
	chatID := cq.Message.Chat.ID
	choice := cq.Data[len("tip:"):]

	if choice == "custom" {
		st.Step = "custom_tip"
		b.answerCallback(cq, "", false)
		b.send(chatID, "Send the tip amount in cents (e.g. 150 for $1.50).")
		return
	}
	p, err := strconv.Atoi(choice)
	if err != nil {
		b.answerCallback(cq, "", false)
		return
	}
	st.Tip = services.TipSelection{Percent: p}
	b.answerCallback(cq, "", false)
	b.showPaymentScreen(ctx, chatID, st)
}

// showPaymentScreen freezes the totals into the creation payload and
// asks for payment. Nothing reaches the backend until the payment
// covers the total.
func (b *Bot) showPaymentScreen(ctx context.Context, chatID int64, st *orderFlowState) {
	subtotal := st.Cart.Subtotal()
	tax := services.Tax(subtotal, st.TaxRate)
	tip := services.Tip(subtotal, st.Tip)

	if err := services.ValidateTip(tip); err != nil {
		st.Step = "custom_tip"
		b.send(chatID, "Tip must not be negative. Send a new amount in cents.")
		return
	}

	sess := b.session(ctx, chatID)
	var customerID *int64
	if sess != nil {
		id := sess.UserID
		customerID = &id
	}

	payload := services.BuildOrderPayload(st.Cart, customerID, tax, tip, time.Now())
	st.Payload = &payload
	st.Step = "payment"

	text := fmt.Sprintf(
		"💳 Payment\n\nSubtotal: %s\nTax: %s\nTip: %s\nTotal: %s\n\nEnter the payment amount in dollars (e.g. 12.50).",
		services.FormatCents(payload.Subtotal),
		services.FormatCents(payload.Tax),
		services.FormatCents(payload.Tip),
		services.FormatCents(payload.Total),
	)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ Edit Order", "editorder"),
		),
	)
	b.sendWithInline(chatID, text, kb)
}

// handleOrderText consumes text input while the order flow expects it.
// Returns false when the message was not for this flow.
func (b *Bot) handleOrderText(ctx context.Context, chatID int64, text string) bool {
	st := b.orderFlow(chatID)
	if st == nil || st.Step == "" {
		return false
	}

	switch st.Step {
	case "qty":
		qty, err := strconv.Atoi(text)
		if err != nil {
			b.send(chatID, "Please send a whole number, e.g. 2.")
			return true
		}
		var picked *models.MenuItem
		for i := range st.Catalog {
			if st.Catalog[i].ID == st.PendingItemID {
				picked = &st.Catalog[i]
				break
			}
		}
		if picked == nil {
			st.Step = ""
			b.renderOrderScreen(chatID, st)
			return true
		}
		if err := st.Cart.AddLine(*picked, qty); err != nil {
			b.send(chatID, inputErrorMessage(err))
			st.Step = ""
			b.renderOrderScreen(chatID, st)
			return true
		}
		_ = services.SaveCart(ctx, chatID, st.Cart)
		st.Step = ""
		b.renderOrderScreen(chatID, st)

	case "custom_tip":
		cents, err := strconv.ParseFloat(text, 64)
		if err != nil {
			b.send(chatID, "Please send a number of cents, e.g. 150.")
			return true
		}
		st.Tip = services.TipSelection{Custom: true, CustomCents: cents}
		b.showPaymentScreen(ctx, chatID, st)

	case "payment":
		b.handlePaymentText(ctx, chatID, st, text)
	}
	return true
}

func (b *Bot) handlePaymentText(ctx context.Context, chatID int64, st *orderFlowState, text string) {
	dollars, err := strconv.ParseFloat(strings.TrimPrefix(text, "$"), 64)
	if err != nil {
		b.send(chatID, "Please enter a valid payment amount.")
		return
	}
	entered := int64(math.Round(dollars * 100))

	change, err := services.SubmitPayment(st.Payload.Total, entered)
	if err != nil {
		b.send(chatID, inputErrorMessage(err))
		return
	}

	sess := b.session(ctx, chatID)
	saved, err := b.client(sess).CreateOrder(ctx, *st.Payload)
	if err != nil {
		// The cart and payload stay as they were; the user can retry.
		b.reportError(ctx, chatID, "submit order", err)
		return
	}

	_ = services.DeleteCart(ctx, chatID)
	b.stateMu.Lock()
	delete(b.orderState, chatID)
	b.stateMu.Unlock()

	text = fmt.Sprintf(
		"✅ Payment successful!\n\nOrder #%d\nPaid: %s\nTotal: %s\nChange due: %s",
		saved.ID,
		services.FormatCents(entered),
		services.FormatCents(st.Payload.Total),
		services.FormatCents(change),
	)
	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 My Orders", "orderdone"),
		),
	)
	b.sendWithInline(chatID, text, kb)
}

// inputErrorMessage maps validation sentinels to user wording.
func inputErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrDuplicateItem):
		return "That item is already in your order. Remove it first to change the quantity."
	case errors.Is(err, services.ErrInvalidQuantity):
		return "Quantity must be a positive whole number."
	case errors.Is(err, services.ErrEmptyCart):
		return "Please add at least one item."
	case errors.Is(err, services.ErrNegativeTip):
		return "Tip must not be negative."
	case errors.Is(err, services.ErrInvalidPayment):
		return "Please enter a valid payment amount."
	case errors.Is(err, services.ErrInsufficientPayment):
		return "Insufficient payment. Please enter the full total."
	default:
		return "Something went wrong. Please try again."
	}
}
