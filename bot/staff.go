package bot

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// staffFlowState drives the staff management conversations: the date
// prompt for the orders screen, the add/edit item form, restocking and
// the tax rate change. One flow at a time per chat.
type staffFlowState struct {
	Step string

	ItemID int64 // 0 while creating
	Item   models.ItemInput

	Inventory     *models.Inventory
	IngredientID  int64
	NewIngredient string

	TaxPercent float64
}

func (b *Bot) staffFlow(chatID int64) *staffFlowState {
	b.stateMu.RLock()
	st := b.staffState[chatID]
	b.stateMu.RUnlock()
	return st
}

func (b *Bot) setStaffFlow(chatID int64, st *staffFlowState) {
	b.stateMu.Lock()
	if st == nil {
		delete(b.staffState, chatID)
	} else {
		b.staffState[chatID] = st
	}
	b.stateMu.Unlock()
}

// --- menu items ---

func (b *Bot) showItems(ctx context.Context, chatID int64) {
	sess := b.session(ctx, chatID)
	if !services.ViewerRole(sess).IsStaff() {
		return
	}
	items, err := b.client(sess).ListItems(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load items", err)
		return
	}

	st := b.style(chatID)
	var sb strings.Builder
	sb.WriteString("🍽 Menu Items\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("%s %s %s", st.Bullet, it.Name, services.FormatCents(it.Price)))
		if it.Description != "" {
			sb.WriteString(" — " + it.Description)
		}
		sb.WriteString("\n")
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+it.Name, fmt.Sprintf("item_edit:%d", it.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑", fmt.Sprintf("item_del:%d", it.ID)),
		))
	}
	if len(items) == 0 {
		sb.WriteString("No items yet.\n")
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Add item", "item_add"),
	))
	b.sendWithInline(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleItemCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.session(ctx, chatID)
	if !services.ViewerRole(sess).IsStaff() {
		b.answerCallback(cq, "Staff only.", true)
		return
	}
	client := b.client(sess)
	data := cq.Data

	switch {
	case data == "item_add":
		b.setStaffFlow(chatID, &staffFlowState{Step: "item_name"})
		b.answerCallback(cq, "", false)
		b.send(chatID, "Item name:")

	case strings.HasPrefix(data, "item_edit:"):
		id, err := strconv.ParseInt(data[len("item_edit:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		item, err := client.GetItem(ctx, id)
		if err != nil {
			b.answerCallback(cq, "Couldn't load that item.", true)
			return
		}
		b.setStaffFlow(chatID, &staffFlowState{
			Step:   "item_name",
			ItemID: item.ID,
			Item: models.ItemInput{
				Name:        item.Name,
				Description: item.Description,
				Price:       item.Price,
				Ingredients: item.Ingredients,
			},
		})
		b.answerCallback(cq, "", false)
		b.send(chatID, fmt.Sprintf("New name (current: %s), or - to keep:", item.Name))

	case strings.HasPrefix(data, "item_del:"):
		id, err := strconv.ParseInt(data[len("item_del:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		item, err := client.GetItem(ctx, id)
		if err != nil {
			b.answerCallback(cq, "Couldn't load that item.", true)
			return
		}
		b.answerCallback(cq, "", false)
		kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, delete", fmt.Sprintf("item_delyes:%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("Keep it", "item_delno"),
		))
		b.sendWithInline(chatID, fmt.Sprintf("Delete %s?", item.Name), kb)

	case strings.HasPrefix(data, "item_delyes:"):
		id, err := strconv.ParseInt(data[len("item_delyes:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		if err := client.DeleteItem(ctx, id); err != nil {
			b.answerCallback(cq, "", false)
			b.reportError(ctx, chatID, "delete item", err)
			return
		}
		b.answerCallback(cq, "Item deleted", false)
		b.showItems(ctx, chatID)

	case data == "item_delno":
		b.answerCallback(cq, "", false)

	default:
		b.answerCallback(cq, "", false)
	}
}

func (b *Bot) handleItemText(ctx context.Context, chatID int64, st *staffFlowState, text string) {
	switch st.Step {
	case "item_name":
		if text != "-" {
			st.Item.Name = text
		}
		st.Step = "item_desc"
		b.send(chatID, "Description, or - for none:")
	case "item_desc":
		if text == "-" {
			if st.ItemID == 0 {
				st.Item.Description = ""
			}
		} else {
			st.Item.Description = text
		}
		st.Step = "item_price"
		b.send(chatID, "Price in dollars, e.g. 4.50:")
	case "item_price":
		dollars, err := strconv.ParseFloat(strings.TrimPrefix(text, "$"), 64)
		if err != nil || dollars < 0 {
			b.send(chatID, "Please send a price like 4.50.")
			return
		}
		st.Item.Price = int64(math.Round(dollars * 100))
		st.Step = "item_ingredients"
		b.send(chatID, "Ingredients as name:quantity, comma separated (e.g. Coffee:2, Milk:1), or - for none:")
	case "item_ingredients":
		if text != "-" {
			ings, err := parseIngredientList(text)
			if err != nil {
				b.send(chatID, "Couldn't read that. Use name:quantity pairs, e.g. Coffee:2, Milk:1.")
				return
			}
			st.Item.Ingredients = ings
		}
		b.saveItem(ctx, chatID, st)
	}
}

func (b *Bot) saveItem(ctx context.Context, chatID int64, st *staffFlowState) {
	b.setStaffFlow(chatID, nil)
	if err := models.CheckInput(st.Item); err != nil {
		b.send(chatID, "That item doesn't look right: the name is required and the price can't be negative.")
		return
	}

	client := b.client(b.session(ctx, chatID))
	var (
		item *models.MenuItem
		err  error
	)
	if st.ItemID == 0 {
		item, err = client.CreateItem(ctx, st.Item)
	} else {
		item, err = client.UpdateItem(ctx, st.ItemID, st.Item)
	}
	if err != nil {
		b.reportError(ctx, chatID, "save item", err)
		return
	}
	b.send(chatID, fmt.Sprintf("Saved %s at %s.", item.Name, services.FormatCents(item.Price)))
	b.showItems(ctx, chatID)
}

// parseIngredientList turns "Coffee:2, Milk:1" into ingredient
// requirements.
func parseIngredientList(text string) ([]models.ItemIngredient, error) {
	var out []models.ItemIngredient
	for _, part := range strings.Split(text, ",") {
		name, qtyStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("missing quantity in %q", part)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("bad quantity in %q", part)
		}
		out = append(out, models.ItemIngredient{
			Ingredient: models.Ingredient{Name: strings.TrimSpace(name)},
			Quantity:   qty,
		})
	}
	return out, nil
}

// --- inventory ---

func (b *Bot) showInventory(ctx context.Context, chatID int64) {
	sess := b.session(ctx, chatID)
	if !services.ViewerRole(sess).IsStaff() {
		return
	}
	inv, err := b.client(sess).GetInventory(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load inventory", err)
		return
	}

	st := b.style(chatID)
	var sb strings.Builder
	sb.WriteString("📦 Inventory\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, ing := range inv.Ingredients {
		sb.WriteString(fmt.Sprintf("%s %s: %d\n", st.Bullet, ing.Name, ing.Quantity))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ "+ing.Name, fmt.Sprintf("inv_add:%d", ing.ID)),
		))
	}
	if len(inv.Ingredients) == 0 {
		sb.WriteString("Nothing in stock yet.\n")
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🆕 New ingredient", "inv_new"),
	))
	b.sendWithInline(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleInventoryCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.session(ctx, chatID)
	if !services.ViewerRole(sess).IsStaff() {
		b.answerCallback(cq, "Staff only.", true)
		return
	}
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "inv_add:"):
		id, err := strconv.ParseInt(data[len("inv_add:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		inv, err := b.client(sess).GetInventory(ctx)
		if err != nil {
			b.answerCallback(cq, "Couldn't load the inventory.", true)
			return
		}
		b.setStaffFlow(chatID, &staffFlowState{Step: "inv_amount", Inventory: inv, IngredientID: id})
		b.answerCallback(cq, "", false)
		b.send(chatID, "How many units to add?")

	case data == "inv_new":
		inv, err := b.client(sess).GetInventory(ctx)
		if err != nil {
			b.answerCallback(cq, "Couldn't load the inventory.", true)
			return
		}
		b.setStaffFlow(chatID, &staffFlowState{Step: "inv_new_name", Inventory: inv})
		b.answerCallback(cq, "", false)
		b.send(chatID, "Name of the new ingredient:")

	case data == "tax_confirm":
		st := b.staffFlow(chatID)
		if st == nil || st.Step != "tax_confirm" {
			b.answerCallback(cq, "", false)
			return
		}
		b.setStaffFlow(chatID, nil)
		rate, err := b.client(sess).SetTaxRate(ctx, st.TaxPercent)
		if err != nil {
			b.answerCallback(cq, "", false)
			b.reportError(ctx, chatID, "set tax rate", err)
			return
		}
		b.answerCallback(cq, "Tax rate updated", false)
		b.send(chatID, fmt.Sprintf("Tax rate is now %.2f%%.", rate))

	case data == "tax_cancel":
		b.setStaffFlow(chatID, nil)
		b.answerCallback(cq, "", false)
		b.send(chatID, "Tax rate unchanged.")

	default:
		b.answerCallback(cq, "", false)
	}
}

func (b *Bot) handleInventoryText(ctx context.Context, chatID int64, st *staffFlowState, text string) {
	switch st.Step {
	case "inv_amount":
		n, err := strconv.Atoi(text)
		if err != nil || n <= 0 {
			b.send(chatID, "Please send a whole number greater than zero.")
			return
		}
		inv := st.Inventory
		found := false
		for i := range inv.Ingredients {
			if inv.Ingredients[i].ID == st.IngredientID {
				inv.Ingredients[i].Quantity += n
				found = true
				break
			}
		}
		b.setStaffFlow(chatID, nil)
		if !found {
			b.send(chatID, "That ingredient is gone. Reopen the inventory and try again.")
			return
		}
		if err := b.client(b.session(ctx, chatID)).UpdateInventory(ctx, *inv); err != nil {
			b.reportError(ctx, chatID, "update inventory", err)
			return
		}
		b.send(chatID, "Stock updated.")
		b.showInventory(ctx, chatID)

	case "inv_new_name":
		st.NewIngredient = text
		st.Step = "inv_new_qty"
		b.send(chatID, "Starting quantity:")

	case "inv_new_qty":
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			b.send(chatID, "Please send a whole number, zero or more.")
			return
		}
		inv := st.Inventory
		inv.Ingredients = append(inv.Ingredients, models.Ingredient{Name: st.NewIngredient, Quantity: n})
		b.setStaffFlow(chatID, nil)
		if err := b.client(b.session(ctx, chatID)).UpdateInventory(ctx, *inv); err != nil {
			b.reportError(ctx, chatID, "update inventory", err)
			return
		}
		b.send(chatID, fmt.Sprintf("Added %s with %d in stock.", st.NewIngredient, n))
		b.showInventory(ctx, chatID)
	}
}

// --- tax rate ---

func (b *Bot) showTaxRate(ctx context.Context, chatID int64) {
	sess := b.session(ctx, chatID)
	if !services.ViewerRole(sess).IsStaff() {
		return
	}
	rate, err := b.client(sess).GetTaxRate(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load tax rate", err)
		return
	}
	b.setStaffFlow(chatID, &staffFlowState{Step: "tax_percent"})
	b.send(chatID, fmt.Sprintf("Current tax rate: %.2f%%.\nSend a new percentage (0 to 100) to change it, or /cancel.", rate))
}

func (b *Bot) handleTaxText(ctx context.Context, chatID int64, st *staffFlowState, text string) {
	percent, err := strconv.ParseFloat(strings.TrimSuffix(text, "%"), 64)
	if err != nil {
		b.send(chatID, "Please send a number, e.g. 2 for 2%.")
		return
	}
	if err := models.CheckInput(models.TaxRateInput{Percent: percent}); err != nil {
		b.send(chatID, "The tax rate must be between 0 and 100.")
		return
	}
	st.Step = "tax_confirm"
	st.TaxPercent = percent
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Confirm", "tax_confirm"),
		tgbotapi.NewInlineKeyboardButtonData("Cancel", "tax_cancel"),
	))
	b.sendWithInline(chatID, fmt.Sprintf("Set the tax rate to %.2f%%?", percent), kb)
}

// handleStaffText consumes text while a staff flow expects it.
func (b *Bot) handleStaffText(ctx context.Context, chatID int64, text string) bool {
	st := b.staffFlow(chatID)
	if st == nil {
		return false
	}

	switch st.Step {
	case "orders_date":
		day, err := services.ParseDay(text)
		if err != nil {
			b.send(chatID, "Please send a date as YYYY-MM-DD, e.g. 2025-03-14.")
			return true
		}
		b.setStaffFlow(chatID, nil)
		b.showStaffOrders(ctx, chatID, &day)
	case "item_name", "item_desc", "item_price", "item_ingredients":
		b.handleItemText(ctx, chatID, st, text)
	case "inv_amount", "inv_new_name", "inv_new_qty":
		b.handleInventoryText(ctx, chatID, st, text)
	case "tax_percent":
		b.handleTaxText(ctx, chatID, st, text)
	case "tax_confirm":
		b.send(chatID, "Use the Confirm or Cancel button above.")
	default:
		return false
	}
	return true
}
