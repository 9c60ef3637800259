package bot

import (
	"context"

	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Main menu button labels. Text buttons rather than commands, the way
// casual Telegram users expect.
const (
	btnNewOrder      = "🛒 New Order"
	btnMyOrders      = "📋 My Orders"
	btnStaffOrders   = "🧾 Today's Orders"
	btnItems         = "🍽 Menu Items"
	btnInventory     = "📦 Inventory"
	btnTaxRate       = "💲 Tax Rate"
	btnAccounts      = "👥 Accounts"
	btnRegisterStaff = "➕ Register Staff"
	btnLogin         = "🔑 Log In"
	btnRegister      = "📝 Register"
	btnLogout        = "🚪 Log Out"
	btnTheme         = "🎨 Theme"
)

// sendMainMenu shows the keyboard for the chat's role. Guests and
// customers share the ordering surface; staff add management screens;
// admins add account screens. Hidden buttons are advisory only; the
// backend enforces every role for real.
func (b *Bot) sendMainMenu(ctx context.Context, chatID int64, text string) {
	sess := b.session(ctx, chatID)

	var rows [][]tgbotapi.KeyboardButton
	switch services.ViewerRole(sess) {
	case models.RoleGuest:
		rows = [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnNewOrder), tgbotapi.NewKeyboardButton(btnMyOrders)},
			{tgbotapi.NewKeyboardButton(btnLogin), tgbotapi.NewKeyboardButton(btnRegister)},
			{tgbotapi.NewKeyboardButton(btnTheme)},
		}
	case models.RoleCustomer:
		rows = [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnNewOrder), tgbotapi.NewKeyboardButton(btnMyOrders)},
			{tgbotapi.NewKeyboardButton(btnTheme), tgbotapi.NewKeyboardButton(btnLogout)},
		}
	case models.RoleStaff:
		rows = [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnNewOrder), tgbotapi.NewKeyboardButton(btnStaffOrders)},
			{tgbotapi.NewKeyboardButton(btnItems), tgbotapi.NewKeyboardButton(btnInventory)},
			{tgbotapi.NewKeyboardButton(btnTaxRate), tgbotapi.NewKeyboardButton(btnTheme)},
			{tgbotapi.NewKeyboardButton(btnLogout)},
		}
	case models.RoleAdmin:
		rows = [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnNewOrder), tgbotapi.NewKeyboardButton(btnStaffOrders)},
			{tgbotapi.NewKeyboardButton(btnItems), tgbotapi.NewKeyboardButton(btnInventory)},
			{tgbotapi.NewKeyboardButton(btnTaxRate), tgbotapi.NewKeyboardButton(btnAccounts)},
			{tgbotapi.NewKeyboardButton(btnRegisterStaff), tgbotapi.NewKeyboardButton(btnTheme)},
			{tgbotapi.NewKeyboardButton(btnLogout)},
		}
	}

	kb := tgbotapi.NewReplyKeyboard(rows...)
	kb.ResizeKeyboard = true
	b.sendWithReplyKeyboard(chatID, text, kb)
}

func (b *Bot) showThemePicker(chatID int64) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, t := range services.Themes {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(string(t), "theme:"+string(t)),
		))
	}
	b.sendWithInline(chatID, "Pick a theme:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleThemeCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	theme := services.Theme(cq.Data[len("theme:"):])

	b.stateMu.Lock()
	b.chatTheme[chatID] = theme
	b.stateMu.Unlock()

	b.answerCallback(cq, "Theme set: "+string(theme), false)
}
