// Package bot renders the WolfCafe client as Telegram chat flows:
// ordering and payment for guests and customers, order management and
// catalog/inventory/tax administration for staff, account management
// for admins. Every business decision is the backend's; the bot only
// decides what to show.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"wolfcafe-telegram/api"
	"wolfcafe-telegram/config"
	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	cfg     *config.Config
	backend *api.Client // unauthenticated; WithToken per session

	orderState map[int64]*orderFlowState
	authState  map[int64]*authFlowState
	staffState map[int64]*staffFlowState
	acctState  map[int64]*accountFlowState
	chatTheme  map[int64]services.Theme
	stateMu    sync.RWMutex
}

func New(cfg *config.Config) (*Bot, error) {
	tg, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:        tg,
		cfg:        cfg,
		backend:    api.New(cfg.Backend.BaseURL, nil),
		orderState: make(map[int64]*orderFlowState),
		authState:  make(map[int64]*authFlowState),
		staffState: make(map[int64]*staffFlowState),
		acctState:  make(map[int64]*accountFlowState),
		chatTheme:  make(map[int64]services.Theme),
	}, nil
}

func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	// One update at a time: list renders always refetch, so there is
	// no stale-response window to sequence around.
	for update := range updates {
		ctx := context.Background()
		if update.CallbackQuery != nil {
			b.handleCallback(ctx, update.CallbackQuery)
			continue
		}
		if update.Message == nil {
			continue
		}
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if text == "/cancel" {
		b.clearFlows(chatID)
		b.sendMainMenu(ctx, chatID, "Canceled.")
		return
	}
	if text == "/start" {
		b.clearFlows(chatID)
		b.sendMainMenu(ctx, chatID, "Welcome to WolfCafe ☕")
		return
	}

	// Mid-flow text input takes priority over menu buttons.
	if b.handleAuthText(ctx, chatID, text) {
		return
	}
	if b.handleOrderText(ctx, chatID, text) {
		return
	}
	if b.handleStaffText(ctx, chatID, text) {
		return
	}
	if b.handleAccountText(ctx, chatID, text) {
		return
	}

	sess := b.session(ctx, chatID)
	role := services.ViewerRole(sess)

	switch text {
	case btnNewOrder:
		b.startOrder(ctx, chatID, nil)
	case btnMyOrders:
		b.showViewerOrders(ctx, chatID)
	case btnStaffOrders:
		if role.IsStaff() {
			b.showStaffOrders(ctx, chatID, nil)
		}
	case btnItems:
		if role.IsStaff() {
			b.showItems(ctx, chatID)
		}
	case btnInventory:
		if role.IsStaff() {
			b.showInventory(ctx, chatID)
		}
	case btnTaxRate:
		if role.IsStaff() {
			b.showTaxRate(ctx, chatID)
		}
	case btnAccounts:
		if role == models.RoleAdmin {
			b.showAccounts(ctx, chatID)
		}
	case btnRegisterStaff:
		if role == models.RoleAdmin {
			b.startRegister(ctx, chatID, true)
		}
	case btnLogin:
		b.startLogin(ctx, chatID)
	case btnRegister:
		b.startRegister(ctx, chatID, false)
	case btnLogout:
		b.logout(ctx, chatID)
	case btnTheme:
		b.showThemePicker(chatID)
	default:
		b.sendMainMenu(ctx, chatID, "Pick an option:")
	}
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "additem:"),
		strings.HasPrefix(data, "removeitem:"),
		strings.HasPrefix(data, "tip:"),
		data == "checkout", data == "discard", data == "editorder", data == "orderdone":
		b.handleOrderCallback(ctx, cq)
	case strings.HasPrefix(data, "order_status:"):
		b.handleStatusCallback(ctx, cq)
	case strings.HasPrefix(data, "staffdate:"):
		b.handleStaffDateCallback(ctx, cq)
	case strings.HasPrefix(data, "item_"):
		b.handleItemCallback(ctx, cq)
	case strings.HasPrefix(data, "inv_"), strings.HasPrefix(data, "tax_"):
		b.handleInventoryCallback(ctx, cq)
	case strings.HasPrefix(data, "acct_"):
		b.handleAccountCallback(ctx, cq)
	case strings.HasPrefix(data, "theme:"):
		b.handleThemeCallback(ctx, cq)
	default:
		b.answerCallback(cq, "", false)
	}
}

// session loads the chat's session, dropping it (with a message) when
// the token is past its expiry.
func (b *Bot) session(ctx context.Context, chatID int64) *services.Session {
	sess, err := services.LoadSession(ctx, chatID)
	if err != nil {
		log.Printf("load session: %v", err)
		return nil
	}
	if sess == nil {
		return nil
	}
	if sess.Expired() {
		_ = services.DeleteSession(ctx, chatID)
		b.send(chatID, "Your session expired. Please log in again.")
		return nil
	}
	return sess
}

// client returns a backend client bound to the session's token, or the
// guest client for nil sessions.
func (b *Bot) client(sess *services.Session) *api.Client {
	if sess == nil {
		return b.backend
	}
	return b.backend.WithToken(sess.Token)
}

func (b *Bot) style(chatID int64) services.StyleTokens {
	b.stateMu.RLock()
	t := b.chatTheme[chatID]
	b.stateMu.RUnlock()
	return services.StyleFor(t)
}

func (b *Bot) clearFlows(chatID int64) {
	b.stateMu.Lock()
	delete(b.orderState, chatID)
	delete(b.authState, chatID)
	delete(b.staffState, chatID)
	delete(b.acctState, chatID)
	b.stateMu.Unlock()
}

// reportError turns a backend error into a user-visible message. The
// prior screen state is untouched; nothing is retried.
func (b *Bot) reportError(ctx context.Context, chatID int64, action string, err error) {
	log.Printf("%s: %v", action, err)
	if errors.Is(err, api.ErrUnauthorized) {
		_ = services.DeleteSession(ctx, chatID)
		b.send(chatID, "You are not allowed to do that. Please log in with an account that is.")
		return
	}
	b.send(chatID, fmt.Sprintf("Sorry, that didn't work (%s). Please try again.", action))
}

// --- send helpers ---

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send: %v", err)
	}
}

func (b *Bot) sendWithInline(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send: %v", err)
	}
}

func (b *Bot) sendWithReplyKeyboard(chatID int64, text string, kb tgbotapi.ReplyKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send: %v", err)
	}
}

// answerCallback must be called on every callback path or the button
// spinner hangs.
func (b *Bot) answerCallback(cq *tgbotapi.CallbackQuery, text string, showAlert bool) {
	cb := tgbotapi.NewCallback(cq.ID, text)
	cb.ShowAlert = showAlert
	if _, err := b.api.Request(cb); err != nil {
		log.Printf("answerCallback: %v", err)
	}
}

// editCard replaces a card message's text and keyboard in place.
func (b *Bot) editCard(chatID int64, messageID int, content services.OrderCardContent) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, content.Text)
	if kb := cardMarkup(content); kb != nil {
		edit.ReplyMarkup = kb
	} else {
		empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
		edit.ReplyMarkup = &empty
	}
	if _, err := b.api.Send(edit); err != nil && !strings.Contains(err.Error(), "not modified") {
		log.Printf("editCard: %v", err)
	}
}

func cardMarkup(c services.OrderCardContent) *tgbotapi.InlineKeyboardMarkup {
	if len(c.Buttons) == 0 {
		return nil
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range c.Buttons {
		var btns []tgbotapi.InlineKeyboardButton
		for _, btn := range row {
			btns = append(btns, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.CallbackData))
		}
		rows = append(rows, btns)
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}
