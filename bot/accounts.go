package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// accountFlowState drives the admin edit-account conversation.
type accountFlowState struct {
	Step   string
	UserID int64
	Input  models.EditUserInput
}

func (b *Bot) acctFlow(chatID int64) *accountFlowState {
	b.stateMu.RLock()
	st := b.acctState[chatID]
	b.stateMu.RUnlock()
	return st
}

func (b *Bot) setAcctFlow(chatID int64, st *accountFlowState) {
	b.stateMu.Lock()
	if st == nil {
		delete(b.acctState, chatID)
	} else {
		b.acctState[chatID] = st
	}
	b.stateMu.Unlock()
}

func (b *Bot) showAccounts(ctx context.Context, chatID int64) {
	sess := b.session(ctx, chatID)
	if services.ViewerRole(sess) != models.RoleAdmin {
		return
	}
	client := b.client(sess)
	users, err := client.GetAllUsers(ctx)
	if err != nil {
		b.reportError(ctx, chatID, "load accounts", err)
		return
	}

	// Staff lookup is cosmetic; a failed fetch just drops the tag.
	staffIDs := map[int64]bool{}
	if staff, err := client.GetAllStaff(ctx); err == nil {
		for _, s := range staff {
			staffIDs[s.ID] = true
		}
	}

	st := b.style(chatID)
	var sb strings.Builder
	sb.WriteString("👥 Accounts\n")
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, u := range users {
		tag := ""
		if staffIDs[u.ID] {
			tag = " [staff]"
		}
		sb.WriteString(fmt.Sprintf("%s %s (@%s) %s%s\n", st.Bullet, u.Name, u.Username, u.Email, tag))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+u.Username, fmt.Sprintf("acct_edit:%d", u.ID)),
			tgbotapi.NewInlineKeyboardButtonData("🗑", fmt.Sprintf("acct_del:%d", u.ID)),
		))
	}
	if len(users) == 0 {
		sb.WriteString("No accounts.\n")
	}
	b.sendWithInline(chatID, sb.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (b *Bot) handleAccountCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	chatID := cq.Message.Chat.ID
	sess := b.session(ctx, chatID)
	if services.ViewerRole(sess) != models.RoleAdmin {
		b.answerCallback(cq, "Admin only.", true)
		return
	}
	client := b.client(sess)
	data := cq.Data

	switch {
	case strings.HasPrefix(data, "acct_edit:"):
		id, err := strconv.ParseInt(data[len("acct_edit:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		u, err := client.GetUserByID(ctx, id)
		if err != nil {
			b.answerCallback(cq, "Couldn't load that account.", true)
			return
		}
		b.setAcctFlow(chatID, &accountFlowState{
			Step:   "acct_name",
			UserID: u.ID,
			Input:  models.EditUserInput{Name: u.Name, Username: u.Username, Email: u.Email},
		})
		b.answerCallback(cq, "", false)
		b.send(chatID, fmt.Sprintf("New name (current: %s), or - to keep:", u.Name))

	case strings.HasPrefix(data, "acct_del:"):
		id, err := strconv.ParseInt(data[len("acct_del:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		u, err := client.GetUserByID(ctx, id)
		if err != nil {
			b.answerCallback(cq, "Couldn't load that account.", true)
			return
		}
		b.answerCallback(cq, "", false)
		kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, delete", fmt.Sprintf("acct_delyes:%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("Keep it", "acct_delno"),
		))
		b.sendWithInline(chatID, fmt.Sprintf("Delete the account of %s (@%s)?", u.Name, u.Username), kb)

	case strings.HasPrefix(data, "acct_delyes:"):
		id, err := strconv.ParseInt(data[len("acct_delyes:"):], 10, 64)
		if err != nil {
			b.answerCallback(cq, "", false)
			return
		}
		if err := client.DeleteUser(ctx, id); err != nil {
			b.answerCallback(cq, "", false)
			b.reportError(ctx, chatID, "delete account", err)
			return
		}
		b.answerCallback(cq, "Account deleted", false)
		b.showAccounts(ctx, chatID)

	case data == "acct_delno":
		b.answerCallback(cq, "", false)

	default:
		b.answerCallback(cq, "", false)
	}
}

// handleAccountText consumes text while an account edit expects it.
func (b *Bot) handleAccountText(ctx context.Context, chatID int64, text string) bool {
	st := b.acctFlow(chatID)
	if st == nil {
		return false
	}

	switch st.Step {
	case "acct_name":
		if text != "-" {
			st.Input.Name = text
		}
		st.Step = "acct_username"
		b.send(chatID, fmt.Sprintf("New username (current: %s), or - to keep:", st.Input.Username))
	case "acct_username":
		if text != "-" {
			st.Input.Username = text
		}
		st.Step = "acct_email"
		b.send(chatID, fmt.Sprintf("New email (current: %s), or - to keep:", st.Input.Email))
	case "acct_email":
		if text != "-" {
			st.Input.Email = text
		}
		b.saveAccount(ctx, chatID, st)
	default:
		return false
	}
	return true
}

func (b *Bot) saveAccount(ctx context.Context, chatID int64, st *accountFlowState) {
	b.setAcctFlow(chatID, nil)
	if err := models.CheckInput(st.Input); err != nil {
		b.send(chatID, "Those details don't look right: name, username and a valid email are required.")
		return
	}
	client := b.client(b.session(ctx, chatID))
	if err := client.UpdateUser(ctx, st.UserID, st.Input); err != nil {
		b.reportError(ctx, chatID, "update account", err)
		return
	}
	b.send(chatID, "Account updated.")
	b.showAccounts(ctx, chatID)
}
