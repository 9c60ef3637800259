package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	"wolfcafe-telegram/api"
	"wolfcafe-telegram/models"
	"wolfcafe-telegram/services"

	"github.com/go-playground/validator/v10"
)

// authFlowState collects login or registration fields one message at a
// time. Staff marks an admin registering a staff account.
type authFlowState struct {
	Step      string
	LoginUser string
	Input     models.RegisterInput
	Staff     bool
}

func (b *Bot) authFlow(chatID int64) *authFlowState {
	b.stateMu.RLock()
	st := b.authState[chatID]
	b.stateMu.RUnlock()
	return st
}

func (b *Bot) setAuthFlow(chatID int64, st *authFlowState) {
	b.stateMu.Lock()
	if st == nil {
		delete(b.authState, chatID)
	} else {
		b.authState[chatID] = st
	}
	b.stateMu.Unlock()
}

func (b *Bot) startLogin(ctx context.Context, chatID int64) {
	if wait, _ := services.LoginThrottleWaitSeconds(ctx, chatID); wait > 0 {
		b.send(chatID, fmt.Sprintf("Too many attempts. Try again in %d seconds.", wait))
		return
	}
	b.setAuthFlow(chatID, &authFlowState{Step: "login_user"})
	b.send(chatID, "Username or email:")
}

func (b *Bot) startRegister(ctx context.Context, chatID int64, staff bool) {
	b.setAuthFlow(chatID, &authFlowState{Step: "reg_name", Staff: staff})
	if staff {
		b.send(chatID, "Registering a staff account.\nFull name:")
	} else {
		b.send(chatID, "Let's create your account.\nFull name:")
	}
}

func (b *Bot) logout(ctx context.Context, chatID int64) {
	if err := services.DeleteSession(ctx, chatID); err != nil {
		log.Printf("delete session: %v", err)
	}
	b.clearFlows(chatID)
	b.sendMainMenu(ctx, chatID, "Logged out. See you soon!")
}

// handleAuthText consumes text while a login/registration flow expects
// it. Returns false when the message was not for this flow.
func (b *Bot) handleAuthText(ctx context.Context, chatID int64, text string) bool {
	st := b.authFlow(chatID)
	if st == nil {
		return false
	}

	switch st.Step {
	case "login_user":
		st.LoginUser = text
		st.Step = "login_pass"
		b.send(chatID, "Password:")
	case "login_pass":
		b.attemptLogin(ctx, chatID, st.LoginUser, text)
	case "reg_name":
		st.Input.Name = text
		st.Step = "reg_username"
		b.send(chatID, "Username:")
	case "reg_username":
		st.Input.Username = text
		st.Step = "reg_email"
		b.send(chatID, "Email:")
	case "reg_email":
		st.Input.Email = text
		st.Step = "reg_password"
		b.send(chatID, "Password (at least 8 characters):")
	case "reg_password":
		st.Input.Password = text
		st.Step = "reg_confirm"
		b.send(chatID, "Confirm password:")
	case "reg_confirm":
		st.Input.ConfirmPassword = text
		b.finishRegister(ctx, chatID, st)
	default:
		return false
	}
	return true
}

func (b *Bot) attemptLogin(ctx context.Context, chatID int64, user, password string) {
	if wait, _ := services.LoginThrottleWaitSeconds(ctx, chatID); wait > 0 {
		b.setAuthFlow(chatID, nil)
		b.send(chatID, fmt.Sprintf("Too many attempts. Try again in %d seconds.", wait))
		return
	}

	auth, err := b.backend.Login(ctx, user, password)
	if err != nil {
		b.setAuthFlow(chatID, nil)
		if errors.Is(err, api.ErrUnauthorized) {
			_ = services.RecordLoginFailed(ctx, chatID)
			b.send(chatID, "Invalid username or password.")
			return
		}
		var se *api.StatusError
		if errors.As(err, &se) {
			_ = services.RecordLoginFailed(ctx, chatID)
			b.send(chatID, "Invalid username or password.")
			return
		}
		b.reportError(ctx, chatID, "log in", err)
		return
	}

	_ = services.RecordLoginSuccess(ctx, chatID)
	sess := services.NewSession(auth)
	if err := services.SaveSession(ctx, chatID, sess); err != nil {
		b.reportError(ctx, chatID, "save session", err)
		return
	}
	b.setAuthFlow(chatID, nil)
	b.sendMainMenu(ctx, chatID, fmt.Sprintf("Welcome back, %s! (%s)", sess.Username, sess.Role))
}

func (b *Bot) finishRegister(ctx context.Context, chatID int64, st *authFlowState) {
	if err := models.CheckInput(st.Input); err != nil {
		b.setAuthFlow(chatID, nil)
		b.send(chatID, registrationErrorMessage(err)+"\nUse "+btnRegister+" to start over.")
		return
	}

	var err error
	if st.Staff {
		sess := b.session(ctx, chatID)
		if services.ViewerRole(sess) != models.RoleAdmin {
			b.setAuthFlow(chatID, nil)
			b.send(chatID, "Only an admin can register staff.")
			return
		}
		err = b.client(sess).RegisterStaff(ctx, st.Input)
	} else {
		err = b.backend.Register(ctx, st.Input)
	}
	b.setAuthFlow(chatID, nil)
	if err != nil {
		b.reportError(ctx, chatID, "register", err)
		return
	}
	if st.Staff {
		b.send(chatID, "Staff account created.")
	} else {
		b.send(chatID, "Account created! Use "+btnLogin+" to log in.")
	}
}

// registrationErrorMessage names the first failing form field in plain
// words.
func registrationErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "That registration doesn't look right."
	}
	switch verrs[0].Field() {
	case "Name":
		return "Name must be at least 2 characters."
	case "Username":
		return "Username must be at least 3 characters."
	case "Email":
		return "That email address doesn't look valid."
	case "Password":
		return "Password must be at least 8 characters."
	case "ConfirmPassword":
		return "Passwords don't match."
	default:
		return "That registration doesn't look right."
	}
}
