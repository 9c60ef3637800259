package services

import (
	"wolfcafe-telegram/api"
	"wolfcafe-telegram/models"
)

// Session is the authenticated viewer for one chat: who they are, what
// the backend says they may do, and the bearer token proving it. A nil
// *Session means the chat is a guest. Created at login, destroyed at
// logout; there is no other way in or out.
type Session struct {
	UserID   int64       `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	Token    string      `json:"token"`
}

// NewSession builds a session from a successful login response.
func NewSession(auth *models.AuthResponse) *Session {
	return &Session{
		UserID:   auth.ID,
		Username: auth.Username,
		Role:     models.ParseRole(auth.Role),
		Token:    auth.AccessToken,
	}
}

// Expired reports whether the session's token is past its exp claim.
// Expired sessions are dropped and the user is sent back to login.
func (s *Session) Expired() bool {
	return api.TokenExpired(s.Token)
}

// ViewerRole is the role to branch UI on: guest when there is no
// session.
func ViewerRole(s *Session) models.Role {
	if s == nil {
		return models.RoleGuest
	}
	return s.Role
}
