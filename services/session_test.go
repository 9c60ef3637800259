package services

import (
	"testing"

	"wolfcafe-telegram/models"
)

func TestNewSession(t *testing.T) {
	s := NewSession(&models.AuthResponse{
		AccessToken: "tok",
		TokenType:   "Bearer",
		Role:        "ROLE_STAFF",
		ID:          5,
		Username:    "ada",
	})
	if s.UserID != 5 || s.Username != "ada" || s.Token != "tok" {
		t.Errorf("session = %+v", s)
	}
	if s.Role != models.RoleStaff {
		t.Errorf("role = %v, want staff", s.Role)
	}
}

func TestViewerRole(t *testing.T) {
	if got := ViewerRole(nil); got != models.RoleGuest {
		t.Errorf("ViewerRole(nil) = %v, want guest", got)
	}
	if got := ViewerRole(&Session{Role: models.RoleAdmin}); got != models.RoleAdmin {
		t.Errorf("ViewerRole(admin) = %v", got)
	}
}
