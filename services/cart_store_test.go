package services

import (
	"context"
	"testing"

	"wolfcafe-telegram/db"
	"wolfcafe-telegram/models"
)

// Integration tests for the per-chat stores (require DB). Skip if
// db.Pool is nil or -short.
func TestCartStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping cart store integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping cart store integration test: no DB pool")
	}
	ctx := context.Background()
	chatID := int64(-9001) // test chat, cleaned up below
	defer func() { _ = DeleteCart(ctx, chatID) }()

	// A chat with no row gets a fresh empty cart, not an error.
	cart, err := LoadCart(ctx, chatID)
	if err != nil {
		t.Fatalf("LoadCart (no row): %v", err)
	}
	if !cart.Empty() {
		t.Fatalf("fresh cart not empty: %+v", cart.Lines)
	}

	_ = cart.AddLine(models.MenuItem{ID: 1, Name: "Latte", Price: 450}, 2)
	if err := SaveCart(ctx, chatID, cart); err != nil {
		t.Fatalf("SaveCart: %v", err)
	}

	loaded, err := LoadCart(ctx, chatID)
	if err != nil {
		t.Fatalf("LoadCart: %v", err)
	}
	if len(loaded.Lines) != 1 || loaded.Lines[0].Name != "Latte" || loaded.Lines[0].Quantity != 2 {
		t.Errorf("round trip = %+v", loaded.Lines)
	}

	if err := DeleteCart(ctx, chatID); err != nil {
		t.Fatalf("DeleteCart: %v", err)
	}
	gone, err := LoadCart(ctx, chatID)
	if err != nil {
		t.Fatalf("LoadCart after delete: %v", err)
	}
	if !gone.Empty() {
		t.Errorf("cart survived delete: %+v", gone.Lines)
	}
}

func TestSessionStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping session store integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping session store integration test: no DB pool")
	}
	ctx := context.Background()
	chatID := int64(-9002)
	defer func() { _ = DeleteSession(ctx, chatID) }()

	// No row means guest, not an error.
	sess, err := LoadSession(ctx, chatID)
	if err != nil {
		t.Fatalf("LoadSession (no row): %v", err)
	}
	if sess != nil {
		t.Fatalf("expected guest, got %+v", sess)
	}

	saved := &Session{UserID: 5, Username: "ada", Role: models.RoleStaff, Token: "tok"}
	if err := SaveSession(ctx, chatID, saved); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	loaded, err := LoadSession(ctx, chatID)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if loaded == nil || loaded.UserID != 5 || loaded.Role != models.RoleStaff || loaded.Token != "tok" {
		t.Errorf("round trip = %+v", loaded)
	}

	if err := DeleteSession(ctx, chatID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	gone, err := LoadSession(ctx, chatID)
	if err != nil {
		t.Fatalf("LoadSession after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("session survived delete: %+v", gone)
	}
}
