package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"wolfcafe-telegram/db"

	"github.com/jackc/pgx/v5"
)

// Per-chat cart persistence. The cart is the only client-local state
// besides the session; keeping it in the store means an in-progress
// order survives a bot restart.

func LoadCart(ctx context.Context, chatID int64) (*Cart, error) {
	var linesJSON []byte
	err := db.Pool.QueryRow(ctx, `
		SELECT items FROM carts WHERE chat_id = $1`,
		chatID,
	).Scan(&linesJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		// No row: a fresh, empty cart.
		return &Cart{Lines: []CartLine{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var lines []CartLine
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &lines); err != nil {
			return nil, fmt.Errorf("unmarshal cart lines: %w", err)
		}
	}
	return &Cart{Lines: lines}, nil
}

func SaveCart(ctx context.Context, chatID int64, cart *Cart) error {
	linesJSON, err := json.Marshal(cart.Lines)
	if err != nil {
		return fmt.Errorf("marshal cart lines: %w", err)
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO carts (chat_id, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE SET
			items = $2,
			updated_at = now()`,
		chatID, linesJSON,
	)
	return err
}

func DeleteCart(ctx context.Context, chatID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM carts WHERE chat_id = $1`, chatID)
	return err
}
