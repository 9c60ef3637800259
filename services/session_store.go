package services

import (
	"context"
	"errors"
	"fmt"

	"wolfcafe-telegram/db"
	"wolfcafe-telegram/models"

	"github.com/jackc/pgx/v5"
)

// Per-chat session persistence: the bot's stand-in for the browser's
// local storage, with an explicit lifecycle instead of ambient reads.

// LoadSession returns the chat's session, or nil when the chat is a
// guest.
func LoadSession(ctx context.Context, chatID int64) (*Session, error) {
	var (
		userID   int64
		username string
		role     string
		token    string
	)
	err := db.Pool.QueryRow(ctx, `
		SELECT user_id, username, role, token FROM sessions WHERE chat_id = $1`,
		chatID,
	).Scan(&userID, &username, &role, &token)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // no row = guest
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &Session{
		UserID:   userID,
		Username: username,
		Role:     models.ParseRole(role),
		Token:    token,
	}, nil
}

func SaveSession(ctx context.Context, chatID int64, s *Session) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO sessions (chat_id, user_id, username, role, token, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (chat_id) DO UPDATE SET
			user_id = $2,
			username = $3,
			role = $4,
			token = $5,
			updated_at = now()`,
		chatID, s.UserID, s.Username, s.Role.Wire(), s.Token,
	)
	return err
}

// DeleteSession is logout: the chat goes back to guest.
func DeleteSession(ctx context.Context, chatID int64) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM sessions WHERE chat_id = $1`, chatID)
	return err
}
