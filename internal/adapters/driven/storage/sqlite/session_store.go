package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
)

// sessionStore implements driven.SessionStore. At most one session row
// exists; Save replaces the table contents.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores the session, replacing the current one if present.
func (s *sessionStore) Save(ctx context.Context, session domain.Session) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("marshalling user: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("clearing previous session: %w", err)
	}

	var expiry any
	if !session.Expiry.IsZero() {
		expiry = session.Expiry.UTC()
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, user_json, access_token, refresh_token, expiry, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		string(userJSON),
		session.AccessToken,
		session.RefreshToken,
		expiry,
		session.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}

	return tx.Commit()
}

// Current returns the stored session.
func (s *sessionStore) Current(ctx context.Context) (*domain.Session, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, user_json, access_token, refresh_token, expiry, created_at
		FROM sessions LIMIT 1`)

	var (
		session      domain.Session
		userJSON     string
		refreshToken sql.NullString
		expiry       sql.NullTime
		createdAt    time.Time
	)
	err := row.Scan(&session.ID, &userJSON, &session.AccessToken, &refreshToken, &expiry, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotAuthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	if err := json.Unmarshal([]byte(userJSON), &session.User); err != nil {
		return nil, fmt.Errorf("unmarshalling user: %w", err)
	}
	if refreshToken.Valid {
		session.RefreshToken = refreshToken.String
	}
	if expiry.Valid {
		session.Expiry = expiry.Time
	}
	session.CreatedAt = createdAt

	return &session, nil
}

// Delete removes the stored session.
func (s *sessionStore) Delete(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM sessions"); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
