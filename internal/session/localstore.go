package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/chandra447/item-tracker/internal/models"
)

// schema sets up the session mirror table. It runs on startup so the
// table always exists.
const schema = `
CREATE TABLE IF NOT EXISTS auth_sessions (
    user_id TEXT PRIMARY KEY,
    token TEXT NOT NULL,
    record TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// LocalStore is the persistent fallback copy of session payloads, keyed by
// user ID. It mirrors the cookie; it is never the source of truth for a
// request but survives cookie loss and backs diagnostics.
type LocalStore struct {
	db *sql.DB
}

// NewLocalStore opens (or creates) the SQLite file at dbPath, creating
// parent directories and running migrations.
func NewLocalStore(dbPath string) (*LocalStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run session store migrations: %w", err)
	}

	return &LocalStore{db: db}, nil
}

// Close closes the database connection.
func (s *LocalStore) Close() error {
	return s.db.Close()
}

// Save upserts the payload for its user.
func (s *LocalStore) Save(ctx context.Context, auth Auth) error {
	record, err := json.Marshal(auth.User)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO auth_sessions (user_id, token, record, updated_at) VALUES (?, ?, ?, ?)",
		auth.User.ID, auth.Token, string(record), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load retrieves the payload for a user. A missing or unreadable row
// yields (Auth{}, false); corrupt stored state is discarded silently.
func (s *LocalStore) Load(ctx context.Context, userID string) (Auth, bool) {
	var auth Auth
	var record string
	err := s.db.QueryRowContext(ctx,
		"SELECT token, record FROM auth_sessions WHERE user_id = ?",
		userID,
	).Scan(&auth.Token, &record)
	if err != nil {
		return Auth{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(record), &user); err != nil {
		_ = s.Delete(ctx, userID)
		return Auth{}, false
	}
	auth.User = user
	return auth, true
}

// Delete removes the payload for a user.
func (s *LocalStore) Delete(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM auth_sessions WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
