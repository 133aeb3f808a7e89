package session

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophdrive/internal/dbx"
)

// credentialKey is the single row key under which the token is persisted.
const credentialKey = "credential"

// SQLiteStore persists the credential in a local SQLite database so it
// survives restarts. The current value is cached in memory: Get and
// IsAuthenticated are pure reads, Set and Clear write through to the DB.
type SQLiteStore struct {
	mu      sync.RWMutex
	db      dbx.DBTX
	token   string
	present bool
}

// NewSQLiteStore wraps an already-migrated database handle and loads the
// persisted credential, if any.
func NewSQLiteStore(ctx context.Context, db dbx.DBTX) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db}

	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, credentialKey).Scan(&value)
	switch {
	case err == sql.ErrNoRows:
		// fresh store, nothing persisted yet
	case err != nil:
		return nil, fmt.Errorf("failed to load session: %w", err)
	default:
		s.token = value
		s.present = true
	}

	return s, nil
}

func (s *SQLiteStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.present
}

func (s *SQLiteStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(context.Background(), `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, credentialKey, token)
	if err != nil {
		return fmt.Errorf("failed to persist credential: %w", err)
	}

	s.token = token
	s.present = true
	return nil
}

func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(context.Background(), `DELETE FROM session WHERE key = ?`, credentialKey)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}

	s.token = ""
	s.present = false
	return nil
}

func (s *SQLiteStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present
}
