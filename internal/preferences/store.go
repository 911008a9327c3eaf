// Package preferences persists per-visitor key/value preferences in SQLite.
package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angeloflores/folio/internal/db"
	"github.com/angeloflores/folio/internal/theme"
)

// ErrInvalidVisitor is returned for an empty or malformed visitor id.
var ErrInvalidVisitor = errors.New("invalid visitor id")

// Store provides CRUD operations for visitor preferences.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// NewVisitorID returns a fresh visitor id.
func NewVisitorID() string {
	return uuid.New().String()
}

// ValidVisitorID reports whether id is a well-formed visitor id.
func ValidVisitorID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && strings.TrimSpace(id) != ""
}

// Touch records that the visitor was seen, creating the row if needed.
func (s *Store) Touch(ctx context.Context, visitorID string) error {
	if !ValidVisitorID(visitorID) {
		return ErrInvalidVisitor
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (id) VALUES (?)
		ON CONFLICT(id) DO UPDATE SET last_seen = datetime('now')`, visitorID)
	if err != nil {
		return fmt.Errorf("touching visitor: %w", err)
	}
	return nil
}

// Get returns the value stored for key and whether one exists.
func (s *Store) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	if !ValidVisitorID(visitorID) {
		return "", false, ErrInvalidVisitor
	}
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE visitor_id = ? AND key = ?`,
		visitorID, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, visitorID, key, value string) error {
	if !ValidVisitorID(visitorID) {
		return ErrInvalidVisitor
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(visitor_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		visitorID, key, value,
	)
	if err != nil {
		return fmt.Errorf("upserting preference %s: %w", key, err)
	}
	return nil
}

// Delete removes key for the visitor. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, visitorID, key string) error {
	if !ValidVisitorID(visitorID) {
		return ErrInvalidVisitor
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE visitor_id = ? AND key = ?`, visitorID, key,
	); err != nil {
		return fmt.Errorf("deleting preference %s: %w", key, err)
	}
	return nil
}

// Count returns the number of stored values for key across all visitors.
func (s *Store) Count(ctx context.Context, key, value string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM preferences WHERE key = ? AND value = ?`, key, value,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting preference %s: %w", key, err)
	}
	return n, nil
}

// Storage binds the store to one visitor so it can back a theme.Controller.
func (s *Store) Storage(ctx context.Context, visitorID string) theme.Storage {
	return &visitorStorage{ctx: ctx, store: s, visitorID: visitorID}
}

type visitorStorage struct {
	ctx       context.Context
	store     *Store
	visitorID string
}

func (v *visitorStorage) Get(key string) (string, bool, error) {
	return v.store.Get(v.ctx, v.visitorID, key)
}

func (v *visitorStorage) Set(key, value string) error {
	return v.store.Set(v.ctx, v.visitorID, key, value)
}

func (v *visitorStorage) Delete(key string) error {
	return v.store.Delete(v.ctx, v.visitorID, key)
}
