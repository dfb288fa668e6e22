package data

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/domain"
	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// Preference keys.
const (
	prefKeyActiveChannel = "active_channel"
	prefKeyViewport      = "last_viewport"
)

// prefsRepo implements the preferences repository over SQLite
type prefsRepo struct {
	db *sql.DB
}

// NewPrefsRepo creates a new preferences repository
func NewPrefsRepo(dbPath string) (repo.PrefsRepo, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &prefsRepo{db: db}, nil
}

// ActiveChannel returns the persisted active channel id
func (r *prefsRepo) ActiveChannel(ctx context.Context) (string, error) {
	value, err := r.get(ctx, prefKeyActiveChannel)
	if err != nil {
		return "", err
	}
	return value, nil
}

// SaveActiveChannel persists the active channel id
func (r *prefsRepo) SaveActiveChannel(ctx context.Context, channelID string) error {
	return r.set(ctx, prefKeyActiveChannel, channelID)
}

// Viewport returns the persisted last synced viewport
func (r *prefsRepo) Viewport(ctx context.Context) (*domain.Bounds, error) {
	value, err := r.get(ctx, prefKeyViewport)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}

	var bounds domain.Bounds
	if err := json.Unmarshal([]byte(value), &bounds); err != nil {
		return nil, fmt.Errorf("failed to decode viewport: %w", err)
	}
	return &bounds, nil
}

// SaveViewport persists the last synced viewport
func (r *prefsRepo) SaveViewport(ctx context.Context, bounds domain.Bounds) error {
	encoded, err := json.Marshal(bounds)
	if err != nil {
		return fmt.Errorf("failed to encode viewport: %w", err)
	}
	return r.set(ctx, prefKeyViewport, string(encoded))
}

func (r *prefsRepo) get(ctx context.Context, key string) (string, error) {
	row := r.db.QueryRowContext(ctx, `SELECT value FROM prefs WHERE key = ?`, key)

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query pref %s: %w", key, err)
	}
	return value, nil
}

func (r *prefsRepo) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO prefs (key, value) VALUES (?, ?)
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save pref %s: %w", key, err)
	}
	return nil
}

// Close closes the database connection
func (r *prefsRepo) Close() error {
	return r.db.Close()
}
