package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/brainbox-app/brainbox/internal/model"
)

const (
	keyCredential = "credential"
	keyProfile    = "profile"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Migrate brings the underlying schema up to date.
func (s *SQLiteStore) Migrate() error {
	return MigrateUp(s.db)
}

func (s *SQLiteStore) SaveCredential(ctx context.Context, credential string) error {
	return s.put(ctx, keyCredential, credential)
}

func (s *SQLiteStore) LoadCredential(ctx context.Context) (string, error) {
	return s.get(ctx, keyCredential)
}

func (s *SQLiteStore) DeleteCredential(ctx context.Context) error {
	return s.delete(ctx, keyCredential)
}

func (s *SQLiteStore) SaveProfile(ctx context.Context, profile model.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return s.put(ctx, keyProfile, string(raw))
}

func (s *SQLiteStore) LoadProfile(ctx context.Context) (model.Profile, error) {
	raw, err := s.get(ctx, keyProfile)
	if err != nil {
		return model.Profile{}, err
	}
	var profile model.Profile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return model.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

func (s *SQLiteStore) DeleteProfile(ctx context.Context) error {
	return s.delete(ctx, keyProfile)
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// delete is idempotent; removing an absent key is not an error.
func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	return err
}
