package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/brainbox-app/brainbox/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "state.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := MigrateUp(store.db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
	return store
}

func TestCredentialRoundTrip(t *testing.T) {
	store := setupStore(t)

	if _, err := store.LoadCredential(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got: %v", err)
	}

	if err := store.SaveCredential(t.Context(), "token-1"); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	got, err := store.LoadCredential(t.Context())
	if err != nil {
		t.Fatalf("load credential: %v", err)
	}
	if got != "token-1" {
		t.Fatalf("unexpected credential: %q", got)
	}

	// Saving again overwrites in place.
	if err := store.SaveCredential(t.Context(), "token-2"); err != nil {
		t.Fatalf("save credential twice: %v", err)
	}
	got, err = store.LoadCredential(t.Context())
	if err != nil {
		t.Fatalf("load credential after overwrite: %v", err)
	}
	if got != "token-2" {
		t.Fatalf("unexpected credential after overwrite: %q", got)
	}

	if err := store.DeleteCredential(t.Context()); err != nil {
		t.Fatalf("delete credential: %v", err)
	}
	if _, err := store.LoadCredential(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}

	// Deleting an absent key is not an error.
	if err := store.DeleteCredential(t.Context()); err != nil {
		t.Fatalf("delete absent credential: %v", err)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := setupStore(t)

	profile := model.Profile{
		ID:    "u1",
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Phone: "555-0100",
	}
	if err := store.SaveProfile(t.Context(), profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	got, err := store.LoadProfile(t.Context())
	if err != nil {
		t.Fatalf("load profile: %v", err)
	}
	if got != profile {
		t.Fatalf("profile mismatch:\n got: %#v\nwant: %#v", got, profile)
	}

	if err := store.DeleteProfile(t.Context()); err != nil {
		t.Fatalf("delete profile: %v", err)
	}
	if _, err := store.LoadProfile(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestCredentialAndProfileAreIndependent(t *testing.T) {
	store := setupStore(t)

	if err := store.SaveCredential(t.Context(), "token"); err != nil {
		t.Fatalf("save credential: %v", err)
	}
	if err := store.SaveProfile(t.Context(), model.Profile{Name: "Ada"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := store.DeleteCredential(t.Context()); err != nil {
		t.Fatalf("delete credential: %v", err)
	}
	if _, err := store.LoadProfile(t.Context()); err != nil {
		t.Fatalf("profile should survive credential delete: %v", err)
	}
}
