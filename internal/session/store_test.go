package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/brainbox-app/brainbox/internal/api"
	"github.com/brainbox-app/brainbox/internal/model"
	"github.com/brainbox-app/brainbox/internal/storage"
)

type fakeAuth struct {
	result api.AuthResult
	err    error

	lastEmail    string
	lastPassword string
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (api.AuthResult, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.result, f.err
}

func (f *fakeAuth) Register(_ context.Context, _, email, _, password string) (api.AuthResult, error) {
	f.lastEmail, f.lastPassword = email, password
	return f.result, f.err
}

func testCredential(t *testing.T, email string, exp time.Time) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":    "u1",
		"email": email,
		"iat":   exp.Add(-time.Hour).Unix(),
		"exp":   exp.Unix(),
	})
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	seg := base64.RawURLEncoding.EncodeToString
	return seg([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + seg(payload) + "." + seg([]byte("sig"))
}

func newTestStore(auth AuthAPI, state storage.StateStore) *Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(auth, state, logger)
}

func TestRestoreEmptyStoreStartsLoggedOut(t *testing.T) {
	s := newTestStore(&fakeAuth{}, storage.NewMemoryStore())
	if err := s.Restore(t.Context(), ""); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if s.Active() {
		t.Fatal("expected logged-out session")
	}
	if got := s.Credential(); got != "" {
		t.Fatalf("expected empty credential, got %q", got)
	}
}

func TestRestoreAdoptsHandoffToken(t *testing.T) {
	state := storage.NewMemoryStore()
	s := newTestStore(&fakeAuth{}, state)

	cred := testCredential(t, "ada@example.com", time.Now().Add(time.Hour))
	if err := s.Restore(t.Context(), cred); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !s.Active() {
		t.Fatal("expected active session")
	}
	if s.CurrentProfile().Email != "ada@example.com" {
		t.Fatalf("unexpected profile: %#v", s.CurrentProfile())
	}

	stored, err := state.LoadCredential(t.Context())
	if err != nil || stored != cred {
		t.Fatalf("handoff token not persisted: %q, %v", stored, err)
	}
}

func TestRestoreRejectsBadHandoffToken(t *testing.T) {
	s := newTestStore(&fakeAuth{}, storage.NewMemoryStore())
	err := s.Restore(t.Context(), "not-a-jwt")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got: %v", err)
	}
	if s.Active() {
		t.Fatal("bad handoff token must not activate the session")
	}
}

func TestRestoreDiscardsExpiredStoredCredential(t *testing.T) {
	state := storage.NewMemoryStore()
	expired := testCredential(t, "ada@example.com", time.Now().Add(-time.Hour))
	if err := state.SaveCredential(t.Context(), expired); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	if err := state.SaveProfile(t.Context(), model.Profile{Name: "Ada"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	s := newTestStore(&fakeAuth{}, state)
	if err := s.Restore(t.Context(), ""); err != nil {
		t.Fatalf("restore should swallow expired credential: %v", err)
	}
	if s.Active() {
		t.Fatal("expired credential must not activate the session")
	}
	if _, err := state.LoadCredential(t.Context()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expired credential should be removed, got: %v", err)
	}
	if _, err := state.LoadProfile(t.Context()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("profile should be removed with the credential, got: %v", err)
	}
}

func TestRestoreUsesStoredCredentialAndProfile(t *testing.T) {
	state := storage.NewMemoryStore()
	cred := testCredential(t, "ada@example.com", time.Now().Add(time.Hour))
	if err := state.SaveCredential(t.Context(), cred); err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	if err := state.SaveProfile(t.Context(), model.Profile{Name: "Ada", Email: "ada@example.com"}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	s := newTestStore(&fakeAuth{}, state)
	if err := s.Restore(t.Context(), ""); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !s.Active() {
		t.Fatal("expected active session")
	}
	if s.CurrentProfile().Name != "Ada" {
		t.Fatalf("unexpected profile: %#v", s.CurrentProfile())
	}
}

func TestLoginEstablishesAndPersists(t *testing.T) {
	state := storage.NewMemoryStore()
	cred := testCredential(t, "ada@example.com", time.Now().Add(time.Hour))
	auth := &fakeAuth{result: api.AuthResult{
		Token:   cred,
		Profile: model.Profile{ID: "u1", Name: "Ada", Email: "ada@example.com"},
	}}
	s := newTestStore(auth, state)

	var changes int
	s.OnChange(func() { changes++ })

	if err := s.Login(t.Context(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.lastEmail != "ada@example.com" || auth.lastPassword != "pw" {
		t.Fatalf("credentials not forwarded: %q %q", auth.lastEmail, auth.lastPassword)
	}
	if !s.Active() || s.Credential() != cred {
		t.Fatal("expected active session with credential")
	}
	if changes == 0 {
		t.Fatal("expected change notification")
	}
	if profile, err := state.LoadProfile(t.Context()); err != nil || profile.Name != "Ada" {
		t.Fatalf("profile not persisted: %#v, %v", profile, err)
	}
}

func TestLoginFailurePropagates(t *testing.T) {
	auth := &fakeAuth{err: &api.APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}}
	s := newTestStore(auth, storage.NewMemoryStore())

	err := s.Login(t.Context(), "ada@example.com", "wrong")
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "invalid credentials" {
		t.Fatalf("expected server message preserved, got: %v", err)
	}
	if s.Active() {
		t.Fatal("failed login must not activate the session")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	state := storage.NewMemoryStore()
	cred := testCredential(t, "ada@example.com", time.Now().Add(time.Hour))
	s := newTestStore(&fakeAuth{result: api.AuthResult{Token: cred}}, state)
	if err := s.Login(t.Context(), "ada@example.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	s.Logout(t.Context())
	if s.Active() || s.Credential() != "" {
		t.Fatal("expected cleared session")
	}
	if _, err := state.LoadCredential(t.Context()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("credential should be deleted, got: %v", err)
	}
}

func TestCallbackListenerDeliversToken(t *testing.T) {
	l, err := ListenCallback(0)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	resp, err := http.Get(l.Addr() + "/?token=handoff-token")
	if err != nil {
		t.Fatalf("callback request: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(t.Context(), 2*time.Second)
	defer cancel()
	tok, err := l.Wait(ctx)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if tok != "handoff-token" {
		t.Fatalf("unexpected token: %q", tok)
	}
}
