package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/brainbox-app/brainbox/internal/api"
	"github.com/brainbox-app/brainbox/internal/model"
	"github.com/brainbox-app/brainbox/internal/storage"
	"github.com/brainbox-app/brainbox/internal/token"
)

// ErrInvalidToken is returned when a credential handed to Restore cannot be
// decoded or has already expired.
var ErrInvalidToken = errors.New("session: invalid token")

// AuthAPI is the slice of the backend the session store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (api.AuthResult, error)
	Register(ctx context.Context, name, email, phone, password string) (api.AuthResult, error)
}

// Store owns the authenticated session: the bearer credential, the decoded
// claims, and the cached profile. All methods are safe for concurrent use;
// tea commands run on their own goroutines.
type Store struct {
	auth   AuthAPI
	state  storage.StateStore
	logger *slog.Logger
	now    func() time.Time

	mu         sync.RWMutex
	credential string
	claims     token.Claims
	profile    model.Profile
	active     bool
	onChange   func()
}

func NewStore(auth AuthAPI, state storage.StateStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{auth: auth, state: state, logger: logger, now: time.Now}
}

// OnChange registers a callback fired after every login, logout, or profile
// update. Set it before the program starts; it is not synchronized.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Restore establishes the session at startup. A non-empty urlToken (handed
// over on the command line after a browser redirect) takes precedence over
// anything on disk and is persisted on success; a bad urlToken is an error
// the caller must surface. A bad or expired stored credential is discarded
// silently and the app starts logged out.
func (s *Store) Restore(ctx context.Context, urlToken string) error {
	if urlToken != "" {
		claims, err := token.Decode(urlToken)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		if claims.Expired(s.now()) {
			return fmt.Errorf("%w: expired", ErrInvalidToken)
		}
		if err := s.state.SaveCredential(ctx, urlToken); err != nil {
			return fmt.Errorf("persist credential: %w", err)
		}
		s.adopt(urlToken, claims, model.Profile{Email: claims.Email})
		s.logger.Info("session restored from handoff token", "email", claims.Email)
		return nil
	}

	stored, err := s.state.LoadCredential(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load credential: %w", err)
	}

	claims, err := token.Decode(stored)
	if err != nil || claims.Expired(s.now()) {
		s.logger.Info("discarding stale stored credential")
		_ = s.state.DeleteCredential(ctx)
		_ = s.state.DeleteProfile(ctx)
		return nil
	}

	profile, err := s.state.LoadProfile(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		profile = model.Profile{Email: claims.Email}
	} else if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	s.adopt(stored, claims, profile)
	s.logger.Info("session restored from state store", "email", claims.Email)
	return nil
}

func (s *Store) Login(ctx context.Context, email, password string) error {
	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, res)
}

func (s *Store) Register(ctx context.Context, name, email, phone, password string) error {
	res, err := s.auth.Register(ctx, name, email, phone, password)
	if err != nil {
		return err
	}
	return s.establish(ctx, res)
}

// Adopt installs a credential obtained outside the password flow, such as
// the OAuth callback, persisting it like a login would.
func (s *Store) Adopt(ctx context.Context, credential string) error {
	claims, err := token.Decode(credential)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Expired(s.now()) {
		return fmt.Errorf("%w: expired", ErrInvalidToken)
	}
	if err := s.state.SaveCredential(ctx, credential); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	s.adopt(credential, claims, model.Profile{Email: claims.Email})
	return nil
}

// Logout clears the in-memory session and the persisted state. Storage
// failures are logged, not returned: the user is logged out either way.
func (s *Store) Logout(ctx context.Context) {
	if err := s.state.DeleteCredential(ctx); err != nil {
		s.logger.Warn("delete credential", "error", err)
	}
	if err := s.state.DeleteProfile(ctx); err != nil {
		s.logger.Warn("delete profile", "error", err)
	}

	s.mu.Lock()
	s.credential = ""
	s.claims = token.Claims{}
	s.profile = model.Profile{}
	s.active = false
	s.mu.Unlock()

	s.notify()
	s.logger.Info("session cleared")
}

// SetProfile replaces the cached profile after a fetch or an update and
// persists it for the next start.
func (s *Store) SetProfile(ctx context.Context, profile model.Profile) {
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	if err := s.state.SaveProfile(ctx, profile); err != nil {
		s.logger.Warn("persist profile", "error", err)
	}
	s.notify()
}

// Credential returns the current bearer token, or "" when logged out. It is
// the api client's credential source.
func (s *Store) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

func (s *Store) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *Store) CurrentProfile() model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Store) Claims() token.Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

func (s *Store) establish(ctx context.Context, res api.AuthResult) error {
	claims, err := token.Decode(res.Token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if err := s.state.SaveCredential(ctx, res.Token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}
	profile := res.Profile
	if profile.Email == "" {
		profile.Email = claims.Email
	}
	if err := s.state.SaveProfile(ctx, profile); err != nil {
		s.logger.Warn("persist profile", "error", err)
	}
	s.adopt(res.Token, claims, profile)
	s.logger.Info("session established", "email", claims.Email)
	return nil
}

func (s *Store) adopt(credential string, claims token.Claims, profile model.Profile) {
	s.mu.Lock()
	s.credential = credential
	s.claims = claims
	s.profile = profile
	s.active = true
	s.mu.Unlock()
	s.notify()
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
