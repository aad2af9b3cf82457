package storage

import (
	"context"
	"errors"

	"github.com/brainbox-app/brainbox/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// StateStore persists the session state that must survive restarts: the
// bearer credential and the last profile the server returned.
type StateStore interface {
	SaveCredential(ctx context.Context, credential string) error
	LoadCredential(ctx context.Context) (string, error)
	DeleteCredential(ctx context.Context) error

	SaveProfile(ctx context.Context, profile model.Profile) error
	LoadProfile(ctx context.Context) (model.Profile, error)
	DeleteProfile(ctx context.Context) error
}
