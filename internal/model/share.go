package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPermission = errors.New("model: invalid share permission")

type SharePermission string

const (
	SharePermissionView SharePermission = "VIEW"
	SharePermissionEdit SharePermission = "EDIT"
)

func (p SharePermission) IsValid() bool {
	switch p {
	case SharePermissionView, SharePermissionEdit:
		return true
	default:
		return false
	}
}

// ShareGrant asks the server to expose one content item to another user.
// Revocation is not modelled client-side.
type ShareGrant struct {
	ContentID   string          `json:"contentId"`
	Email       string          `json:"email"`
	Permission  SharePermission `json:"permission"`
	Description string          `json:"description,omitempty"`
}

func (g ShareGrant) Validate() error {
	if strings.TrimSpace(g.ContentID) == "" {
		return errors.New("model: share content id is required")
	}
	if strings.TrimSpace(g.Email) == "" {
		return errors.New("model: share recipient email is required")
	}
	if !g.Permission.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPermission, g.Permission)
	}
	return nil
}

// ShareResult is what the share endpoint returns on success.
type ShareResult struct {
	Link       string          `json:"link"`
	Permission SharePermission `json:"permission"`
	SharedMail string          `json:"sharedMail"`
}
