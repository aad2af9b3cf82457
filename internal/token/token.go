package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrMalformed = errors.New("token: malformed credential")

// Claims are the identity fields embedded in a bearer credential. The client
// only reads them; signature verification belongs to the server.
type Claims struct {
	ID        string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (c Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

type wireClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Iat   int64  `json:"iat"`
	Exp   int64  `json:"exp"`
}

// Decode extracts the claims from the payload segment of a JWT-shaped
// credential. Any structural or encoding problem yields ErrMalformed.
func Decode(credential string) (Claims, error) {
	parts := strings.Split(strings.TrimSpace(credential), ".")
	if len(parts) != 3 {
		return Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(parts))
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	var wire wireClaims
	if err := json.Unmarshal(payload, &wire); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if wire.Exp == 0 {
		return Claims{}, fmt.Errorf("%w: missing exp claim", ErrMalformed)
	}
	return Claims{
		ID:        wire.ID,
		Email:     wire.Email,
		IssuedAt:  time.Unix(wire.Iat, 0).UTC(),
		ExpiresAt: time.Unix(wire.Exp, 0).UTC(),
	}, nil
}
