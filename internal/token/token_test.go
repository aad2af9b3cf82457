package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func makeCredential(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	seg := base64.RawURLEncoding.EncodeToString
	return seg([]byte(`{"alg":"HS256","typ":"JWT"}`)) + "." + seg(payload) + "." + seg([]byte("sig"))
}

func TestDecodeValidCredential(t *testing.T) {
	issued := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	expires := issued.Add(24 * time.Hour)
	cred := makeCredential(t, map[string]any{
		"id":    "user-1",
		"email": "user@example.com",
		"iat":   issued.Unix(),
		"exp":   expires.Unix(),
	})

	claims, err := Decode(cred)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.ID != "user-1" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected identity claims: %#v", claims)
	}
	if !claims.ExpiresAt.Equal(expires) {
		t.Fatalf("expected expiry %v, got %v", expires, claims.ExpiresAt)
	}
	if claims.Expired(issued) {
		t.Fatal("credential should not be expired before exp")
	}
	if !claims.Expired(expires) {
		t.Fatal("credential should be expired at exp")
	}
}

func TestDecodeGarbage(t *testing.T) {
	for _, cred := range []string{"", "not-a-token", "a.b", "a.!!!.c", "a.b.c.d"} {
		if _, err := Decode(cred); !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed for %q, got: %v", cred, err)
		}
	}
}

func TestDecodeMissingExpiry(t *testing.T) {
	cred := makeCredential(t, map[string]any{"id": "user-1", "email": "user@example.com"})
	if _, err := Decode(cred); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed for missing exp, got: %v", err)
	}
}
