package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/brainbox-app/brainbox/internal/model"
)

// AuthResult is the payload of a successful login or registration.
type AuthResult struct {
	Token   string
	Profile model.Profile
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// authResponse is the auth endpoints' shape: the token sits beside the
// envelope rather than inside data.
type authResponse struct {
	Token   string        `json:"token"`
	Message string        `json:"message"`
	Data    model.Profile `json:"data"`
}

func (c *Client) Login(ctx context.Context, email, password string) (AuthResult, error) {
	return c.auth(ctx, "/auth/login", loginRequest{Email: email, Password: password})
}

func (c *Client) Register(ctx context.Context, name, email, phone, password string) (AuthResult, error) {
	return c.auth(ctx, "/auth/register", registerRequest{Name: name, Email: email, Phone: phone, Password: password})
}

func (c *Client) auth(ctx context.Context, path string, body any) (AuthResult, error) {
	raw, err := c.doRaw(ctx, http.MethodPost, path, body)
	if err != nil {
		return AuthResult{}, err
	}
	var resp authResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return AuthResult{}, fmt.Errorf("api: decode auth response: %w", err)
	}
	if resp.Token == "" {
		return AuthResult{}, &APIError{Status: http.StatusOK, Message: resp.Message}
	}
	return AuthResult{Token: resp.Token, Profile: resp.Data}, nil
}

// OAuthStartURL is the provider-initiated authentication URL. The server
// redirects the browser back to the given address with ?token= appended.
func (c *Client) OAuthStartURL(redirect string) string {
	u := c.baseURL + "/auth/google"
	if redirect != "" {
		u += "?redirect=" + url.QueryEscape(redirect)
	}
	return u
}
