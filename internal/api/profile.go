package api

import (
	"context"
	"net/http"

	"github.com/brainbox-app/brainbox/internal/model"
)

func (c *Client) GetProfile(ctx context.Context) (model.Profile, error) {
	var profile model.Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile sends the editable fields only; email is immutable and never
// part of the request body.
func (c *Client) UpdateProfile(ctx context.Context, update model.ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/profile", update, nil)
}
