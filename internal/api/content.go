package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/brainbox-app/brainbox/internal/model"
)

func (c *Client) ListContent(ctx context.Context) ([]model.ContentItem, error) {
	var items []model.ContentItem
	if err := c.do(ctx, http.MethodGet, "/content", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

type createContentRequest struct {
	Title string            `json:"title"`
	URL   string            `json:"url"`
	Type  model.ContentType `json:"type"`
	Tags  []string          `json:"tags"`
}

func (c *Client) CreateContent(ctx context.Context, item model.ContentItem) error {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	body := createContentRequest{Title: item.Title, URL: item.URL, Type: item.Type, Tags: tags}
	return c.do(ctx, http.MethodPost, "/content", body, nil)
}

func (c *Client) DeleteContent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/content/"+url.PathEscape(id), nil, nil)
}

func (c *Client) Share(ctx context.Context, grant model.ShareGrant) (model.ShareResult, error) {
	var result model.ShareResult
	if err := c.do(ctx, http.MethodPost, "/share", grant, &result); err != nil {
		return model.ShareResult{}, err
	}
	return result, nil
}
