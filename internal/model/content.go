package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidContentType = errors.New("model: invalid content type")

type ContentType string

const (
	ContentTypeImage   ContentType = "IMAGE"
	ContentTypeVideo   ContentType = "VIDEO"
	ContentTypeArticle ContentType = "ARTICLE"
	ContentTypeAudio   ContentType = "AUDIO"
)

func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeImage, ContentTypeVideo, ContentTypeArticle, ContentTypeAudio:
		return true
	default:
		return false
	}
}

// ContentItem is a saved reference: an image, video, article or audio link
// with free-form tags. Items are created and deleted but never edited.
type ContentItem struct {
	ID    string      `json:"id,omitempty"`
	Title string      `json:"title"`
	Type  ContentType `json:"type"`
	URL   string      `json:"url,omitempty"`
	Tags  []string    `json:"tags"`
}

func (c ContentItem) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("model: content title is required")
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidContentType, c.Type)
	}
	return nil
}

// FilterContent returns the items whose title or any tag contains the query,
// case-insensitively. An empty query returns the input unchanged. Order is
// preserved and the input slice is never mutated.
func FilterContent(items []ContentItem, query string) []ContentItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]ContentItem, 0, len(items))
	for _, item := range items {
		if contentMatches(item, query) {
			out = append(out, item)
		}
	}
	return out
}

func contentMatches(item ContentItem, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(item.Title), loweredQuery) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}
