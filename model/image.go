// api/model/image.go
package model

import (
	"time"
)

// CuratedImage is an artwork surfaced by the vision provider for browsing
// and product creation.
type CuratedImage struct {
	ID           string    `json:"id"`
	Title        string    `json:"title,omitempty"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Theme        string    `json:"theme,omitempty"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	DominantHex  string    `json:"dominant_hex,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ImageIDs    []string  `json:"image_ids,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
}

// GenerateImageRequest asks the vision provider for new artwork variants.
type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Theme  string `json:"theme,omitempty"`
	Count  int    `json:"count,omitempty"`
}
