// api/model/room.go
package model

import (
	"time"
)

// RoomScene describes a room photo plus the textures to composite onto its
// wall segments for a visualization preview.
type RoomScene struct {
	BaseImageURL string        `json:"base_image_url" binding:"required"`
	WallColorHex string        `json:"wall_color_hex,omitempty"`
	Segments     []WallSegment `json:"segments,omitempty"`
}

type WallSegment struct {
	Label      string `json:"label,omitempty"` // e.g. "north-wall"
	TextureURL string `json:"texture_url"`
}

// RoomRender is the provider's visualization result. TextureResults reports
// the per-texture load outcome and feeds the texture validator.
type RoomRender struct {
	ID             string          `json:"id"`
	URL            string          `json:"url"`
	StorageURL     string          `json:"storage_url,omitempty"`
	Status         string          `json:"status"` // "completed" or "failed"
	TextureResults []TextureResult `json:"texture_results,omitempty"`
	RenderedAt     time.Time       `json:"rendered_at,omitempty"`
}

type TextureResult struct {
	TextureURL string `json:"texture_url"`
	Loaded     bool   `json:"loaded"`
	Reason     string `json:"reason,omitempty"`
}
