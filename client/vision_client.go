// api/client/vision_client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	logger "github.com/muralehq/murale/api/logging"
	"github.com/muralehq/murale/api/model"
)

// VisionClient talks to the image-generation/vision provider for curated
// imagery and room visualization renders.
type VisionClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewVisionClient(baseURL, apiKey string) *VisionClient {
	return &VisionClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type curatedImagesResponse struct {
	Images []struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		URL       string `json:"url"`
		Thumbnail string `json:"thumbnail_url"`
		Theme     string `json:"theme"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Dominant  string `json:"dominant_hex"`
	} `json:"images"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}

// ListCuratedImages fetches one page of curated images, optionally filtered
// by theme.
func (v *VisionClient) ListCuratedImages(ctx context.Context, theme string, page int) ([]model.CuratedImage, int, error) {
	query := url.Values{}
	if theme != "" {
		query.Set("theme", theme)
	}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var resp curatedImagesResponse
	if err := v.get(ctx, "/images/curated?"+query.Encode(), &resp); err != nil {
		return nil, 0, err
	}

	images := make([]model.CuratedImage, 0, len(resp.Images))
	for _, img := range resp.Images {
		images = append(images, model.CuratedImage{
			ID:           img.ID,
			Title:        img.Title,
			URL:          img.URL,
			ThumbnailURL: img.Thumbnail,
			Theme:        img.Theme,
			Width:        img.Width,
			Height:       img.Height,
			DominantHex:  img.Dominant,
		})
	}
	return images, resp.TotalPages, nil
}

type generateImagesResponse struct {
	Images []struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	} `json:"images"`
}

// GenerateImages asks the provider for new artwork variants from a prompt.
func (v *VisionClient) GenerateImages(ctx context.Context, req model.GenerateImageRequest) ([]model.CuratedImage, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}
	body := map[string]interface{}{
		"prompt": req.Prompt,
		"count":  count,
	}
	if req.Theme != "" {
		body["theme"] = req.Theme
	}

	var resp generateImagesResponse
	if err := v.post(ctx, "/images/generate", body, &resp); err != nil {
		return nil, err
	}

	images := make([]model.CuratedImage, 0, len(resp.Images))
	for _, img := range resp.Images {
		images = append(images, model.CuratedImage{
			ID:        img.ID,
			URL:       img.URL,
			Theme:     req.Theme,
			CreatedAt: time.Now(),
		})
	}
	return images, nil
}

type renderRoomRequest struct {
	BaseImageURL string   `json:"base_image_url"`
	WallColorHex string   `json:"wall_color_hex,omitempty"`
	Segments     []struct {
		Label      string `json:"label,omitempty"`
		TextureURL string `json:"texture_url"`
	} `json:"segments,omitempty"`
}

type renderRoomResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Status   string `json:"status"`
	Textures []struct {
		URL    string `json:"url"`
		Loaded bool   `json:"loaded"`
		Reason string `json:"reason"`
	} `json:"textures"`
}

// RenderRoom submits a room scene for compositing. The response reports which
// textures the provider actually managed to load; callers feed those
// outcomes into the texture validator.
func (v *VisionClient) RenderRoom(ctx context.Context, scene model.RoomScene) (*model.RoomRender, error) {
	reqBody := renderRoomRequest{
		BaseImageURL: scene.BaseImageURL,
		WallColorHex: scene.WallColorHex,
	}
	for _, segment := range scene.Segments {
		reqBody.Segments = append(reqBody.Segments, struct {
			Label      string `json:"label,omitempty"`
			TextureURL string `json:"texture_url"`
		}{Label: segment.Label, TextureURL: segment.TextureURL})
	}

	var resp renderRoomResponse
	if err := v.post(ctx, "/rooms/render", reqBody, &resp); err != nil {
		return nil, err
	}

	render := &model.RoomRender{
		ID:         resp.ID,
		URL:        resp.URL,
		Status:     resp.Status,
		RenderedAt: time.Now(),
	}
	for _, texture := range resp.Textures {
		render.TextureResults = append(render.TextureResults, model.TextureResult{
			TextureURL: texture.URL,
			Loaded:     texture.Loaded,
			Reason:     texture.Reason,
		})
	}

	logger.Info("Room render completed",
		zap.String("renderID", render.ID),
		zap.String("status", render.Status),
		zap.Int("textures", len(render.TextureResults)))
	return render, nil
}

func (v *VisionClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+v.apiKey)

	return v.do(req, out)
}

func (v *VisionClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+v.apiKey)

	return v.do(req, out)
}

func (v *VisionClient) do(req *http.Request, out interface{}) error {
	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vision provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Vision provider returned non-2xx status",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("vision provider returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode vision provider response: %w", err)
	}
	return nil
}
