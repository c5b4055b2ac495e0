// api/client/storage_client.go
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	logger "github.com/muralehq/murale/api/logging"
)

// StorageClient uploads rendered previews to the managed backend's storage
// bucket and hands back publicly servable URLs.
type StorageClient struct {
	baseURL    string
	bucket     string
	serviceKey string
	httpClient *http.Client
}

func NewStorageClient(baseURL, bucket, serviceKey string) *StorageClient {
	return &StorageClient{
		baseURL:    baseURL,
		bucket:     bucket,
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload stores body under objectPath in the bucket and returns the public
// URL for the stored object.
func (s *StorageClient) Upload(ctx context.Context, objectPath, contentType string, body io.Reader) (string, error) {
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Error("Storage upload returned non-2xx status",
			zap.String("objectPath", objectPath),
			zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("storage upload returned status %d", resp.StatusCode)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, objectPath)
	logger.Debug("Stored object", zap.String("url", publicURL))
	return publicURL, nil
}

// CopyFromURL fetches src and re-uploads it under objectPath. Used to pin
// short-lived provider render URLs into durable storage.
func (s *StorageClient) CopyFromURL(ctx context.Context, src, objectPath string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch source object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("source object fetch returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return s.Upload(ctx, objectPath, contentType, resp.Body)
}
