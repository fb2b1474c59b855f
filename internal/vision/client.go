// Package vision implements the remote image-inference backend contract.
package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dtroode/aigate/internal/model"
)

var _ model.PoseDetector = (*Client)(nil)

// Client talks to a detection endpoint that accepts raw image bytes and
// returns (class, confidence) detections.
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
}

// New creates a client for the given endpoint and key.
func New(endpoint, apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
	}
}

type detectResponse struct {
	Detections []model.Detection `json:"detections"`
}

// Detect runs inference on the image and returns zero or more detections.
func (c *Client) Detect(ctx context.Context, image []byte) ([]model.Detection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/detect", bytes.NewReader(image))
	if err != nil {
		return nil, fmt.Errorf("failed to build detect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detect request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("detect returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var parsed detectResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode detect response: %w", err)
	}

	return parsed.Detections, nil
}
