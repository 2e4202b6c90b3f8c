// Package cdn provides a client for Cloudinary's unsigned upload API and
// its URL-convention image transformations. All resizing and cropping is
// performed server-side by the CDN; the client only builds URLs.
package cdn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAPIBase      = "https://api.cloudinary.com/v1_1"
	defaultDeliveryBase = "https://res.cloudinary.com"
)

// UploadResult is the CDN's response to a successful upload.
type UploadResult struct {
	PublicID  string `json:"public_id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

// Transform selects a server-side image transformation by URL convention.
// Zero-valued fields are omitted from the URL.
type Transform struct {
	Width   int
	Height  int
	Crop    string // fill, thumb, scale, fit
	Quality string // "auto" or a number
}

// Client talks to one Cloudinary account using an unsigned upload preset.
type Client struct {
	cloudName    string
	uploadPreset string
	apiBase      string
	deliveryBase string
	httpc        *http.Client
}

// Config holds the account settings. APIBase and DeliveryBase override
// the production endpoints, for tests.
type Config struct {
	CloudName    string
	UploadPreset string
	APIBase      string
	DeliveryBase string
}

// New creates a Client. A nil httpc falls back to a client with a
// 30-second timeout.
func New(cfg Config, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		apiBase:      cfg.APIBase,
		deliveryBase: cfg.DeliveryBase,
		httpc:        httpc,
	}
	if c.apiBase == "" {
		c.apiBase = defaultAPIBase
	}
	if c.deliveryBase == "" {
		c.deliveryBase = defaultDeliveryBase
	}
	return c
}

// Upload sends raw file bytes to the unsigned upload endpoint and returns
// the CDN's identifiers and delivery URLs. folder may be empty.
func (c *Client) Upload(ctx context.Context, file io.Reader, filename, folder string) (*UploadResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("cdn: build form: %w", err)
	}
	if _, err := io.Copy(fw, file); err != nil {
		return nil, fmt.Errorf("cdn: copy file: %w", err)
	}
	if err := mw.WriteField("upload_preset", c.uploadPreset); err != nil {
		return nil, fmt.Errorf("cdn: build form: %w", err)
	}
	if folder != "" {
		if err := mw.WriteField("folder", folder); err != nil {
			return nil, fmt.Errorf("cdn: build form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("cdn: build form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.apiBase, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, fmt.Errorf("cdn: build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cdn: upload: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cdn: upload failed with status %d", resp.StatusCode)
	}

	var out UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("cdn: decode response: %w", err)
	}
	return &out, nil
}

// DeliveryURL derives a transformed-delivery URL from an opaque public id.
// With a nil transform it returns the plain delivery URL.
func (c *Client) DeliveryURL(publicID string, t *Transform) string {
	base := fmt.Sprintf("%s/%s/image/upload", c.deliveryBase, c.cloudName)

	var parts []string
	if t != nil {
		if t.Width > 0 {
			parts = append(parts, fmt.Sprintf("w_%d", t.Width))
		}
		if t.Height > 0 {
			parts = append(parts, fmt.Sprintf("h_%d", t.Height))
		}
		if t.Crop != "" {
			parts = append(parts, "c_"+t.Crop)
		}
		if t.Quality != "" {
			parts = append(parts, "q_"+t.Quality)
		}
	}
	if len(parts) == 0 {
		return base + "/" + publicID
	}
	return base + "/" + strings.Join(parts, ",") + "/" + publicID
}
