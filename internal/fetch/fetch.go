// Package fetch retrieves source images over HTTP and decodes them.
//
// The core pipeline treats retrieval and decoding as opaque collaborators;
// this package is that collaborator. Failures are classified with the
// sentinel errors ErrFetch (network error, non-2xx status, oversized body)
// and ErrDecode (bytes that no registered codec can parse).
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
)

// Sentinel errors for failure classification at the HTTP boundary.
var (
	// ErrFetch indicates the source image could not be retrieved.
	ErrFetch = errors.New("fetch failed")

	// ErrDecode indicates the retrieved bytes are not a decodable image.
	ErrDecode = errors.New("decode failed")
)

// Config configures a Fetcher.
type Config struct {
	// Timeout bounds one fetch end to end (default: 10s).
	Timeout time.Duration

	// MaxBytes is the largest response body accepted (default: 32 MB).
	MaxBytes int64
}

func (c *Config) defaults() {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.MaxBytes <= 0 {
		c.MaxBytes = 32 * 1024 * 1024
	}
}

// Fetcher retrieves and decodes remote images.
//
// A Fetcher holds no per-request state and is safe for concurrent use.
type Fetcher struct {
	client   *http.Client
	maxBytes int64
}

// New creates a Fetcher with the given configuration.
func New(cfg Config) *Fetcher {
	cfg.defaults()
	return &Fetcher{
		client:   &http.Client{Timeout: cfg.Timeout},
		maxBytes: cfg.MaxBytes,
	}
}

// Fetch retrieves the image at url and decodes it.
//
// The request is tied to ctx; cancelling the context aborts the transfer.
// Supported formats are those registered with the imaging codec (PNG, JPEG,
// GIF, TIFF, BMP).
func (f *Fetcher) Fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d from source", ErrFetch, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrFetch, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", ErrFetch, f.maxBytes)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}
