// Package http fetches remote resources such as palette images.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hueforge/hueforge/internal/version"
)

const (
	// DefaultTimeout bounds a fetch when FetchOptions.Timeout is zero.
	DefaultTimeout = 10 * time.Second

	// maxBodySize caps a response body. Remote images larger than this
	// are rejected rather than buffered.
	maxBodySize = 32 << 20
)

// FetchOptions configures a single fetch.
type FetchOptions struct {
	// Timeout overrides DefaultTimeout when non-zero.
	Timeout time.Duration

	// Headers are sent in addition to the standard request headers.
	Headers map[string]string
}

// Fetch retrieves the body at url as a byte slice. It sends a versioned
// User-Agent, honours ctx cancellation and fails on any non-200 status.
func Fetch(ctx context.Context, url string, opts FetchOptions) ([]byte, error) {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent())
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", maxBodySize)
	}
	return data, nil
}

// userAgent identifies the client, e.g. "hueforge/1.2.3".
func userAgent() string {
	return fmt.Sprintf("hueforge/%s", version.Version)
}
