// Package manifest handles the dependency manifest file. The manifest's
// contents are opaque to the launcher; this package only knows where the
// file lives and, optionally, how to refresh it from a remote source
// before the installer reads it.
package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vk/bootstrapgo/internal/ctxlog"
	"resty.dev/v3"
)

// Fetcher refreshes a manifest file from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// HTTPFetcher is the real Fetcher, backed by an HTTP client.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a Fetcher with a bounded request timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// Close releases the underlying HTTP client resources.
func (f *HTTPFetcher) Close() error {
	return f.client.Close()
}

// Fetch downloads the manifest and replaces dest atomically: the body is
// written to a temporary file in the same directory and renamed over the
// destination, so a failed download never leaves a truncated manifest for
// the installer to read.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, dest string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Fetching dependency manifest.", "url", url, "dest", dest)

	res, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return fmt.Errorf("fetching manifest from %s: %w", url, err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("fetching manifest from %s: unexpected status %s", url, res.Status())
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".manifest-*")
	if err != nil {
		return fmt.Errorf("staging manifest: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(res.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("staging manifest: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("staging manifest: %w", err)
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return fmt.Errorf("replacing manifest: %w", err)
	}
	logger.Debug("Manifest updated.", "bytes", res.Size())
	return nil
}
