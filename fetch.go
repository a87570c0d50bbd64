package folio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// Fetcher loads the raw bytes of an image. Failures wrap ErrFetchFailed.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, path string) ([]byte, error)

// Fetch calls f(ctx, path).
func (f FetcherFunc) Fetch(ctx context.Context, path string) ([]byte, error) {
	return f(ctx, path)
}

// FSFetcher reads images from a filesystem rooted at Root.
type FSFetcher struct {
	fs   afero.Fs
	root string
}

// NewFSFetcher returns a Fetcher reading from fs below root. A nil fs uses
// the operating system's filesystem.
func NewFSFetcher(fs afero.Fs, root string) *FSFetcher {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FSFetcher{fs: fs, root: root}
}

// Fetch reads the file at the slash-separated path below the root. Paths
// that leave the root are rejected with ErrInvalidSource.
func (f *FSFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: %w: empty path", ErrFetchFailed, ErrInvalidSource)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, err)
	}

	rel := filepath.Clean(filepath.FromSlash(strings.TrimLeft(path, "/")))
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %w: %s escapes the root", ErrFetchFailed, ErrInvalidSource, path)
	}

	data, err := afero.ReadFile(f.fs, filepath.Join(f.root, rel))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, err)
	}
	return data, nil
}

// DefaultMaxImageBytes caps how much of a response HTTPFetcher reads.
const DefaultMaxImageBytes = 64 << 20

// HTTPFetcher downloads images relative to a base URL.
type HTTPFetcher struct {
	client   *http.Client
	base     string
	maxBytes int64
}

// NewHTTPFetcher returns a Fetcher that GETs paths below baseURL. A
// non-positive timeout leaves the client without one; the request context
// still applies.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	client := &http.Client{}
	if timeout > 0 {
		client.Timeout = timeout
	}
	return &HTTPFetcher{client: client, base: baseURL, maxBytes: DefaultMaxImageBytes}
}

// WithClient replaces the HTTP client.
func (f *HTTPFetcher) WithClient(c *http.Client) *HTTPFetcher {
	f.client = c
	return f
}

// WithMaxBytes caps the number of bytes read per image.
func (f *HTTPFetcher) WithMaxBytes(n int64) *HTTPFetcher {
	f.maxBytes = n
	return f
}

// Fetch GETs path relative to the base URL. Responses outside 2xx are
// failures.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: %w: empty path", ErrFetchFailed, ErrInvalidSource)
	}

	target, err := url.JoinPath(f.base, strings.Split(path, "/")...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s: %w", ErrFetchFailed, ErrInvalidSource, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: status %d", ErrFetchFailed, path, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, path, err)
	}
	return data, nil
}
