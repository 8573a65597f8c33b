package pages

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/internalerr"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is the default User-Agent header value
	DefaultUserAgent = "seoquery-fetch/1.0"
	// MaxBodySize is the maximum response body size (10MB)
	MaxBodySize = 10 * 1024 * 1024
	// DialTimeout is the maximum time to wait for a TCP connection
	DialTimeout = 10 * time.Second
	// MaxRedirects is the number of redirects followed
	MaxRedirects = 10
)

// Fetcher downloads pages and extracts their text.
type Fetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// NewFetcher creates a fetcher with the given request timeout. A zero
// timeout means DefaultTimeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   DialTimeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   10 * time.Second,
				ResponseHeaderTimeout: 10 * time.Second,
				IdleConnTimeout:       90 * time.Second,
				MaxIdleConns:          100,
				MaxIdleConnsPerHost:   10,
				ForceAttemptHTTP2:     true,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("too many redirects (>%d)", MaxRedirects)
				}
				return nil
			},
		},
		userAgent:   DefaultUserAgent,
		maxBodySize: MaxBodySize,
	}
}

// Fetch downloads rawURL and extracts the page. Partial URLs get an
// https:// prefix. An empty URL wraps internalerr.ErrInvalidInput; every
// other failure wraps internalerr.ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Item, error) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return Item{}, fmt.Errorf("URL cannot be empty: %w", internalerr.ErrInvalidInput)
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Item{}, fmt.Errorf("create request for %s: %v: %w", url, err, internalerr.ErrFetch)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return Item{}, fmt.Errorf("fetch %s: %v: %w", url, err, internalerr.ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Item{}, fmt.Errorf("fetch %s: unexpected status %s: %w", url, resp.Status, internalerr.ErrFetch)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return Item{}, fmt.Errorf("read %s: %v: %w", url, err, internalerr.ErrFetch)
	}
	if int64(len(data)) > f.maxBodySize {
		return Item{}, fmt.Errorf("response body of %s exceeds %d bytes: %w", url, f.maxBodySize, internalerr.ErrFetch)
	}

	item, err := Extract(bytes.NewReader(data))
	if err != nil {
		return Item{}, fmt.Errorf("parse %s: %v: %w", url, err, internalerr.ErrFetch)
	}
	item.URL = resp.Request.URL.String()
	return item, nil
}
