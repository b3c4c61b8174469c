// Package download fetches remote resources to local files.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/time/rate"
)

// Options configures the download behavior
type Options struct {
	Timeout   time.Duration // Per-request timeout
	UserAgent string        // User agent string
	MaxSize   int64         // Maximum file size in bytes (0 = no limit)
	RateLimit float64       // Requests per second across all downloads (0 = unlimited)
}

// DefaultOptions returns default download options
func DefaultOptions() Options {
	return Options{
		Timeout:   5 * time.Minute,
		UserAgent: "PodcastBackup/1.0",
		MaxSize:   500 * 1024 * 1024, // 500MB
	}
}

// Result is the outcome of a single download attempt. Download never
// returns a Go error; failures travel in Err so the caller can log and
// move on to the next asset.
type Result struct {
	URL     string
	Path    string
	Written int64
	Err     error
}

// OK reports whether the download succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

func failure(url, path string, err error) Result {
	return Result{URL: url, Path: path, Err: err}
}

// Downloader fetches remote files over HTTP
type Downloader struct {
	client  *http.Client
	limiter *rate.Limiter
	options Options
}

// NewDownloader creates a new downloader with the given options
func NewDownloader(options Options) *Downloader {
	d := &Downloader{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // Don't compress audio
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
	if options.RateLimit > 0 {
		d.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), 1)
	}
	return d
}

// Download issues a single GET to url and writes the full response body to
// destPath, overwriting any existing file. All failures (bad status, network
// error, filesystem error) are reported through the returned Result.
func (d *Downloader) Download(ctx context.Context, url, destPath string) Result {
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return failure(url, destPath, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failure(url, destPath, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", d.options.UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return failure(url, destPath, fmt.Errorf("fetching: %w", err))
	}
	defer resp.Body.Close()

	// resp.Status carries both the numeric code and the status text.
	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return failure(url, destPath, fmt.Errorf("server returned status %s", resp.Status))
	}

	body := io.Reader(resp.Body)
	if d.options.MaxSize > 0 {
		body = io.LimitReader(resp.Body, d.options.MaxSize+1)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return failure(url, destPath, fmt.Errorf("reading body: %w", err))
	}
	if d.options.MaxSize > 0 && int64(len(data)) > d.options.MaxSize {
		return failure(url, destPath, fmt.Errorf("file exceeds %d bytes", d.options.MaxSize))
	}

	if err := os.WriteFile(destPath, data, 0o644); err != nil {
		return failure(url, destPath, fmt.Errorf("writing file: %w", err))
	}

	return Result{URL: url, Path: destPath, Written: int64(len(data))}
}
