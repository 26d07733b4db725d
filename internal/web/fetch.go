// Package web downloads remote script sources.
//
// GitHub and Gist page URLs are resolved to their raw-content form
// before fetching, so users can paste the URL straight from the browser.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const gistRawHost = "https://gist.githubusercontent.com"

// Fetcher downloads script sources over HTTP.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose requests are bounded by timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// DownloadScript fetches the source code behind url. Gist page URLs are
// scraped for their raw-content link; github.com file URLs are rewritten
// to raw.githubusercontent.com.
func (f *Fetcher) DownloadScript(ctx context.Context, url string) (string, error) {
	resolved, gist, err := f.resolveRawURL(ctx, url)
	if err != nil {
		return "", err
	}

	body, err := f.get(ctx, resolved)
	if err != nil {
		return "", err
	}

	if gist {
		// Gist snippets are published wrapped in an entry point; strip it
		// so the snippet can be re-wrapped by a template.
		body = strings.ReplaceAll(body, "func main()", "")
	}
	return body, nil
}

// resolveRawURL rewrites browser-facing URLs to raw-content ones and
// reports whether the source is a gist.
func (f *Fetcher) resolveRawURL(ctx context.Context, url string) (string, bool, error) {
	if strings.Contains(url, "gist.github.com") {
		page, err := f.get(ctx, url)
		if err != nil {
			return "", false, err
		}
		raw, ok := rawGistURL(page)
		if !ok {
			return "", false, fmt.Errorf("no raw content link found in gist page %s", url)
		}
		return raw, true, nil
	}
	return rewriteGitHub(url), false, nil
}

// rewriteGitHub maps a github.com file URL to its raw-content host.
func rewriteGitHub(url string) string {
	for _, prefix := range []string{"github.com", "https://github.com", "http://github.com"} {
		if strings.HasPrefix(url, prefix+"/") {
			return strings.Replace(url, "github.com", "raw.githubusercontent.com", 1)
		}
	}
	return url
}

// rawGistURL extracts the raw-content URL from a gist page body.
func rawGistURL(html string) (string, bool) {
	for _, line := range strings.Split(html, "\n") {
		if !strings.Contains(line, "/raw/") {
			continue
		}
		parts := strings.Split(line, `"`)
		if len(parts) < 2 {
			continue
		}
		return gistRawHost + parts[1], true
	}
	return "", false
}

// get fetches url and returns its body as text.
func (f *Fetcher) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("response from %s is not valid UTF-8", url)
	}
	return string(body), nil
}
