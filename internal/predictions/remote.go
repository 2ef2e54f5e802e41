package predictions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

var client = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Fetch loads predictions once from a JSON feed at url.
func Fetch(ctx context.Context, url string) (*Store, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build predictions request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch predictions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch predictions: unexpected status %d", resp.StatusCode)
	}
	return LoadJSON(resp.Body)
}

// Load resolves the configured source: a feed URL first, then a file, then
// the bundled defaults.
func Load(ctx context.Context, path, url string) (*Store, error) {
	switch {
	case url != "":
		return Fetch(ctx, url)
	case path != "":
		return LoadFile(path)
	default:
		return Default(), nil
	}
}
