package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUpstream wraps any transport-level failure talking to the events feed.
// Opaque to the catalog; callers surface it and offer a retry.
var ErrUpstream = errors.New("events feed unavailable")

// Fetcher pulls the raw events listing from the upstream feed. It does no
// validation; that's the catalog's job.
type Fetcher struct {
	url       string
	client    *http.Client
	latencyCh chan float64
}

func New(url string, latencyCh chan float64) *Fetcher {
	return &Fetcher{
		url: url,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		latencyCh: latencyCh,
	}
}

func (f *Fetcher) Fetch(ctx context.Context) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("Fetch: can't create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	startTimer := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: can't read body: %s", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if f.latencyCh != nil {
		select {
		case f.latencyCh <- float64(time.Since(startTimer).Microseconds()):
		default:
		}
	}

	return body, nil
}
