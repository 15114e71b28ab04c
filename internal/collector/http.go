package collector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"CandleView/internal/model"
)

// HTTPFetcher downloads the raw JSON resource over HTTP, rate limited and
// retried with exponential backoff.
type HTTPFetcher struct {
	URL     string
	APIKey  string
	Client  *http.Client
	Limiter *rate.Limiter

	// MaxElapsed bounds the total retry time for one fetch.
	MaxElapsed time.Duration
}

// NewHTTPFetcher creates a fetcher with optional proxy support.
func NewHTTPFetcher(rawURL, apiKey, proxyURL string) *HTTPFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HTTPFetcher{
		URL:    rawURL,
		APIKey: apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		Limiter:    rate.NewLimiter(rate.Every(time.Second), 5),
		MaxElapsed: 30 * time.Second,
	}
}

func (f *HTTPFetcher) Name() string { return "http" }

// StatusError is returned for a non-200 response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("raw data: status %d, body: %s", e.StatusCode, e.Body)
}

func (f *HTTPFetcher) FetchRaw(ctx context.Context) ([]model.RawRecord, error) {
	if err := f.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var raw []model.RawRecord
	attempt := 0
	operation := func() error {
		attempt++
		records, err := f.fetchOnce(ctx)
		if err != nil {
			var se *StatusError
			// Client errors will not improve on retry.
			if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			log.Warn().Err(err).Int("attempt", attempt).Msg("raw data fetch failed")
			return err
		}
		raw = records
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = f.MaxElapsed
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("fetch raw data: %w", err)
	}
	return raw, nil
}

func (f *HTTPFetcher) fetchOnce(ctx context.Context) ([]model.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	var raw []model.RawRecord
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode raw data: %w", err))
	}
	return raw, nil
}
