package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	// UserAgent is sent with every request; GitHub rejects requests without one.
	UserAgent = "portfolio-stats"
	// maxErrorBody caps how much of a failed response ends up in the reason.
	maxErrorBody = 512
)

// NewRequest builds a GET request with the headers shared by all sources.
func NewRequest(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	return req, nil
}

// Fetch performs one request, decodes the body as JSON into T and checks accept.
// Transport errors, non-200 statuses, undecodable bodies and a false predicate
// all yield Unavailable. There are no retries.
func Fetch[T any](httpClient HTTPClient, req *http.Request, accept func(*T) bool) Outcome[T] {
	resp, err := httpClient.Do(req)
	if err != nil {
		return Unavailable[T](fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Unavailable[T](fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body)))
	}

	var payload T
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Unavailable[T](fmt.Errorf("%w: %v", ErrMalformedBody, err))
	}

	if accept != nil && !accept(&payload) {
		return Unavailable[T](ErrMarkerAbsent)
	}

	return Success(payload)
}

// FetchURL is Fetch for a plain URL using NewRequest.
func FetchURL[T any](ctx context.Context, httpClient HTTPClient, url string, accept func(*T) bool) Outcome[T] {
	req, err := NewRequest(ctx, url)
	if err != nil {
		return Unavailable[T](err)
	}
	return Fetch(httpClient, req, accept)
}
