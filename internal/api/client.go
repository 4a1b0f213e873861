package api

import (
	"errors"
	"net/http"
)

// HTTPClient interface for HTTP operations (allows mocking in tests).
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ClientConfig holds common configuration for statistics API clients.
type ClientConfig struct {
	BaseURL string
	Handle  string
}

var (
	// ErrUnexpectedStatus is returned when the API answers with a non-200 status.
	ErrUnexpectedStatus = errors.New("unexpected status")
	// ErrMalformedBody is returned when the body is not the expected JSON document.
	ErrMalformedBody = errors.New("malformed body")
	// ErrMarkerAbsent is returned when the body lacks the source's success marker.
	ErrMarkerAbsent = errors.New("success marker absent")
)

// Outcome is the tagged result of one fetch: either Success with a payload, or Unavailable.
// An unavailable outcome keeps the reason for logging only; consumers must not branch on it.
type Outcome[T any] struct {
	payload T
	ok      bool
	reason  error
}

// Success wraps a payload that passed the source's success predicate.
func Success[T any](payload T) Outcome[T] {
	return Outcome[T]{payload: payload, ok: true}
}

// Unavailable marks a source as unavailable for the given reason.
func Unavailable[T any](reason error) Outcome[T] {
	return Outcome[T]{reason: reason}
}

// Get returns the payload and whether the outcome is a success.
func (o Outcome[T]) Get() (T, bool) {
	return o.payload, o.ok
}

// Available reports whether the outcome carries a payload.
func (o Outcome[T]) Available() bool {
	return o.ok
}

// Reason returns why the source was unavailable, or nil on success.
func (o Outcome[T]) Reason() error {
	return o.reason
}
