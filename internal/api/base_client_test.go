package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockHTTPClient is a test double for HTTPClient.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func respond(status int, body string) *mockHTTPClient {
	return &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(bytes.NewBufferString(body)),
			}, nil
		},
	}
}

type payload struct {
	Status string `json:"status"`
	Value  int    `json:"value"`
}

func acceptOK(p *payload) bool { return p.Status == "OK" }

// TestFetchURL_Success tests that a body passing the predicate is returned.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestFetchURL_Success(t *testing.T) {
	// Arrange
	client := respond(http.StatusOK, `{"status":"OK","value":7}`)

	// Act
	out := FetchURL(context.Background(), client, "https://example.test/x", acceptOK)

	// Assert
	got, ok := out.Get()
	require.True(t, ok)
	assert.Equal(t, 7, got.Value)
	assert.NoError(t, out.Reason())
}

// TestFetchURL_Failures tests that every failure class collapses to Unavailable.
func TestFetchURL_Failures(t *testing.T) {
	tests := []struct {
		name   string
		client HTTPClient
		reason error
	}{
		{
			name: "transport error",
			client: &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			}},
		},
		{
			name:   "non-200 status",
			client: respond(http.StatusNotFound, `{"message":"Not Found"}`),
			reason: ErrUnexpectedStatus,
		},
		{
			name:   "non-JSON body",
			client: respond(http.StatusOK, `<html>rate limited</html>`),
			reason: ErrMalformedBody,
		},
		{
			name:   "success marker absent",
			client: respond(http.StatusOK, `{"status":"FAILED","value":7}`),
			reason: ErrMarkerAbsent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			out := FetchURL(context.Background(), tt.client, "https://example.test/x", acceptOK)

			// Assert
			got, ok := out.Get()
			assert.False(t, ok)
			assert.False(t, out.Available())
			assert.Equal(t, payload{}, got)
			require.Error(t, out.Reason())
			if tt.reason != nil {
				assert.ErrorIs(t, out.Reason(), tt.reason)
			}
		})
	}
}

// TestFetchURL_InvalidURL tests that an unbuildable request is unavailable rather than a panic.
func TestFetchURL_InvalidURL(t *testing.T) {
	client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
		t.Fatal("request must not be sent")
		return nil, nil
	}}

	out := FetchURL(context.Background(), client, "://bad url", acceptOK)

	assert.False(t, out.Available())
}

// TestNewRequest_Headers tests the shared request headers.
func TestNewRequest_Headers(t *testing.T) {
	req, err := NewRequest(context.Background(), "https://example.test/x")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, UserAgent, req.Header.Get("User-Agent"))
}
