package github

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/vilaca/portfolio-stats/internal/api"
)

// mockHTTPClient is a test double for api.HTTPClient.
type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

// TestFetchUser tests retrieving the user document from GitHub.
// Follows AAA (Arrange, Act, Assert) pattern.
func TestFetchUser(t *testing.T) {
	// Arrange
	responseBody := `{"id": 42, "login": "octo", "public_repos": 17, "followers": 93}`

	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			// Verify request setup
			if req.URL.String() != "https://api.github.test/users/octo" {
				t.Errorf("unexpected URL %s", req.URL)
			}
			if req.Header.Get("Accept") != "application/vnd.github+json" {
				t.Errorf("expected GitHub Accept header, got %q", req.Header.Get("Accept"))
			}
			if req.Header.Get("Authorization") != "" {
				t.Error("expected unauthenticated request")
			}

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(responseBody)),
			}, nil
		},
	}

	client := NewClient(api.ClientConfig{
		BaseURL: "https://api.github.test",
		Handle:  "octo",
	}, mockHTTP)

	// Act
	out := client.FetchUser(context.Background())

	// Assert
	user, ok := out.Get()
	if !ok {
		t.Fatalf("expected success, got %v", out.Reason())
	}

	if user.PublicRepos == nil || *user.PublicRepos != 17 {
		t.Errorf("expected public_repos 17, got %v", user.PublicRepos)
	}

	if user.Followers == nil || *user.Followers != 93 {
		t.Errorf("expected followers 93, got %v", user.Followers)
	}
}

// TestFetchUser_MissingID tests that a document without an id is unavailable.
func TestFetchUser_MissingID(t *testing.T) {
	// Arrange
	mockHTTP := &mockHTTPClient{
		doFunc: func(req *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"message":"API rate limit exceeded"}`)),
			}, nil
		},
	}

	client := NewClient(api.ClientConfig{}, mockHTTP)

	// Act
	out := client.FetchUser(context.Background())

	// Assert
	if out.Available() {
		t.Fatal("expected unavailable outcome")
	}

	if !errors.Is(out.Reason(), api.ErrMarkerAbsent) {
		t.Errorf("expected marker-absent reason, got %v", out.Reason())
	}
}

// TestNewClient_Defaults tests that empty config falls back to the public API and owner handle.
func TestNewClient_Defaults(t *testing.T) {
	// Arrange & Act
	client := NewClient(api.ClientConfig{}, &mockHTTPClient{})

	// Assert
	if client.baseURL != DefaultBaseURL {
		t.Errorf("expected base URL %q, got %q", DefaultBaseURL, client.baseURL)
	}

	if client.handle != DefaultHandle {
		t.Errorf("expected handle %q, got %q", DefaultHandle, client.handle)
	}
}
