package github

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vilaca/portfolio-stats/internal/api"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com"
	// DefaultHandle is the portfolio owner's GitHub login.
	DefaultHandle = "codeMaverick7770"
)

// Client fetches the public profile of one GitHub user.
// Only handles GitHub API communication; normalization happens elsewhere.
type Client struct {
	baseURL    string
	handle     string
	httpClient api.HTTPClient
}

// NewClient creates a new GitHub profile client.
func NewClient(config api.ClientConfig, httpClient api.HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	handle := config.Handle
	if handle == "" {
		handle = DefaultHandle
	}

	return &Client{
		baseURL:    baseURL,
		handle:     handle,
		httpClient: httpClient,
	}
}

// FetchUser retrieves the user document. The response counts as a success only if it has an id.
func (c *Client) FetchUser(ctx context.Context) api.Outcome[User] {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(c.handle))

	req, err := api.NewRequest(ctx, endpoint)
	if err != nil {
		return api.Unavailable[User](err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	return api.Fetch(c.httpClient, req, func(u *User) bool {
		return u.ID != nil
	})
}

// User is the subset of the GitHub user document the portfolio reads.
// Counters are pointers so that an absent field can be told apart from zero.
type User struct {
	ID          *int64 `json:"id"`
	Login       string `json:"login"`
	PublicRepos *int   `json:"public_repos"`
	Followers   *int   `json:"followers"`
}
