package codeforces

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/vilaca/portfolio-stats/internal/api"
)

const (
	DefaultBaseURL = "https://codeforces.com/api"
	DefaultHandle  = "pedrosa"
	// DefaultSubmissionCount is how many submissions user.status is asked for.
	DefaultSubmissionCount = 10

	// statusOK is the success token of every Codeforces API method.
	statusOK = "OK"
)

// Client talks to two Codeforces API methods: user.info and user.status.
// Each call is an independent source.
type Client struct {
	baseURL    string
	handle     string
	count      int
	httpClient api.HTTPClient
}

// NewClient creates a new Codeforces client. count is the user.status page size.
func NewClient(config api.ClientConfig, count int, httpClient api.HTTPClient) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	handle := config.Handle
	if handle == "" {
		handle = DefaultHandle
	}
	if count <= 0 {
		count = DefaultSubmissionCount
	}

	return &Client{
		baseURL:    baseURL,
		handle:     handle,
		count:      count,
		httpClient: httpClient,
	}
}

// FetchUserInfo calls user.info. Success requires status "OK" and a first result entry.
func (c *Client) FetchUserInfo(ctx context.Context) api.Outcome[UserInfoResponse] {
	query := url.Values{}
	query.Set("handles", c.handle)
	endpoint := fmt.Sprintf("%s/user.info?%s", c.baseURL, query.Encode())

	return api.FetchURL(ctx, c.httpClient, endpoint, func(r *UserInfoResponse) bool {
		return r.Status == statusOK && len(r.Result) > 0
	})
}

// FetchSubmissions calls user.status. Success requires status "OK" and a result array.
// Submissions come back newest first.
func (c *Client) FetchSubmissions(ctx context.Context) api.Outcome[StatusResponse] {
	query := url.Values{}
	query.Set("handle", c.handle)
	query.Set("count", strconv.Itoa(c.count))
	endpoint := fmt.Sprintf("%s/user.status?%s", c.baseURL, query.Encode())

	return api.FetchURL(ctx, c.httpClient, endpoint, func(r *StatusResponse) bool {
		return r.Status == statusOK && r.Result != nil
	})
}

// Codeforces API response types
type UserInfoResponse struct {
	Status  string     `json:"status"`
	Comment string     `json:"comment"`
	Result  []UserInfo `json:"result"`
}

type UserInfo struct {
	Handle       string `json:"handle"`
	Rating       *int   `json:"rating"`
	MaxRating    *int   `json:"maxRating"`
	Rank         string `json:"rank"`
	Contribution *int   `json:"contribution"`
}

type StatusResponse struct {
	Status  string              `json:"status"`
	Comment string              `json:"comment"`
	Result  []SubmissionPayload `json:"result"`
}

type SubmissionPayload struct {
	ID      int64   `json:"id"`
	Problem Problem `json:"problem"`
	Verdict string  `json:"verdict"`
}

type Problem struct {
	ContestID int    `json:"contestId"`
	Index     string `json:"index"`
	Name      string `json:"name"`
	Rating    *int   `json:"rating"`
}
