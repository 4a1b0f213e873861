package leetcode

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vilaca/portfolio-stats/internal/api"
)

const (
	DefaultBaseURL = "https://leetcode-stats-api.herokuapp.com"
	DefaultHandle  = "Mtauqeer7770"

	// statusSuccess is the success token of the stats API.
	statusSuccess = "success"
)

// Client fetches solved-problem statistics from the LeetCode stats API.
type Client struct {
	baseURL    string
	handle     string
	httpClient api.HTTPClient
}

// NewClient creates a new LeetCode stats client.
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

// FetchStats retrieves the stats document.
// The response counts as a success only if status is "success" and data is present.
func (c *Client) FetchStats(ctx context.Context) api.Outcome[StatsResponse] {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(c.handle))

	return api.FetchURL(ctx, c.httpClient, endpoint, func(r *StatsResponse) bool {
		return r.Status == statusSuccess && r.Data != nil
	})
}

// StatsResponse is the envelope returned by the stats API.
type StatsResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    *Stats `json:"data"`
}

// Stats holds solved counts bucketed by difficulty and the global ranking.
type Stats struct {
	TotalSolved  *int `json:"totalSolved"`
	EasySolved   *int `json:"easySolved"`
	MediumSolved *int `json:"mediumSolved"`
	HardSolved   *int `json:"hardSolved"`
	Ranking      *int `json:"ranking"`
}
