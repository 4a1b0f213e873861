package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vilaca/portfolio-stats/internal/config"
)

// newFakeAPIs serves all four statistics endpoints. Codeforces user.status fails.
func newFakeAPIs(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/octo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":42,"public_repos":17,"followers":93}`))
	})
	mux.HandleFunc("GET /lc/knight", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","data":{"totalSolved":3,"easySolved":1,"mediumSolved":1,"hardSolved":1,"ranking":500}}`))
	})
	mux.HandleFunc("GET /cf/user.info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"OK","result":[{"rating":1957,"rank":"candidate master"}]}`))
	})
	mux.HandleFunc("GET /cf/user.status", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setSourceEnv(t *testing.T, baseURL string) {
	t.Setenv("GITHUB_URL", baseURL)
	t.Setenv("GITHUB_HANDLE", "octo")
	t.Setenv("LEETCODE_URL", baseURL+"/lc")
	t.Setenv("LEETCODE_HANDLE", "knight")
	t.Setenv("CODEFORCES_URL", baseURL+"/cf")
}

func TestSnapshotCommand_JSON(t *testing.T) {
	// Arrange
	server := newFakeAPIs(t)
	setSourceEnv(t, server.URL)

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetArgs([]string{"snapshot", "--json"})

	// Act
	err := root.Execute()

	// Assert
	require.NoError(t, err)

	var agg struct {
		StillLoading bool `json:"stillLoading"`
		Profile      struct {
			RepositoryCount int `json:"repositoryCount"`
			FollowerCount   int `json:"followerCount"`
		} `json:"profile"`
		LeetCode struct {
			TotalSolved int `json:"totalSolved"`
		} `json:"leetcode"`
		Codeforces struct {
			Rating    int    `json:"rating"`
			RankLabel string `json:"rankLabel"`
		} `json:"codeforces"`
		RecentSubmissions []struct {
			Label string `json:"label"`
		} `json:"recentSubmissions"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &agg))

	assert.False(t, agg.StillLoading)
	assert.Equal(t, 17, agg.Profile.RepositoryCount)
	assert.Equal(t, 93, agg.Profile.FollowerCount)
	assert.Equal(t, 3, agg.LeetCode.TotalSolved)
	assert.Equal(t, 1957, agg.Codeforces.Rating)
	assert.Equal(t, "candidate master", agg.Codeforces.RankLabel)
	require.Len(t, agg.RecentSubmissions, 3)
	assert.Equal(t, "Two Sum", agg.RecentSubmissions[0].Label)
}

func TestSnapshotCommand_Cards(t *testing.T) {
	server := newFakeAPIs(t)
	setSourceEnv(t, server.URL)

	out := &bytes.Buffer{}
	root := newRootCmd()
	root.SetOut(out)
	root.SetArgs([]string{"snapshot"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "candidate master")
	assert.Contains(t, out.String(), "Longest Substring")
}

func TestSnapshotCommand_InvalidConfig(t *testing.T) {
	t.Setenv("CODEFORCES_RECENT_SUBMISSIONS", "50")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"snapshot"})

	err := root.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestBuildServer_Routes(t *testing.T) {
	server := newFakeAPIs(t)
	setSourceEnv(t, server.URL)
	cfg, err := config.Load("")
	require.NoError(t, err)

	handler := buildServer(buildAggregator(cfg, zap.NewNop()), zap.NewNop())

	health := httptest.NewRecorder()
	handler.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, health.Code)

	stats := httptest.NewRecorder()
	handler.ServeHTTP(stats, httptest.NewRequest(http.MethodGet, "/api/stats", nil))
	require.Equal(t, http.StatusOK, stats.Code)
	assert.Contains(t, stats.Body.String(), `"codeforces-status":"fallback"`)
	assert.Contains(t, stats.Body.String(), `"github-profile":"live"`)
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCmd()

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "snapshot")
}
