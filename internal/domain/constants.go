package domain

// Source identifies one external statistics API.
type Source string

// Source constants
const (
	// SourceGitHubProfile is the GitHub users API (repository and follower counts)
	SourceGitHubProfile Source = "github-profile"
	// SourceLeetCodeStats is the LeetCode stats API (solved counts and ranking)
	SourceLeetCodeStats Source = "leetcode-stats"
	// SourceCodeforcesInfo is the Codeforces user.info API (rating and rank)
	SourceCodeforcesInfo Source = "codeforces-info"
	// SourceCodeforcesStatus is the Codeforces user.status API (recent submissions)
	SourceCodeforcesStatus Source = "codeforces-status"
)

// AllSources lists every fetched source in a stable order.
var AllSources = []Source{
	SourceGitHubProfile,
	SourceLeetCodeStats,
	SourceCodeforcesInfo,
	SourceCodeforcesStatus,
}

// SourceStatus tells whether a source slice holds live data or its fallback record.
type SourceStatus string

const (
	StatusLive     SourceStatus = "live"
	StatusFallback SourceStatus = "fallback"
)
