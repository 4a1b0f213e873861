package domain

// ProfileSnapshot holds the identity-service counters shown on the portfolio.
// Fields are unknown when the payload omits them or the source is unavailable.
type ProfileSnapshot struct {
	RepositoryCount Count `json:"repositoryCount"`
	FollowerCount   Count `json:"followerCount"`
}
