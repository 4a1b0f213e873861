package domain

// LeetCodeStats is the fixed-shape record for the LeetCode stats source.
type LeetCodeStats struct {
	TotalSolved  int `json:"totalSolved"`
	EasySolved   int `json:"easySolved"`
	MediumSolved int `json:"mediumSolved"`
	HardSolved   int `json:"hardSolved"`
	Ranking      int `json:"ranking"`
}

// CodeforcesStats is the fixed-shape record for the Codeforces user.info source.
type CodeforcesStats struct {
	Rating       int    `json:"rating"`
	RankLabel    string `json:"rankLabel"`
	MaxRating    int    `json:"maxRating"`
	Contribution int    `json:"contribution"`
	// ContestCount is not part of user.info and stays unknown unless a payload carries it.
	ContestCount Count `json:"contestCount"`
}
