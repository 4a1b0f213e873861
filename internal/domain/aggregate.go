package domain

// Aggregate is the merged, ready-to-render snapshot consumed by presentation.
// Presentation treats it as read-only.
type Aggregate struct {
	Profile           ProfileSnapshot         `json:"profile"`
	LeetCode          LeetCodeStats           `json:"leetcode"`
	Codeforces        CodeforcesStats         `json:"codeforces"`
	RecentSubmissions []Submission            `json:"recentSubmissions"`
	RecentSolved      []SolvedProblem         `json:"recentSolved"`
	Sources           map[Source]SourceStatus `json:"sources"`
	StillLoading      bool                    `json:"stillLoading"`
}
