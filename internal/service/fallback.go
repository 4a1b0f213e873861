package service

import "github.com/vilaca/portfolio-stats/internal/domain"

// Fallback records shown when a source is unavailable.
// They are frozen snapshots of the portfolio owner's profiles.

// FallbackProfile is shown when GitHub is unavailable: both counters unknown.
func FallbackProfile() domain.ProfileSnapshot {
	return domain.ProfileSnapshot{}
}

// FallbackLeetCode is the LeetCode Knight snapshot.
func FallbackLeetCode() domain.LeetCodeStats {
	return domain.LeetCodeStats{
		TotalSolved:  1874,
		EasySolved:   450,
		MediumSolved: 1200,
		HardSolved:   224,
		Ranking:      1874,
	}
}

// FallbackCodeforces is the Codeforces candidate master snapshot.
func FallbackCodeforces() domain.CodeforcesStats {
	return domain.CodeforcesStats{
		Rating:       1957,
		RankLabel:    "candidate master",
		MaxRating:    1957,
		Contribution: 25,
	}
}

// FallbackSubmissions returns a fresh copy of the three-entry recent submission list.
func FallbackSubmissions() []domain.Submission {
	return []domain.Submission{
		{Label: "Two Sum", Tag: "800", Verdict: domain.VerdictPass},
		{Label: "Add Two Numbers", Tag: "1000", Verdict: domain.VerdictPass},
		{Label: "Longest Substring", Tag: "1200", Verdict: domain.VerdictPass},
	}
}

// RecentSolved is the static LeetCode recent-solve list; the stats API has no such endpoint.
func RecentSolved() []domain.SolvedProblem {
	return []domain.SolvedProblem{
		{Problem: "Two Sum", Difficulty: "Easy", Status: "Accepted", Date: "2024-01-15"},
		{Problem: "Add Two Numbers", Difficulty: "Medium", Status: "Accepted", Date: "2024-01-14"},
		{Problem: "Longest Substring", Difficulty: "Medium", Status: "Accepted", Date: "2024-01-13"},
		{Problem: "Median of Arrays", Difficulty: "Hard", Status: "Accepted", Date: "2024-01-12"},
		{Problem: "Valid Parentheses", Difficulty: "Easy", Status: "Accepted", Date: "2024-01-11"},
	}
}

// FallbackAggregate is the aggregate with every source on its fallback record.
// It is what a view holds while still loading.
func FallbackAggregate() domain.Aggregate {
	return domain.Aggregate{
		Profile:           FallbackProfile(),
		LeetCode:          FallbackLeetCode(),
		Codeforces:        FallbackCodeforces(),
		RecentSubmissions: FallbackSubmissions(),
		RecentSolved:      RecentSolved(),
		Sources:           map[domain.Source]domain.SourceStatus{},
	}
}
