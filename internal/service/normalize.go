package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vilaca/portfolio-stats/internal/api"
	"github.com/vilaca/portfolio-stats/internal/api/codeforces"
	"github.com/vilaca/portfolio-stats/internal/api/github"
	"github.com/vilaca/portfolio-stats/internal/api/leetcode"
	"github.com/vilaca/portfolio-stats/internal/domain"
)

const (
	// MinRecentSubmissions and MaxRecentSubmissions bound the recent activity list.
	MinRecentSubmissions = 5
	MaxRecentSubmissions = 10

	// codeforcesAccepted is the verdict Codeforces uses for a passing submission.
	codeforcesAccepted = "OK"
)

// Normalizers are total: every input, including an unavailable outcome or a payload
// missing fields, yields a complete record. The status says which one was used.

// NormalizeProfile maps a GitHub user into a ProfileSnapshot.
// Absent counters stay unknown; the record is still live.
func NormalizeProfile(out api.Outcome[github.User]) (domain.ProfileSnapshot, domain.SourceStatus) {
	user, ok := out.Get()
	if !ok {
		return FallbackProfile(), domain.StatusFallback
	}

	return domain.ProfileSnapshot{
		RepositoryCount: domain.CountFrom(user.PublicRepos),
		FollowerCount:   domain.CountFrom(user.Followers),
	}, domain.StatusLive
}

// NormalizeLeetCode maps a stats response into LeetCodeStats.
// A data object missing any counter is malformed.
func NormalizeLeetCode(out api.Outcome[leetcode.StatsResponse]) (domain.LeetCodeStats, domain.SourceStatus) {
	resp, ok := out.Get()
	if !ok || resp.Data == nil {
		return FallbackLeetCode(), domain.StatusFallback
	}

	d := resp.Data
	if d.TotalSolved == nil || d.EasySolved == nil || d.MediumSolved == nil || d.HardSolved == nil || d.Ranking == nil {
		return FallbackLeetCode(), domain.StatusFallback
	}

	return domain.LeetCodeStats{
		TotalSolved:  *d.TotalSolved,
		EasySolved:   *d.EasySolved,
		MediumSolved: *d.MediumSolved,
		HardSolved:   *d.HardSolved,
		Ranking:      *d.Ranking,
	}, domain.StatusLive
}

// NormalizeCodeforces maps result[0] of user.info into CodeforcesStats.
// Unrated users (no rating or rank) are malformed for display purposes.
func NormalizeCodeforces(out api.Outcome[codeforces.UserInfoResponse]) (domain.CodeforcesStats, domain.SourceStatus) {
	resp, ok := out.Get()
	if !ok || len(resp.Result) == 0 {
		return FallbackCodeforces(), domain.StatusFallback
	}

	info := resp.Result[0]
	rank := strings.TrimSpace(info.Rank)
	if info.Rating == nil || rank == "" {
		return FallbackCodeforces(), domain.StatusFallback
	}

	stats := domain.CodeforcesStats{
		Rating:    *info.Rating,
		RankLabel: rank,
		MaxRating: *info.Rating,
	}
	if info.MaxRating != nil {
		stats.MaxRating = *info.MaxRating
	}
	if info.Contribution != nil {
		stats.Contribution = *info.Contribution
	}

	return stats, domain.StatusLive
}

// NormalizeSubmissions maps user.status results into at most limit entries, keeping source order.
// Entries without any problem identity are skipped; an empty result is malformed.
func NormalizeSubmissions(out api.Outcome[codeforces.StatusResponse], limit int) ([]domain.Submission, domain.SourceStatus) {
	resp, ok := out.Get()
	if !ok {
		return FallbackSubmissions(), domain.StatusFallback
	}

	limit = clampRecent(limit)
	entries := make([]domain.Submission, 0, limit)
	for _, s := range resp.Result {
		if len(entries) == limit {
			break
		}

		label := submissionLabel(s.Problem)
		if label == "" {
			continue
		}

		entries = append(entries, domain.Submission{
			Label:   label,
			Tag:     ratingTag(s.Problem.Rating),
			Verdict: convertVerdict(s.Verdict),
		})
	}

	if len(entries) == 0 {
		return FallbackSubmissions(), domain.StatusFallback
	}

	return entries, domain.StatusLive
}

// submissionLabel prefers the problem name and falls back to "Problem <index>".
func submissionLabel(p codeforces.Problem) string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	if p.Index != "" {
		return fmt.Sprintf("Problem %s", p.Index)
	}
	return ""
}

func ratingTag(rating *int) string {
	if rating == nil {
		return domain.NotAvailable
	}
	return strconv.Itoa(*rating)
}

func convertVerdict(verdict string) domain.Verdict {
	if verdict == codeforcesAccepted {
		return domain.VerdictPass
	}
	return domain.VerdictFail
}

func clampRecent(limit int) int {
	if limit < MinRecentSubmissions {
		return MinRecentSubmissions
	}
	if limit > MaxRecentSubmissions {
		return MaxRecentSubmissions
	}
	return limit
}
