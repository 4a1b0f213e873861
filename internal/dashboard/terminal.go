package dashboard

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vilaca/portfolio-stats/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(0, 1)
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// TerminalRenderer prints the aggregate as a set of cards for the snapshot command.
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer.
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

// RenderStats writes the profile, judge and recent activity cards.
func (r *TerminalRenderer) RenderStats(w io.Writer, agg domain.Aggregate) error {
	if agg.StillLoading {
		_, err := fmt.Fprintln(w, mutedStyle.Render("loading statistics..."))
		return err
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		card("GitHub", [][2]string{
			{"Repositories", agg.Profile.RepositoryCount.String()},
			{"Followers", agg.Profile.FollowerCount.String()},
		}),
		card("LeetCode", [][2]string{
			{"Total Solved", strconv.Itoa(agg.LeetCode.TotalSolved)},
			{"Easy", strconv.Itoa(agg.LeetCode.EasySolved)},
			{"Medium", strconv.Itoa(agg.LeetCode.MediumSolved)},
			{"Hard", strconv.Itoa(agg.LeetCode.HardSolved)},
			{"Ranking", strconv.Itoa(agg.LeetCode.Ranking)},
		}),
		card("Codeforces", [][2]string{
			{"Rating", strconv.Itoa(agg.Codeforces.Rating)},
			{"Rank", agg.Codeforces.RankLabel},
			{"Max Rating", strconv.Itoa(agg.Codeforces.MaxRating)},
			{"Contests", agg.Codeforces.ContestCount.String()},
		}),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top,
		submissionsCard(agg.RecentSubmissions),
		solvedCard(agg.RecentSolved),
	)

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, top, bottom))
	return err
}

func card(title string, rows [][2]string) string {
	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	lines := []string{titleStyle.Render(title)}
	for _, row := range rows {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-*s", width, row[0]))+"  "+row[1])
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func submissionsCard(entries []domain.Submission) string {
	lines := []string{titleStyle.Render("Recent Codeforces Submissions")}
	for _, s := range entries {
		verdict := passStyle.Render(s.Verdict.Short())
		if s.Verdict != domain.VerdictPass {
			verdict = failStyle.Render(s.Verdict.Short())
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", verdict, s.Label, mutedStyle.Render(s.Tag)))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func solvedCard(entries []domain.SolvedProblem) string {
	lines := []string{titleStyle.Render("Recent LeetCode Solves")}
	for _, p := range entries {
		lines = append(lines, fmt.Sprintf("%s %s %s", p.Problem, labelStyle.Render(p.Difficulty), mutedStyle.Render(p.Date)))
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}
