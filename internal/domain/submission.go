package domain

// Verdict is the pass/fail outcome of a submission.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// Short returns the judge-style abbreviation shown next to a submission.
func (v Verdict) Short() string {
	if v == VerdictPass {
		return "AC"
	}
	return "WA"
}

// Submission is one recent-activity entry.
// Tag carries the problem rating, or NotAvailable for unrated problems.
type Submission struct {
	Label   string  `json:"label"`
	Tag     string  `json:"tag"`
	Verdict Verdict `json:"verdict"`
}

// SolvedProblem is an entry of the static LeetCode recent-solve list.
type SolvedProblem struct {
	Problem    string `json:"problem"`
	Difficulty string `json:"difficulty"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}
