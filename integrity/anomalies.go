// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package integrity

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// DefaultBulkWindow is the span under which a whole vote collection is
// treated as a bulk import rather than organic voting
const DefaultBulkWindow = time.Hour

type FindingKind string

const (
	// A voter has more votes than there are awards
	FindingExcessVotes FindingKind = "excess_votes"
	// Every vote was created within the bulk window
	FindingBulkWindow FindingKind = "bulk_window"
	// The same voter, award and ranking were stored more than once
	FindingExactDuplicate FindingKind = "exact_duplicate"
	// One voter has different rankings stored for the same award
	FindingConflictingDuplicate FindingKind = "conflicting_duplicate"
)

type Finding struct {
	Kind           FindingKind   `json:"kind"`
	Voter          string        `json:"voter,omitempty"`
	Award          catalog.Award `json:"award,omitempty"`
	Count          int           `json:"count"`
	Message        string        `json:"message"`
	Recommendation string        `json:"recommendation"`
}

type ImportReport struct {
	Findings []Finding `json:"findings"`
	Summary  string    `json:"summary"`
}

// CheckImportIssues looks for signs that votes were imported or replayed.
// A window of zero or less uses DefaultBulkWindow. The bulk window check
// needs at least two votes: a single vote is never reported as bulk.
func CheckImportIssues(cat *catalog.Catalog, votes []models.Vote, window time.Duration) ImportReport {
	if window <= 0 {
		window = DefaultBulkWindow
	}

	findings := []Finding{}
	findings = append(findings, excessVotes(cat, votes)...)
	if f, ok := bulkWindow(votes, window); ok {
		findings = append(findings, f)
	}
	findings = append(findings, exactDuplicates(votes)...)
	findings = append(findings, conflictingDuplicates(votes)...)

	return ImportReport{
		Findings: findings,
		Summary:  importSummary(findings),
	}
}

func excessVotes(cat *catalog.Catalog, votes []models.Vote) []Finding {
	counts := make(map[string]int)
	var order []string
	for _, v := range votes {
		if _, ok := counts[v.VoterName]; !ok {
			order = append(order, v.VoterName)
		}
		counts[v.VoterName]++
	}

	var findings []Finding
	for _, voter := range order {
		n := counts[voter]
		if n <= cat.Size() {
			continue
		}
		findings = append(findings, Finding{
			Kind:           FindingExcessVotes,
			Voter:          voter,
			Count:          n,
			Message:        fmt.Sprintf("%s has %s (more than the %d awards)", voter, english.Plural(n, "vote", ""), cat.Size()),
			Recommendation: fmt.Sprintf("Check for duplicate imports of %s's data", voter),
		})
	}
	return findings
}

func bulkWindow(votes []models.Vote, window time.Duration) (Finding, bool) {
	if len(votes) < 2 {
		return Finding{}, false
	}

	first, last := votes[0].Timestamp, votes[0].Timestamp
	for _, v := range votes[1:] {
		if v.Timestamp.Before(first) {
			first = v.Timestamp
		}
		if v.Timestamp.After(last) {
			last = v.Timestamp
		}
	}
	if last.Sub(first) >= window {
		return Finding{}, false
	}

	span := "within the same second"
	if last.Sub(first) >= time.Second {
		span = "within " + humanize.RelTime(first, last, "", "")
	}

	return Finding{
		Kind:           FindingBulkWindow,
		Count:          len(votes),
		Message:        fmt.Sprintf("All %d votes were created %s (possible bulk import)", len(votes), strings.TrimSpace(span)),
		Recommendation: "Verify that votes weren't imported multiple times",
	}, true
}

func exactDuplicates(votes []models.Vote) []Finding {
	type key struct {
		voterAward
		ranking string
	}

	counts := make(map[key]int)
	var order []key
	for _, v := range votes {
		k := key{voterAward{v.VoterName, v.Award}, rankingKey(v.Rankings)}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	var findings []Finding
	for _, k := range order {
		n := counts[k]
		if n < 2 {
			continue
		}
		findings = append(findings, Finding{
			Kind:           FindingExactDuplicate,
			Voter:          k.voter,
			Award:          k.award,
			Count:          n,
			Message:        fmt.Sprintf("Exact duplicate found: %s has %d identical votes for %q", k.voter, n, k.award),
			Recommendation: fmt.Sprintf("Remove %s for %s in %s", english.Plural(n-1, "duplicate vote", ""), k.voter, k.award),
		})
	}
	return findings
}

func conflictingDuplicates(votes []models.Vote) []Finding {
	var findings []Finding
	for _, g := range FindDuplicates(votes).Groups {
		if g.Kind != DuplicateConflicting {
			continue
		}
		findings = append(findings, Finding{
			Kind:           FindingConflictingDuplicate,
			Voter:          g.Voter,
			Award:          g.Award,
			Count:          len(g.Votes),
			Message:        fmt.Sprintf("Conflicting votes: %s has %d different rankings for %q", g.Voter, g.Rankings, g.Award),
			Recommendation: fmt.Sprintf("Ask %s which ranking for %s is current and remove the others", g.Voter, g.Award),
		})
	}
	return findings
}

func importSummary(findings []Finding) string {
	if len(findings) == 0 {
		return "No data import issues found.\n"
	}

	var b strings.Builder
	b.WriteString("Data import issues:\n\n")
	for _, f := range findings {
		fmt.Fprintf(&b, "• %s\n", f.Message)
	}
	b.WriteString("\nRecommendations:\n\n")
	for _, f := range findings {
		fmt.Fprintf(&b, "• %s\n", f.Recommendation)
	}
	return b.String()
}
