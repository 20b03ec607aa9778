// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package integrity

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

type DuplicateKind string

const (
	// Every vote in the group has the same ranking
	DuplicateExact DuplicateKind = "exact"
	// The voter changed their mind or an import conflicts with a live vote
	DuplicateConflicting DuplicateKind = "conflicting"
)

// DuplicateGroup is every vote one voter cast for one award, when there
// is more than one
type DuplicateGroup struct {
	Voter    string        `json:"voter"`
	Award    catalog.Award `json:"award"`
	Kind     DuplicateKind `json:"kind"`
	Rankings int           `json:"rankings"` // distinct rankings in the group
	Votes    []models.Vote `json:"votes"`
}

// Extra returns the number of votes beyond the first
func (g DuplicateGroup) Extra() int {
	return len(g.Votes) - 1
}

type DuplicateReport struct {
	Groups         []DuplicateGroup `json:"groups"`
	DuplicateCount int              `json:"duplicate_count"`
	Summary        string           `json:"summary"`
}

type voterAward struct {
	voter string
	award catalog.Award
}

// rankingKey joins names on NUL, which never appears in a name, so that
// ["A, B"] and ["A", "B"] stay distinct
func rankingKey(rankings []string) string {
	return strings.Join(rankings, "\x00")
}

func distinctRankings(votes []models.Vote) int {
	seen := make(map[string]bool, len(votes))
	for _, v := range votes {
		seen[rankingKey(v.Rankings)] = true
	}
	return len(seen)
}

// FindDuplicates groups votes by (voter, award) and reports every group
// with more than one vote, in order of first appearance.
func FindDuplicates(votes []models.Vote) DuplicateReport {
	groups := make(map[voterAward][]models.Vote)
	var order []voterAward
	for _, v := range votes {
		key := voterAward{voter: v.VoterName, award: v.Award}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], v)
	}

	report := DuplicateReport{Groups: []DuplicateGroup{}}
	for _, key := range order {
		if len(groups[key]) < 2 {
			continue
		}
		g := DuplicateGroup{Voter: key.voter, Award: key.award, Votes: groups[key]}
		g.Rankings = distinctRankings(g.Votes)
		g.Kind = DuplicateExact
		if g.Rankings > 1 {
			g.Kind = DuplicateConflicting
		}
		report.Groups = append(report.Groups, g)
		report.DuplicateCount += g.Extra()
	}
	report.Summary = duplicateSummary(report)

	return report
}

func duplicateSummary(r DuplicateReport) string {
	if r.DuplicateCount == 0 {
		return "No duplicate votes found.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %s:\n\n", english.Plural(r.DuplicateCount, "duplicate vote", ""))
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "• %s has %s for %q (%s)\n", g.Voter, english.Plural(len(g.Votes), "vote", ""), g.Award, g.Kind)
	}
	return b.String()
}
