// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package integrity

import (
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

type Options struct {
	BulkWindow time.Duration
}

// Report combines all three checks over one snapshot of votes
type Report struct {
	TotalVotes   int                `json:"total_votes"`
	Voters       int                `json:"voters"`
	Awards       int                `json:"awards"`
	Duplicates   DuplicateReport    `json:"duplicates"`
	Distribution DistributionReport `json:"distribution"`
	Import       ImportReport       `json:"import"`
	Summary      string             `json:"summary"`
}

// Clean reports whether no duplicates and no import issues were found
func (r Report) Clean() bool {
	return r.Duplicates.DuplicateCount == 0 && len(r.Import.Findings) == 0
}

// Analyze runs every integrity check. It never modifies votes.
func Analyze(cat *catalog.Catalog, votes []models.Vote, opts Options) Report {
	voters := make(map[string]bool)
	awards := make(map[catalog.Award]bool)
	for _, v := range votes {
		voters[v.VoterName] = true
		awards[v.Award] = true
	}

	r := Report{
		TotalVotes:   len(votes),
		Voters:       len(voters),
		Awards:       len(awards),
		Duplicates:   FindDuplicates(votes),
		Distribution: AnalyzeDistribution(cat, votes),
		Import:       CheckImportIssues(cat, votes, opts.BulkWindow),
	}

	var b strings.Builder
	b.WriteString("COMPREHENSIVE VOTE ANALYSIS\n\n")
	fmt.Fprintf(&b, "Total votes: %d\nUnique voters: %d\nUnique awards: %d\n\n", r.TotalVotes, r.Voters, r.Awards)
	b.WriteString("DUPLICATE VOTES:\n")
	b.WriteString(r.Duplicates.Summary)
	b.WriteString("\nVOTE DISTRIBUTION:\n")
	b.WriteString(r.Distribution.Summary)
	b.WriteString("\nIMPORT CHECKS:\n")
	b.WriteString(r.Import.Summary)
	r.Summary = b.String()

	return r
}
