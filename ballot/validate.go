// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// Accepted is a ranking that passed validation and is ready to be stored
type Accepted struct {
	Voter   string
	Award   catalog.Award
	Ranking []string
}

// Validate checks a proposed ranking for (award, voter).
//
// existing is any snapshot of stored votes; only the voter's own votes
// for award are consulted. The check against existing votes is a
// best-effort guard: two sessions validating against the same snapshot
// can both pass, and the resulting duplicate is left for the integrity
// analyzer.
//
// Validate never writes. On success the caller persists the returned
// Accepted ranking.
func Validate(cat *catalog.Catalog, award catalog.Award, voter string, ranking []string, existing []models.Vote) (Accepted, error) {
	if !cat.IsPlayer(voter) {
		return Accepted{}, fmt.Errorf("%w: %q", ErrUnknownVoter, voter)
	}
	eligible, err := Eligible(cat, award, voter)
	if err != nil {
		return Accepted{}, err
	}

	if HasVoted(cat, existing, voter, award) {
		return Accepted{}, reject(ReasonDuplicate, ErrAlreadyVoted, "%s already has a vote for %q", voter, award)
	}

	seen := make(map[string]bool, len(ranking))
	for _, name := range ranking {
		if seen[name] {
			return Accepted{}, reject(ReasonIncomplete, ErrIncompleteRanking, "%s is ranked more than once", name)
		}
		seen[name] = true
	}

	eligibleSet := make(map[string]bool, len(eligible))
	for _, c := range eligible {
		eligibleSet[c] = true
	}
	for _, name := range ranking {
		if name == voter {
			return Accepted{}, reject(ReasonSelfVote, ErrSelfVote, "%s appears in their own ranking", voter)
		}
		if !eligibleSet[name] {
			return Accepted{}, reject(ReasonIneligible, ErrIneligibleCandidate, "%s cannot be ranked for %q", name, award)
		}
	}

	if len(ranking) != len(eligible) {
		var missing []string
		for _, c := range eligible {
			if !seen[c] {
				missing = append(missing, c)
			}
		}
		return Accepted{}, reject(ReasonIncomplete, ErrIncompleteRanking,
			"rank all %d eligible players (missing %s)", len(eligible), strings.Join(missing, ", "))
	}

	return Accepted{
		Voter:   voter,
		Award:   award,
		Ranking: append([]string(nil), ranking...),
	}, nil
}

// HasVoted reports whether votes holds a well-formed vote by voter for award
func HasVoted(cat *catalog.Catalog, votes []models.Vote, voter string, award catalog.Award) bool {
	for _, v := range votes {
		if v.VoterName == voter && v.Award == award && WellFormed(cat, v) {
			return true
		}
	}
	return false
}
