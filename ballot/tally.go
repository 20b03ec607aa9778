// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// Standing is one candidate's Borda score for an award
type Standing struct {
	Candidate string
	Score     int
	Rank      int // 1-indexed; equal scores share a rank
}

// AwardResult is the tally for one award
type AwardResult struct {
	Award     catalog.Award
	VoteCount int
	Standings []Standing
}

// VotePoints is the contribution of one ranked position of one vote
type VotePoints struct {
	VoteID    string
	Voter     string
	Candidate string
	Position  int // 1-indexed
	Points    int
}

// Points returns the Borda points for a 1-indexed ranking position.
// The scale is anchored to the full roster so awards with smaller
// eligible pools stay comparable: last place earns rosterSize - length.
// Positions past the roster size, only possible in imported rankings,
// earn nothing.
func Points(rosterSize, position int) int {
	return max(rosterSize-position, 0)
}

// Tally computes Borda standings for award.
//
// Every vote for award counts, duplicates included. Every roster member
// starts at zero in roster order, and names off the roster follow in the
// order they were first ranked. Ties keep that order.
func Tally(cat *catalog.Catalog, award catalog.Award, votes []models.Vote) ([]Standing, error) {
	if !cat.HasAward(award) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAward, award)
	}

	rosterSize := cat.RosterSize()
	scores := make(map[string]int, rosterSize)
	order := cat.Roster()
	for _, player := range order {
		scores[player] = 0
	}

	for _, v := range votes {
		if v.Award != award {
			continue
		}
		for i, candidate := range v.Rankings {
			if _, seen := scores[candidate]; !seen {
				order = append(order, candidate)
			}
			scores[candidate] += Points(rosterSize, i+1)
		}
	}

	standings := make([]Standing, len(order))
	for i, candidate := range order {
		standings[i] = Standing{Candidate: candidate, Score: scores[candidate]}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	for i := range standings {
		if i > 0 && standings[i].Score == standings[i-1].Score {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}

	return standings, nil
}

// Placed drops candidates with no points
func Placed(standings []Standing) []Standing {
	placed := make([]Standing, 0, len(standings))
	for _, s := range standings {
		if s.Score > 0 {
			placed = append(placed, s)
		}
	}
	return placed
}

// TallyAll tallies every award in catalog order
func TallyAll(cat *catalog.Catalog, votes []models.Vote) []AwardResult {
	byAward := make(map[catalog.Award][]models.Vote)
	for _, v := range votes {
		byAward[v.Award] = append(byAward[v.Award], v)
	}

	results := make([]AwardResult, 0, cat.Size())
	for _, award := range cat.Awards() {
		// award comes from the catalog, so Tally cannot fail here
		standings, _ := Tally(cat, award, byAward[award])
		results = append(results, AwardResult{
			Award:     award,
			VoteCount: len(byAward[award]),
			Standings: standings,
		})
	}
	return results
}

// Breakdown lists the points each vote gave each candidate for award
func Breakdown(cat *catalog.Catalog, award catalog.Award, votes []models.Vote) ([]VotePoints, error) {
	if !cat.HasAward(award) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAward, award)
	}

	var rows []VotePoints
	for _, v := range votes {
		if v.Award != award {
			continue
		}
		for i, candidate := range v.Rankings {
			rows = append(rows, VotePoints{
				VoteID:    v.ID,
				Voter:     v.VoterName,
				Candidate: candidate,
				Position:  i + 1,
				Points:    Points(cat.RosterSize(), i+1),
			})
		}
	}
	return rows, nil
}

// ToResponse converts standings to their API form
func ToResponse(award catalog.Award, voteCount int, standings []Standing) models.AwardResultResponse {
	resp := models.AwardResultResponse{
		Award:     award,
		VoteCount: voteCount,
		Standings: make([]models.StandingResponse, len(standings)),
	}
	for i, s := range standings {
		resp.Standings[i] = models.StandingResponse{
			Candidate: s.Candidate,
			Score:     s.Score,
			Rank:      s.Rank,
		}
	}
	return resp
}
