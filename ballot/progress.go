// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// State is a voter's position in the voting flow
type State string

const (
	NotStarted State = models.StateNotStarted
	InProgress State = models.StateInProgress
	Complete   State = models.StateComplete
)

// Progress is derived from stored votes only. Duplicate votes for an
// award count once.
type Progress struct {
	Voter     string
	State     State
	Completed []catalog.Award // catalog order
	Remaining []catalog.Award // catalog order
	Next      catalog.Award   // empty when complete
	Done      int
	Total     int
}

// CompletedAwards returns the catalog awards voter has a well-formed vote for
func CompletedAwards(cat *catalog.Catalog, voter string, votes []models.Vote) map[catalog.Award]bool {
	done := make(map[catalog.Award]bool)
	for _, v := range votes {
		if v.VoterName != voter || done[v.Award] {
			continue
		}
		if WellFormed(cat, v) {
			done[v.Award] = true
		}
	}
	return done
}

// TrackProgress computes voter's progress through the catalog
func TrackProgress(cat *catalog.Catalog, voter string, votes []models.Vote) Progress {
	done := CompletedAwards(cat, voter, votes)

	p := Progress{
		Voter: voter,
		Total: cat.Size(),
	}
	for _, award := range cat.Awards() {
		if done[award] {
			p.Completed = append(p.Completed, award)
		} else {
			p.Remaining = append(p.Remaining, award)
		}
	}
	p.Done = len(p.Completed)

	switch {
	case len(p.Remaining) == 0:
		p.State = Complete
	case p.Done == 0:
		p.State = NotStarted
		p.Next = p.Remaining[0]
	default:
		p.State = InProgress
		p.Next = p.Remaining[0]
	}

	return p
}

// IsComplete reports whether every award has a vote
func (p Progress) IsComplete() bool {
	return p.State == Complete
}

// ToResponse converts progress to its API form
func (p Progress) ToResponse() models.ProgressResponse {
	resp := models.ProgressResponse{
		Voter:     p.Voter,
		State:     string(p.State),
		Done:      p.Done,
		Total:     p.Total,
		Next:      p.Next,
		Completed: p.Completed,
		Remaining: p.Remaining,
	}
	if resp.Completed == nil {
		resp.Completed = []catalog.Award{}
	}
	if resp.Remaining == nil {
		resp.Remaining = []catalog.Award{}
	}
	return resp
}
