// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// Cursor walks a voter through every award in catalog order, including
// awards already voted on so earlier rankings can be reviewed.
//
// A Cursor belongs to a single voter session and is not safe for
// concurrent use. It is never the source of truth for completion;
// rebuild it or call Refresh after new votes are stored.
type Cursor struct {
	cat    *catalog.Catalog
	voter  string
	pos    int
	prior  map[catalog.Award][]string
	locked map[catalog.Award]bool
}

// NewCursor positions a cursor at the voter's next unvoted award, or at
// the last award when everything is done.
func NewCursor(cat *catalog.Catalog, voter string, votes []models.Vote) *Cursor {
	c := &Cursor{cat: cat, voter: voter}
	c.Refresh(votes)

	progress := TrackProgress(cat, voter, votes)
	if progress.IsComplete() {
		c.pos = cat.Size() - 1
	} else {
		c.pos, _ = cat.Index(progress.Next)
	}
	return c
}

// NewCursorAt positions a cursor at award
func NewCursorAt(cat *catalog.Catalog, voter string, votes []models.Vote, award catalog.Award) (*Cursor, error) {
	pos, ok := cat.Index(award)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAward, award)
	}
	c := &Cursor{cat: cat, voter: voter, pos: pos}
	c.Refresh(votes)
	return c, nil
}

// Refresh reloads prior rankings from a new snapshot without moving
func (c *Cursor) Refresh(votes []models.Vote) {
	c.prior = make(map[catalog.Award][]string)
	c.locked = make(map[catalog.Award]bool)
	for _, v := range votes {
		if v.VoterName != c.voter || !c.cat.HasAward(v.Award) {
			continue
		}
		if _, ok := c.prior[v.Award]; !ok {
			c.prior[v.Award] = append([]string(nil), v.Rankings...)
		}
		if WellFormed(c.cat, v) {
			c.locked[v.Award] = true
		}
	}
}

func (c *Cursor) Current() catalog.Award {
	return c.cat.AwardAt(c.pos)
}

// Position returns the 1-indexed catalog position of the current award
func (c *Cursor) Position() int {
	return c.pos + 1
}

// Previous moves back one award. It reports false at the first award.
func (c *Cursor) Previous() bool {
	if c.pos == 0 {
		return false
	}
	c.pos--
	return true
}

// Next moves forward one award. It reports false at the last award.
func (c *Cursor) Next() bool {
	if c.pos >= c.cat.Size()-1 {
		return false
	}
	c.pos++
	return true
}

// PreviousAward returns the award before the current one without moving
func (c *Cursor) PreviousAward() (catalog.Award, bool) {
	peek := *c
	if !peek.Previous() {
		return "", false
	}
	return peek.Current(), true
}

// NextAward returns the award after the current one without moving
func (c *Cursor) NextAward() (catalog.Award, bool) {
	peek := *c
	if !peek.Next() {
		return "", false
	}
	return peek.Current(), true
}

// PriorRanking returns the voter's stored ranking for the current award.
// With duplicates, the first one in snapshot order wins.
func (c *Cursor) PriorRanking() ([]string, bool) {
	r, ok := c.prior[c.Current()]
	if !ok {
		return nil, false
	}
	return append([]string(nil), r...), true
}

// Locked reports whether the current award already has a vote and so
// cannot be submitted again.
func (c *Cursor) Locked() bool {
	return c.locked[c.Current()]
}
