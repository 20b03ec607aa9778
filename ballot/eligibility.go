// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"fmt"
	"sort"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// Eligible returns the candidates voter may rank for award: the roster
// minus the award's restriction minus the voter, sorted by name.
func Eligible(cat *catalog.Catalog, award catalog.Award, voter string) ([]string, error) {
	if !cat.HasAward(award) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAward, award)
	}

	candidates := make([]string, 0, cat.RosterSize())
	for _, player := range cat.Roster() {
		if player == voter || cat.IsRestricted(award, player) {
			continue
		}
		candidates = append(candidates, player)
	}
	sort.Strings(candidates)

	return candidates, nil
}

// WellFormed reports whether vote ranks exactly its voter's eligible
// candidates for its award, each once.
func WellFormed(cat *catalog.Catalog, vote models.Vote) bool {
	eligible, err := Eligible(cat, vote.Award, vote.VoterName)
	if err != nil || len(eligible) != len(vote.Rankings) {
		return false
	}

	remaining := make(map[string]bool, len(eligible))
	for _, c := range eligible {
		remaining[c] = true
	}
	for _, name := range vote.Rankings {
		if !remaining[name] {
			return false
		}
		delete(remaining, name)
	}
	return len(remaining) == 0
}
