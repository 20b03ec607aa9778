// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"testing"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// testCatalog: players A, B, C, D; awards X, Y, Z; D cannot be ranked for X
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(catalog.Definition{
		Roster:       []string{"A", "B", "C", "D"},
		Awards:       []string{"X", "Y", "Z"},
		Restrictions: map[string][]string{"X": {"D"}},
	})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

func vote(voter string, award catalog.Award, rankings ...string) models.Vote {
	return models.Vote{VoterName: voter, Award: award, Rankings: rankings}
}

// permutations returns every ordering of names
func permutations(names []string) [][]string {
	if len(names) <= 1 {
		return [][]string{append([]string(nil), names...)}
	}
	var out [][]string
	for i := range names {
		rest := make([]string, 0, len(names)-1)
		rest = append(rest, names[:i]...)
		rest = append(rest, names[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]string{names[i]}, p...))
		}
	}
	return out
}
