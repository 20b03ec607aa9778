// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import "strings"

const rankingSeparator = ", "

// EncodeRanking converts a ranking to its stored form ("A, B, C")
func EncodeRanking(ranking []string) string {
	return strings.Join(ranking, rankingSeparator)
}

// DecodeRanking parses a stored ranking. Whitespace around names and
// empty entries are dropped.
func DecodeRanking(s string) []string {
	parts := strings.Split(s, ",")
	ranking := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ranking = append(ranking, p)
		}
	}
	return ranking
}
