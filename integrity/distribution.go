// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package integrity

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// Appearance is one ranked position of a player on one ballot
type Appearance struct {
	Award    catalog.Award `json:"award"`
	Voter    string        `json:"voter"`
	Position int           `json:"position"` // 1-indexed
}

// PlayerStats counts how a roster member appears across all rankings
type PlayerStats struct {
	Player          string       `json:"player"`
	Appearances     int          `json:"appearances"`
	Awards          int          `json:"awards"` // distinct awards appeared in
	FirstPlace      int          `json:"first_place"`
	AveragePosition float64      `json:"average_position"` // 0 when never ranked
	Positions       []int        `json:"positions"`        // Positions[i] counts rankings at place i+1
	Details         []Appearance `json:"details"`
}

// VoterStats is how one voter ranked each roster member
type VoterStats struct {
	Voter   string `json:"voter"`
	Ballots int    `json:"ballots"`
	// AveragePosition maps each player this voter ranked to the mean
	// position they gave them
	AveragePosition map[string]float64 `json:"average_position"`
	TopPick         string             `json:"top_pick,omitempty"`
	TopPickCount    int                `json:"top_pick_count"`
}

type DistributionReport struct {
	Players []PlayerStats `json:"players"`
	Voters  []VoterStats  `json:"voters"`
	Summary string        `json:"summary"`
}

type voterTally struct {
	ballots int
	sum     map[string]int
	count   map[string]int
	first   map[string]int
}

// AnalyzeDistribution counts appearances per roster member and how each
// voter placed them. Names not on the roster are ignored.
func AnalyzeDistribution(cat *catalog.Catalog, votes []models.Vote) DistributionReport {
	roster := cat.Roster()
	index := make(map[string]int, len(roster))
	stats := make([]PlayerStats, len(roster))
	awards := make([]map[catalog.Award]bool, len(roster))
	positionSum := make([]int, len(roster))
	for i, p := range roster {
		index[p] = i
		stats[i].Player = p
		stats[i].Positions = []int{}
		stats[i].Details = []Appearance{}
		awards[i] = make(map[catalog.Award]bool)
	}

	byVoter := make(map[string]*voterTally)
	var voterOrder []string

	for _, v := range votes {
		vt, ok := byVoter[v.VoterName]
		if !ok {
			vt = &voterTally{sum: map[string]int{}, count: map[string]int{}, first: map[string]int{}}
			byVoter[v.VoterName] = vt
			voterOrder = append(voterOrder, v.VoterName)
		}
		vt.ballots++

		for pos, name := range v.Rankings {
			i, ok := index[name]
			if !ok {
				continue
			}
			s := &stats[i]
			s.Appearances++
			awards[i][v.Award] = true
			positionSum[i] += pos + 1
			for len(s.Positions) <= pos {
				s.Positions = append(s.Positions, 0)
			}
			s.Positions[pos]++
			s.Details = append(s.Details, Appearance{Award: v.Award, Voter: v.VoterName, Position: pos + 1})
			if pos == 0 {
				s.FirstPlace++
				vt.first[name]++
			}
			vt.sum[name] += pos + 1
			vt.count[name]++
		}
	}

	for i := range stats {
		stats[i].Awards = len(awards[i])
		if stats[i].Appearances > 0 {
			stats[i].AveragePosition = float64(positionSum[i]) / float64(stats[i].Appearances)
		}
	}

	voters := make([]VoterStats, 0, len(voterOrder))
	for _, name := range voterOrder {
		vt := byVoter[name]
		vs := VoterStats{
			Voter:           name,
			Ballots:         vt.ballots,
			AveragePosition: make(map[string]float64, len(vt.count)),
		}
		// Roster order breaks ties for the top pick
		for _, p := range roster {
			if n := vt.count[p]; n > 0 {
				vs.AveragePosition[p] = float64(vt.sum[p]) / float64(n)
			}
			if vt.first[p] > vs.TopPickCount {
				vs.TopPick, vs.TopPickCount = p, vt.first[p]
			}
		}
		voters = append(voters, vs)
	}

	return DistributionReport{
		Players: stats,
		Voters:  voters,
		Summary: distributionSummary(roster, stats, voters),
	}
}

func distributionSummary(roster []string, stats []PlayerStats, voters []VoterStats) string {
	var b strings.Builder
	b.WriteString("Vote Distribution Analysis:\n\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 1, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintln(tw, "Player\tTotal Votes\tUnique Awards\tFirst Place\tAvg Position\tBy Position\t")
	for _, s := range stats {
		avg := "N/A"
		if s.Appearances > 0 {
			avg = fmt.Sprintf("%.1f", s.AveragePosition)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\t%s\t\n", s.Player, s.Appearances, s.Awards, s.FirstPlace, avg, positionHistogram(s.Positions))
	}
	tw.Flush()

	if len(voters) == 0 {
		return b.String()
	}

	b.WriteString("\nAverage position given, by voter:\n\n")
	tw = tabwriter.NewWriter(&b, 0, 0, 1, ' ', tabwriter.AlignRight|tabwriter.Debug)
	fmt.Fprintf(tw, "Voter\tBallots\t%s\t\n", strings.Join(roster, "\t"))
	for _, v := range voters {
		cells := make([]string, len(roster))
		for i, p := range roster {
			cells[i] = "-"
			if avg, ok := v.AveragePosition[p]; ok {
				cells[i] = fmt.Sprintf("%.1f", avg)
			}
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", v.Voter, v.Ballots, strings.Join(cells, "\t"))
	}
	tw.Flush()

	b.WriteString("\nTop picks:\n\n")
	for _, v := range voters {
		if v.TopPick == "" {
			continue
		}
		fmt.Fprintf(&b, "• %s put %s first on %d of %s\n", v.Voter, v.TopPick, v.TopPickCount, english.Plural(v.Ballots, "ballot", ""))
	}

	return b.String()
}

// positionHistogram renders counts as "1st:2 2nd:1", skipping empty places
func positionHistogram(positions []int) string {
	var parts []string
	for i, n := range positions {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", humanize.Ordinal(i+1), n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}
