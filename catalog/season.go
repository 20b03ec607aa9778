// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

// Season award identifiers
const (
	MVP                 = Award("MVP")
	DefensePlayer       = Award("Defense Player")
	BestShooter         = Award("Best Shooter")
	SixthMan            = Award("Sixth Man")
	RookieOfTheYear     = Award("Rookie of the Year")
	BestTeammate        = Award("Best Teammate")
	BestForward         = Award("Best Forward")
	BestGuard           = Award("Best Guard")
	BestCenter          = Award("Best Center")
	BestDunker          = Award("Best Dunker")
	BestPasser          = Award("Best Passer")
	BestStealer         = Award("Best Stealer")
	BestBlocker         = Award("Best Blocker")
	BestScorer          = Award("Best Scorer")
	BestDefender        = Award("Best Defender")
	OffensivePlayer     = Award("Offensive Player")
	BestIQ              = Award("Best IQ")
	BestDecisionMaker   = Award("Best Decision Maker")
	FavoritePlayer      = Award("Favorite Player to Play With")
	WorstDecisionMaker  = Award("Worst Decision Maker")
	WorstShotTaker      = Award("Worst Shot Taker")
	WorstIQ             = Award("Worst IQ")
	WorstTeammate       = Award("Worst Teammate")
	WorstPasser         = Award("Worst Passer")
	WorstShooter        = Award("Worst Shooter")
	WorstStealer        = Award("Worst Stealer")
	WorstBlocker        = Award("Worst Blocker")
	WorstDefender       = Award("Worst Defender")
	MostImproved        = Award("Most Improved")
	MostLikelyToSucceed = Award("Most Likely to Succeed Following 2K")
	ShaqtinAFool        = Award("Shaqtin a Fool of the Year")
)

var seasonRoster = []string{
	"Cam", "Dope", "G", "Justin", "Kehlel", "Mandell", "Mark", "Ray", "Wes", "Will",
}

var seasonAwards = []Award{
	MVP, DefensePlayer, BestShooter, SixthMan, RookieOfTheYear, BestTeammate,
	BestForward, BestGuard, BestCenter, BestDunker, BestPasser, BestStealer,
	BestBlocker, BestScorer, BestDefender, OffensivePlayer, BestIQ,
	BestDecisionMaker, FavoritePlayer, WorstDecisionMaker, WorstShotTaker,
	WorstIQ, WorstTeammate, WorstPasser, WorstShooter, WorstStealer,
	WorstBlocker, WorstDefender, MostImproved, MostLikelyToSucceed, ShaqtinAFool,
}

// Position restrictions: these players are not eligible for the award
var seasonRestrictions = map[Award][]string{
	BestForward:     {"Mandell", "Dope", "Justin"},
	BestGuard:       {"Will", "Mark", "Dope"},
	BestCenter:      {"Will", "Mandell", "Kehlel", "G", "Justin"},
	SixthMan:        {"Wes", "Dope", "G"},
	RookieOfTheYear: {"Wes", "Dope", "G"},
}

// SeasonDefinition returns the definition of the default season catalog
func SeasonDefinition() Definition {
	def := Definition{
		Roster:       append([]string(nil), seasonRoster...),
		Awards:       make([]string, len(seasonAwards)),
		Restrictions: make(map[string][]string, len(seasonRestrictions)),
	}
	for i, a := range seasonAwards {
		def.Awards[i] = string(a)
	}
	for a, players := range seasonRestrictions {
		def.Restrictions[string(a)] = append([]string(nil), players...)
	}
	return def
}

// Default returns the season catalog. It panics if the built-in
// definition is invalid.
func Default() *Catalog {
	c, err := New(SeasonDefinition())
	if err != nil {
		panic(err)
	}
	return c
}
