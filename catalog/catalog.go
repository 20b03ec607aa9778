// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Award identifies a single award category.
type Award string

// Definition is the serializable form of a Catalog
type Definition struct {
	Roster       []string            `json:"roster"`
	Awards       []string            `json:"awards"`
	Restrictions map[string][]string `json:"restrictions,omitempty"`
}

// Catalog is the fixed roster and award list for one election.
type Catalog struct {
	roster       []string
	awards       []Award
	restrictions map[Award]map[string]bool
	rosterIndex  map[string]int
	awardIndex   map[Award]int
}

// New validates a definition and builds a Catalog from it
func New(def Definition) (*Catalog, error) {
	if len(def.Roster) == 0 {
		return nil, fmt.Errorf("%w: roster is empty", ErrInvalidCatalog)
	}
	if len(def.Awards) == 0 {
		return nil, fmt.Errorf("%w: no awards defined", ErrInvalidCatalog)
	}

	c := &Catalog{
		roster:       make([]string, 0, len(def.Roster)),
		awards:       make([]Award, 0, len(def.Awards)),
		restrictions: make(map[Award]map[string]bool),
		rosterIndex:  make(map[string]int, len(def.Roster)),
		awardIndex:   make(map[Award]int, len(def.Awards)),
	}

	for _, name := range def.Roster {
		if err := checkName("player", name); err != nil {
			return nil, err
		}
		if _, dup := c.rosterIndex[name]; dup {
			return nil, fmt.Errorf("%w: duplicate player %q", ErrInvalidCatalog, name)
		}
		c.rosterIndex[name] = len(c.roster)
		c.roster = append(c.roster, name)
	}

	for _, name := range def.Awards {
		if err := checkName("award", name); err != nil {
			return nil, err
		}
		award := Award(name)
		if _, dup := c.awardIndex[award]; dup {
			return nil, fmt.Errorf("%w: duplicate award %q", ErrInvalidCatalog, name)
		}
		c.awardIndex[award] = len(c.awards)
		c.awards = append(c.awards, award)
	}

	for name, players := range def.Restrictions {
		award := Award(name)
		if _, ok := c.awardIndex[award]; !ok {
			return nil, fmt.Errorf("%w: restriction for unknown award %q", ErrInvalidCatalog, name)
		}
		set := make(map[string]bool, len(players))
		for _, p := range players {
			if _, ok := c.rosterIndex[p]; !ok {
				return nil, fmt.Errorf("%w: restriction for %q names unknown player %q", ErrInvalidCatalog, name, p)
			}
			set[p] = true
		}
		// A voter is also excluded, so at least two players must stay rankable
		if len(c.roster)-len(set) < 2 {
			return nil, fmt.Errorf("%w: restriction for %q leaves no candidates", ErrInvalidCatalog, name)
		}
		if len(set) > 0 {
			c.restrictions[award] = set
		}
	}

	return c, nil
}

func checkName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty %s name", ErrInvalidCatalog, kind)
	}
	if name != strings.TrimSpace(name) {
		return fmt.Errorf("%w: %s name %q has surrounding whitespace", ErrInvalidCatalog, kind, name)
	}
	if strings.Contains(name, ",") {
		return fmt.Errorf("%w: %s name %q contains a comma", ErrInvalidCatalog, kind, name)
	}
	return nil
}

// Load reads a JSON catalog definition from path
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return New(def)
}

// Roster returns a copy of the roster in its defined order
func (c *Catalog) Roster() []string {
	return append([]string(nil), c.roster...)
}

// RosterSize returns the number of participants
func (c *Catalog) RosterSize() int {
	return len(c.roster)
}

// Awards returns a copy of the awards in catalog order
func (c *Catalog) Awards() []Award {
	return append([]Award(nil), c.awards...)
}

// Size returns the number of awards
func (c *Catalog) Size() int {
	return len(c.awards)
}

func (c *Catalog) HasAward(award Award) bool {
	_, ok := c.awardIndex[award]
	return ok
}

func (c *Catalog) IsPlayer(name string) bool {
	_, ok := c.rosterIndex[name]
	return ok
}

// Index returns the catalog position of award
func (c *Catalog) Index(award Award) (int, bool) {
	i, ok := c.awardIndex[award]
	return i, ok
}

// AwardAt returns the award at catalog position i
func (c *Catalog) AwardAt(i int) Award {
	return c.awards[i]
}

// IsRestricted reports whether player cannot be ranked for award
func (c *Catalog) IsRestricted(award Award, player string) bool {
	return c.restrictions[award][player]
}

// Restriction returns the restricted players for award in roster order
func (c *Catalog) Restriction(award Award) []string {
	set := c.restrictions[award]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for _, p := range c.roster {
		if set[p] {
			out = append(out, p)
		}
	}
	return out
}

// Definition returns the serializable form of the catalog
func (c *Catalog) Definition() Definition {
	def := Definition{
		Roster: c.Roster(),
		Awards: make([]string, len(c.awards)),
	}
	for i, a := range c.awards {
		def.Awards[i] = string(a)
	}
	if len(c.restrictions) > 0 {
		def.Restrictions = make(map[string][]string, len(c.restrictions))
		for a := range c.restrictions {
			def.Restrictions[string(a)] = c.Restriction(a)
		}
	}
	return def
}
