// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog defines the roster and award catalog for an election.

# Catalog

A Catalog is immutable once built. It holds:

  - the roster: ordered, unique participant names
  - the awards: ordered, unique award identifiers (catalog order drives voting order)
  - restrictions: per-award sets of players who cannot be ranked for that award

Build one from a Definition, from a JSON file, or use the season default:

	cat := catalog.Default()

	cat, err := catalog.Load("catalog.json")

# JSON Format

	{
	  "roster": ["Cam", "Dope", "G"],
	  "awards": ["MVP", "Best Guard"],
	  "restrictions": {"Best Guard": ["Dope"]}
	}

# Validation

New rejects empty rosters or catalogs, duplicate names, names containing
commas (rankings are stored comma-separated), restrictions that name an
unknown award or player, and restrictions that would leave no candidates.
*/
package catalog
