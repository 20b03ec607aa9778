// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer loads votes collected outside the app (for example a
spreadsheet export) into the store.

# Format

A JSON array of records:

	[
	  {"voterName": "Cam", "award": "MVP", "rankings": ["Mark", "Ray", "Will"]},
	  {"voterName": "Dope", "award": "Best Shooter", "rankings": ["Justin", "G"], "timestamp": 1735689600000}
	]

timestamp is unix milliseconds and defaults to the import time.

# Validation

Voters and awards must exist in the catalog; anything else fails the
whole batch. Rankings are not checked against eligibility and duplicate
(voter, award) pairs are not rejected. Imports are the main source of
duplicates, and the integrity report is where they are surfaced.
*/
package importer
