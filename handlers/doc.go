// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Season Awards API.

# Handler Types

Each handler is a struct holding the vote store and the award catalog:

  - BallotHandler: Voter selection, progress, award view and vote submission
  - ResultsHandler: Borda standings for all awards or one award
  - FeedbackHandler: Peer feedback submission and retrieval
  - AdminHandler: Integrity report and bulk import

Handlers are created via constructor functions:

	ballotHandler := handlers.NewBallotHandler(store, cat, lock)

# Voting Flow

	POST /session                             → SelectVoter (progress)
	GET  /voters/{voter}/awards/{award}       → GetAward (candidates, prior ranking)
	POST /voters/{voter}/awards/{award}/vote  → SubmitVote

A vote must rank every eligible candidate exactly once. Votes are never
updated: a second vote for the same award is rejected with 409 Conflict.
The check reads a snapshot of stored votes, so two sessions submitting at
once can both succeed. GET /admin/report finds such duplicates.

# Error Mapping

	400 Bad Request  incomplete ranking, ineligible candidate, self vote
	404 Not Found    unknown voter or award
	409 Conflict     already voted, or device bound to another voter

# Device Lock

The first accepted vote binds the device cookie to the voter. Selecting a
different voter on that device is refused. The lock is advisory and is
never consulted when validating a vote.

# Admin Routes

GET /admin/report and POST /admin/import require the X-Admin-Key header.
Imported votes are checked for known voters and awards only; duplicates
are kept for the report to surface.
*/
package handlers
