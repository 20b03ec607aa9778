// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot implements ranked voting for a single election: who can be
ranked, whether a ranking is acceptable, how far a voter has got, and the
Borda tally.

Everything here is a pure function of a catalog and a snapshot of stored
votes. Nothing in this package writes to storage.

# Eligibility

	candidates, err := ballot.Eligible(cat, catalog.BestGuard, "Cam")

The roster minus the award's restricted players minus the voter, sorted
by name.

# Validation

	accepted, err := ballot.Validate(cat, award, voter, ranking, existingVotes)

Rejections are *RejectionError values and unwrap to ErrAlreadyVoted,
ErrIncompleteRanking, ErrSelfVote or ErrIneligibleCandidate. The
already-voted check runs first so a voter revisiting a finished award is
told so regardless of what they submitted.

# Progress

	progress := ballot.TrackProgress(cat, voter, votes)
	cursor := ballot.NewCursor(cat, voter, votes)

Progress is rebuilt from stored votes every time, which is what makes a
session resumable. Duplicate votes for an award count once. The Cursor
moves over every award (not just unvoted ones) and exposes the prior
ranking for review.

# Borda Count

	standings, err := ballot.Tally(cat, award, votes)

Position p (1-indexed) earns rosterSize - p points. Duplicate votes are
counted, which lets an administrator compare a raw tally with one computed
after cleanup. Equal scores share a rank and keep first-encountered order.

# Storage Format

Rankings are stored as a comma-separated string:

	ballot.EncodeRanking([]string{"Cam", "G"}) // "Cam, G"
	ballot.DecodeRanking("Cam, G")             // ["Cam", "G"]
*/
package ballot
