// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// There is deliberately no UNIQUE (voter_name, award) on vote: duplicates
// are found after the fact by the integrity checks.
const schema = `
-- Votes
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    voter_name TEXT NOT NULL,
    award TEXT NOT NULL,
    rankings TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_voter_name ON vote(voter_name);
CREATE INDEX IF NOT EXISTS idx_vote_award ON vote(award);

-- Feedback
CREATE TABLE IF NOT EXISTS feedback (
    id TEXT PRIMARY KEY,
    voter_name TEXT NOT NULL,
    target_player TEXT NOT NULL,
    strength TEXT NOT NULL,
    improvement TEXT NOT NULL,
    growth TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_feedback_target_player ON feedback(target_player);
`
