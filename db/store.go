// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/season-awards/ballot"
	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

// Store is an append-only record store for votes and feedback.
// Records are never updated or deleted.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// AppendVote stores a vote, filling in ID and Timestamp when empty
func (s *Store) AppendVote(ctx context.Context, vote models.Vote) (models.Vote, error) {
	vote = prepareVote(vote)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, voter_name, award, rankings, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, vote.ID, vote.VoterName, string(vote.Award), ballot.EncodeRanking(vote.Rankings), vote.Timestamp.UnixMilli())
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}
	return vote, nil
}

// AppendVotes stores votes in a single transaction
func (s *Store) AppendVotes(ctx context.Context, votes []models.Vote) ([]models.Vote, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stored := make([]models.Vote, len(votes))
	for i, vote := range votes {
		vote = prepareVote(vote)
		_, err := tx.ExecContext(ctx, `
			INSERT INTO vote (id, voter_name, award, rankings, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, vote.ID, vote.VoterName, string(vote.Award), ballot.EncodeRanking(vote.Rankings), vote.Timestamp.UnixMilli())
		if err != nil {
			return nil, fmt.Errorf("failed to insert vote %d: %w", i, err)
		}
		stored[i] = vote
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit votes: %w", err)
	}
	return stored, nil
}

// newID returns a time-ordered UUID so records written in the same
// millisecond still list in insertion order
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func prepareVote(vote models.Vote) models.Vote {
	if vote.ID == "" {
		vote.ID = newID()
	}
	if vote.Timestamp.IsZero() {
		vote.Timestamp = time.Now()
	}
	// Stored with millisecond precision
	vote.Timestamp = time.UnixMilli(vote.Timestamp.UnixMilli())
	return vote
}

// ListVotes returns every vote, oldest first
func (s *Store) ListVotes(ctx context.Context) ([]models.Vote, error) {
	return s.queryVotes(ctx, `
		SELECT id, voter_name, award, rankings, created_at
		FROM vote
		ORDER BY created_at, id
	`)
}

// ListVotesByVoter returns the voter's votes, oldest first
func (s *Store) ListVotesByVoter(ctx context.Context, voter string) ([]models.Vote, error) {
	return s.queryVotes(ctx, `
		SELECT id, voter_name, award, rankings, created_at
		FROM vote
		WHERE voter_name = $1
		ORDER BY created_at, id
	`, voter)
}

// ListVotesByAward returns every vote for award, oldest first
func (s *Store) ListVotesByAward(ctx context.Context, award catalog.Award) ([]models.Vote, error) {
	return s.queryVotes(ctx, `
		SELECT id, voter_name, award, rankings, created_at
		FROM vote
		WHERE award = $1
		ORDER BY created_at, id
	`, string(award))
}

func (s *Store) queryVotes(ctx context.Context, query string, args ...any) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	votes := []models.Vote{}
	for rows.Next() {
		var v models.Vote
		var award, rankings string
		var createdAt int64
		if err := rows.Scan(&v.ID, &v.VoterName, &award, &rankings, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.Award = catalog.Award(award)
		v.Rankings = ballot.DecodeRanking(rankings)
		v.Timestamp = time.UnixMilli(createdAt)
		votes = append(votes, v)
	}

	return votes, rows.Err()
}

// CountVotes returns the number of stored votes
func (s *Store) CountVotes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vote`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count votes: %w", err)
	}
	return count, nil
}

// AppendFeedback stores feedback, filling in ID and Timestamp when empty
func (s *Store) AppendFeedback(ctx context.Context, fb models.Feedback) (models.Feedback, error) {
	if fb.ID == "" {
		fb.ID = newID()
	}
	if fb.Timestamp.IsZero() {
		fb.Timestamp = time.Now()
	}
	fb.Timestamp = time.UnixMilli(fb.Timestamp.UnixMilli())

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO feedback (id, voter_name, target_player, strength, improvement, growth, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, fb.ID, fb.VoterName, fb.TargetPlayer, fb.Strength, fb.Improvement, fb.Growth, fb.Timestamp.UnixMilli())
	if err != nil {
		return models.Feedback{}, fmt.Errorf("failed to insert feedback: %w", err)
	}
	return fb, nil
}

// ListFeedback returns all feedback, oldest first
func (s *Store) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	return s.queryFeedback(ctx, `
		SELECT id, voter_name, target_player, strength, improvement, growth, created_at
		FROM feedback
		ORDER BY created_at, id
	`)
}

// ListFeedbackFor returns feedback received by target, oldest first
func (s *Store) ListFeedbackFor(ctx context.Context, target string) ([]models.Feedback, error) {
	return s.queryFeedback(ctx, `
		SELECT id, voter_name, target_player, strength, improvement, growth, created_at
		FROM feedback
		WHERE target_player = $1
		ORDER BY created_at, id
	`, target)
}

func (s *Store) queryFeedback(ctx context.Context, query string, args ...any) ([]models.Feedback, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		var fb models.Feedback
		var createdAt int64
		if err := rows.Scan(&fb.ID, &fb.VoterName, &fb.TargetPlayer, &fb.Strength, &fb.Improvement, &fb.Growth, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		fb.Timestamp = time.UnixMilli(createdAt)
		feedback = append(feedback, fb)
	}

	return feedback, rows.Err()
}
