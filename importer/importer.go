// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/danielhkuo/season-awards/ballot"
	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/models"
)

var ErrInvalidImport = errors.New("invalid import")

// VoteAppender stores a batch of votes atomically
type VoteAppender interface {
	AppendVotes(ctx context.Context, votes []models.Vote) ([]models.Vote, error)
}

// Decode reads a JSON array of import records
func Decode(r io.Reader) ([]models.ImportVote, error) {
	var records []models.ImportVote
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	return records, nil
}

// Convert turns import records into votes. Voters and awards must be in
// the catalog. Rankings are taken as given: repeats and malformed
// rankings are left for the integrity checks to report.
func Convert(cat *catalog.Catalog, records []models.ImportVote, now time.Time) ([]models.Vote, error) {
	votes := make([]models.Vote, 0, len(records))
	for i, rec := range records {
		if !cat.IsPlayer(rec.VoterName) {
			return nil, fmt.Errorf("%w: record %d: %w: %q", ErrInvalidImport, i, ballot.ErrUnknownVoter, rec.VoterName)
		}
		award := catalog.Award(rec.Award)
		if !cat.HasAward(award) {
			return nil, fmt.Errorf("%w: record %d: %w: %q", ErrInvalidImport, i, ballot.ErrUnknownAward, rec.Award)
		}
		if len(rec.Rankings) == 0 {
			return nil, fmt.Errorf("%w: record %d: empty rankings", ErrInvalidImport, i)
		}

		// Normalize through the storage format
		rankings := ballot.DecodeRanking(ballot.EncodeRanking(rec.Rankings))
		if len(rankings) > cat.RosterSize() {
			return nil, fmt.Errorf("%w: record %d: %d rankings for a roster of %d", ErrInvalidImport, i, len(rankings), cat.RosterSize())
		}

		ts := now
		if rec.Timestamp != 0 {
			ts = time.UnixMilli(rec.Timestamp)
		}
		votes = append(votes, models.Vote{
			VoterName: rec.VoterName,
			Award:     award,
			Rankings:  rankings,
			Timestamp: ts,
		})
	}
	return votes, nil
}

// Import decodes, converts and stores votes from r in one batch.
// Nothing is stored if any record is invalid.
func Import(ctx context.Context, dst VoteAppender, cat *catalog.Catalog, r io.Reader) (int, error) {
	records, err := Decode(r)
	if err != nil {
		return 0, err
	}

	votes, err := Convert(cat, records, time.Now())
	if err != nil {
		return 0, err
	}
	if len(votes) == 0 {
		return 0, nil
	}

	stored, err := dst.AppendVotes(ctx, votes)
	if err != nil {
		return 0, fmt.Errorf("failed to store imported votes: %w", err)
	}

	slog.Info("votes imported", "count", len(stored))
	return len(stored), nil
}
