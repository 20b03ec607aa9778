// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"fmt"
)

// Catalog and roster lookups. These are configuration faults, not user input faults.
var (
	ErrUnknownAward = errors.New("unknown award")
	ErrUnknownVoter = errors.New("unknown voter")
)

// Ranking rejections. The caller re-prompts the voter on any of these.
var (
	ErrIneligibleCandidate = errors.New("ranking includes an ineligible candidate")
	ErrIncompleteRanking   = errors.New("ranking is incomplete")
	ErrSelfVote            = errors.New("you cannot rank yourself")
	ErrAlreadyVoted        = errors.New("already voted for this award")
)

// Reason classifies a rejected ranking
type Reason string

const (
	ReasonIncomplete Reason = "incomplete"
	ReasonIneligible Reason = "ineligible"
	ReasonSelfVote   Reason = "self_vote"
	// ReasonDuplicate means the voter already has a vote for the award
	ReasonDuplicate Reason = "duplicate"
)

// RejectionError is returned by Validate. It unwraps to one of the
// ranking sentinels above.
type RejectionError struct {
	Reason Reason
	Err    error
	Detail string
}

func (e *RejectionError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

func reject(reason Reason, err error, format string, args ...any) *RejectionError {
	return &RejectionError{
		Reason: reason,
		Err:    err,
		Detail: fmt.Sprintf(format, args...),
	}
}
