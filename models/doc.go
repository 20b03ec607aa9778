// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

Records held in the document store. Both are immutable once written:

  - Vote: voter_name, award, rankings (best to worst), timestamp
  - Feedback: voter_name, target_player, strength, improvement, growth

# Request Types

Types for parsing incoming JSON:

  - SelectVoterRequest: voter
  - SubmitVoteRequest: rankings
  - SubmitFeedbackRequest: target_player, strength, improvement, growth
  - ImportVote: voterName, award, rankings, timestamp (bulk import format)

# Response Types

Types for JSON responses:

  - ProgressResponse: state, done/total, next award, completed and remaining awards
  - AwardViewResponse: eligible candidates, prior ranking, navigation neighbours
  - SubmitVoteResponse: stored vote plus updated progress
  - AwardResultResponse / AwardDetailResponse: Borda standings and per-vote points
  - ImportResponse: imported
  - ErrorResponse: error, message

# Constants

Progress states:

	StateNotStarted = "not_started"
	StateInProgress = "in_progress"
	StateComplete   = "complete"
*/
package models
