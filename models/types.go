package models

import (
	"time"

	"github.com/danielhkuo/season-awards/catalog"
)

// Progress state constants
const (
	StateNotStarted = "not_started"
	StateInProgress = "in_progress"
	StateComplete   = "complete"
)

// Domain types

// Vote is one voter's ranking for one award. Never updated once stored.
type Vote struct {
	ID        string        `json:"id"`
	VoterName string        `json:"voter_name"`
	Award     catalog.Award `json:"award"`
	Rankings  []string      `json:"rankings"`
	Timestamp time.Time     `json:"timestamp"`
}

type Feedback struct {
	ID           string    `json:"id"`
	VoterName    string    `json:"voter_name"`
	TargetPlayer string    `json:"target_player"`
	Strength     string    `json:"strength"`
	Improvement  string    `json:"improvement"`
	Growth       string    `json:"growth"`
	Timestamp    time.Time `json:"timestamp"`
}

// Request types

type SelectVoterRequest struct {
	Voter string `json:"voter"`
}

type SubmitVoteRequest struct {
	Rankings []string `json:"rankings"`
}

type SubmitFeedbackRequest struct {
	TargetPlayer string `json:"target_player"`
	Strength     string `json:"strength"`
	Improvement  string `json:"improvement"`
	Growth       string `json:"growth"`
}

// ImportVote is the bulk import format for existing votes.
// Timestamp is unix milliseconds; zero means "now".
type ImportVote struct {
	VoterName string   `json:"voterName"`
	Award     string   `json:"award"`
	Rankings  []string `json:"rankings"`
	Timestamp int64    `json:"timestamp,omitempty"`
}

// Response types

type AwardInfo struct {
	Award      catalog.Award `json:"award"`
	Restricted []string      `json:"restricted,omitempty"`
}

type CatalogResponse struct {
	Roster []string    `json:"roster"`
	Awards []AwardInfo `json:"awards"`
}

type ProgressResponse struct {
	Voter     string          `json:"voter"`
	State     string          `json:"state"`
	Done      int             `json:"done"`
	Total     int             `json:"total"`
	Next      catalog.Award   `json:"next,omitempty"`
	Completed []catalog.Award `json:"completed"`
	Remaining []catalog.Award `json:"remaining"`
}

type AwardViewResponse struct {
	Voter        string        `json:"voter"`
	Award        catalog.Award `json:"award"`
	Position     int           `json:"position"` // 1-indexed catalog position
	Total        int           `json:"total"`
	Candidates   []string      `json:"candidates"`
	PriorRanking []string      `json:"prior_ranking,omitempty"`
	Locked       bool          `json:"locked"`
	Previous     catalog.Award `json:"previous,omitempty"`
	Next         catalog.Award `json:"next,omitempty"`
}

// SessionResponse is the voter's progress plus the award to resume at
type SessionResponse struct {
	ProgressResponse
	Resume AwardViewResponse `json:"resume"`
}

type SubmitVoteResponse struct {
	Vote     Vote             `json:"vote"`
	Progress ProgressResponse `json:"progress"`
	// NextAward is the following award in catalog order, absent after the last
	NextAward *AwardViewResponse `json:"next_award,omitempty"`
}

type StandingResponse struct {
	Candidate string `json:"candidate"`
	Score     int    `json:"score"`
	Rank      int    `json:"rank"`
}

type AwardResultResponse struct {
	Award     catalog.Award      `json:"award"`
	VoteCount int                `json:"vote_count"`
	Standings []StandingResponse `json:"standings"`
}

type VotePointsResponse struct {
	VoteID    string `json:"vote_id"`
	Voter     string `json:"voter"`
	Candidate string `json:"candidate"`
	Position  int    `json:"position"`
	Points    int    `json:"points"`
}

type AwardDetailResponse struct {
	AwardResultResponse
	Breakdown []VotePointsResponse `json:"breakdown"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
