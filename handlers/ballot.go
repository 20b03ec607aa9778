// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/season-awards/ballot"
	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/devicelock"
	"github.com/danielhkuo/season-awards/middleware"
	"github.com/danielhkuo/season-awards/models"
)

type BallotHandler struct {
	store *db.Store
	cat   *catalog.Catalog
	lock  *devicelock.Lock
}

func NewBallotHandler(store *db.Store, cat *catalog.Catalog, lock *devicelock.Lock) *BallotHandler {
	return &BallotHandler{store: store, cat: cat, lock: lock}
}

// GetCatalog handles GET /catalog
func (h *BallotHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	def := h.cat.Definition()
	resp := models.CatalogResponse{
		Roster: def.Roster,
		Awards: make([]models.AwardInfo, 0, len(def.Awards)),
	}
	for _, award := range def.Awards {
		resp.Awards = append(resp.Awards, models.AwardInfo{
			Award:      catalog.Award(award),
			Restricted: def.Restrictions[award],
		})
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// SelectVoter handles POST /session
func (h *BallotHandler) SelectVoter(w http.ResponseWriter, r *http.Request) {
	var req models.SelectVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Voter == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "voter is required")
		return
	}
	if !h.cat.IsPlayer(req.Voter) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}

	// Advisory only: the device cookie is never consulted when validating votes
	if err := h.lock.Check(r, req.Voter); err != nil {
		if errors.Is(err, devicelock.ErrDeviceBound) {
			middleware.ErrorResponse(w, http.StatusConflict, err.Error())
			return
		}
		slog.Error("failed to read device lock", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to select voter")
		return
	}

	votes, err := h.store.ListVotesByVoter(r.Context(), req.Voter)
	if err != nil {
		slog.Error("failed to load votes", "voter", req.Voter, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	progress := ballot.TrackProgress(h.cat, req.Voter, votes)
	resume, err := h.awardView(req.Voter, ballot.NewCursor(h.cat, req.Voter, votes))
	if err != nil {
		writeBallotError(w, err, "Failed to load progress")
		return
	}
	slog.Info("voter selected", "voter", req.Voter, "state", progress.State, "resume", resume.Award)

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		ProgressResponse: progress.ToResponse(),
		Resume:           resume,
	})
}

// GetProgress handles GET /voters/{voter}/progress
func (h *BallotHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	voter := r.PathValue("voter")
	if !h.cat.IsPlayer(voter) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}

	votes, err := h.store.ListVotesByVoter(r.Context(), voter)
	if err != nil {
		slog.Error("failed to load votes", "voter", voter, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, ballot.TrackProgress(h.cat, voter, votes).ToResponse())
}

// GetAward handles GET /voters/{voter}/awards/{award}
func (h *BallotHandler) GetAward(w http.ResponseWriter, r *http.Request) {
	voter := r.PathValue("voter")
	award := catalog.Award(r.PathValue("award"))
	if !h.cat.IsPlayer(voter) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}

	votes, err := h.store.ListVotesByVoter(r.Context(), voter)
	if err != nil {
		slog.Error("failed to load votes", "voter", voter, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load award")
		return
	}

	cursor, err := ballot.NewCursorAt(h.cat, voter, votes, award)
	if err != nil {
		writeBallotError(w, err, "Failed to load award")
		return
	}

	resp, err := h.awardView(voter, cursor)
	if err != nil {
		writeBallotError(w, err, "Failed to load award")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// awardView describes the cursor's current award for voter
func (h *BallotHandler) awardView(voter string, cursor *ballot.Cursor) (models.AwardViewResponse, error) {
	candidates, err := ballot.Eligible(h.cat, cursor.Current(), voter)
	if err != nil {
		return models.AwardViewResponse{}, err
	}

	resp := models.AwardViewResponse{
		Voter:      voter,
		Award:      cursor.Current(),
		Position:   cursor.Position(),
		Total:      h.cat.Size(),
		Candidates: candidates,
		Locked:     cursor.Locked(),
	}
	if prior, ok := cursor.PriorRanking(); ok {
		resp.PriorRanking = prior
	}
	if prev, ok := cursor.PreviousAward(); ok {
		resp.Previous = prev
	}
	if next, ok := cursor.NextAward(); ok {
		resp.Next = next
	}
	return resp, nil
}

// SubmitVote handles POST /voters/{voter}/awards/{award}/vote
func (h *BallotHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	voter := r.PathValue("voter")
	award := catalog.Award(r.PathValue("award"))

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	existing, err := h.store.ListVotesByVoter(r.Context(), voter)
	if err != nil {
		slog.Error("failed to load votes", "voter", voter, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	// Honest pre-check only. Concurrent sessions may both pass; the
	// integrity report finds the resulting duplicates.
	accepted, err := ballot.Validate(h.cat, award, voter, req.Rankings, existing)
	if err != nil {
		slog.Info("vote rejected", "voter", voter, "award", award, "error", err)
		writeBallotError(w, err, "Failed to submit vote")
		return
	}

	vote, err := h.store.AppendVote(r.Context(), models.Vote{
		VoterName: accepted.Voter,
		Award:     accepted.Award,
		Rankings:  accepted.Ranking,
	})
	if err != nil {
		slog.Error("failed to store vote", "voter", voter, "award", award, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote")
		return
	}

	if err := h.lock.Claim(w, r, voter); err != nil {
		// The vote is stored; the device flag is best effort
		slog.Warn("failed to claim device", "voter", voter, "error", err)
	}

	updated := append(existing, vote)
	progress := ballot.TrackProgress(h.cat, voter, updated)
	slog.Info("vote submitted", "voter", voter, "award", award, "done", progress.Done, "total", progress.Total)

	resp := models.SubmitVoteResponse{
		Vote:     vote,
		Progress: progress.ToResponse(),
	}

	cursor, err := ballot.NewCursorAt(h.cat, voter, existing, award)
	if err == nil {
		cursor.Refresh(updated)
		if cursor.Next() {
			if next, err := h.awardView(voter, cursor); err == nil {
				resp.NextAward = &next
			}
		}
	}

	middleware.JSONResponse(w, http.StatusCreated, resp)
}
