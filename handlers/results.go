// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/season-awards/ballot"
	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/middleware"
	"github.com/danielhkuo/season-awards/models"
)

type ResultsHandler struct {
	store *db.Store
	cat   *catalog.Catalog
}

func NewResultsHandler(store *db.Store, cat *catalog.Catalog) *ResultsHandler {
	return &ResultsHandler{store: store, cat: cat}
}

// GetResults handles GET /results
// Only candidates with points are listed.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	votes, err := h.store.ListVotes(r.Context())
	if err != nil {
		slog.Error("failed to load votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	results := ballot.TallyAll(h.cat, votes)
	resp := make([]models.AwardResultResponse, len(results))
	for i, res := range results {
		resp[i] = ballot.ToResponse(res.Award, res.VoteCount, ballot.Placed(res.Standings))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetAwardResults handles GET /results/{award}
func (h *ResultsHandler) GetAwardResults(w http.ResponseWriter, r *http.Request) {
	award := catalog.Award(r.PathValue("award"))
	if !h.cat.HasAward(award) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
		return
	}

	votes, err := h.store.ListVotesByAward(r.Context(), award)
	if err != nil {
		slog.Error("failed to load votes", "award", award, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute results")
		return
	}

	standings, err := ballot.Tally(h.cat, award, votes)
	if err != nil {
		writeBallotError(w, err, "Failed to compute results")
		return
	}
	breakdown, err := ballot.Breakdown(h.cat, award, votes)
	if err != nil {
		writeBallotError(w, err, "Failed to compute results")
		return
	}

	resp := models.AwardDetailResponse{
		AwardResultResponse: ballot.ToResponse(award, len(votes), standings),
		Breakdown:           make([]models.VotePointsResponse, len(breakdown)),
	}
	for i, p := range breakdown {
		resp.Breakdown[i] = models.VotePointsResponse{
			VoteID:    p.VoteID,
			Voter:     p.Voter,
			Candidate: p.Candidate,
			Position:  p.Position,
			Points:    p.Points,
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
