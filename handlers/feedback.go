// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/middleware"
	"github.com/danielhkuo/season-awards/models"
)

type FeedbackHandler struct {
	store *db.Store
	cat   *catalog.Catalog
}

func NewFeedbackHandler(store *db.Store, cat *catalog.Catalog) *FeedbackHandler {
	return &FeedbackHandler{store: store, cat: cat}
}

// Submit handles POST /voters/{voter}/feedback
func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	voter := r.PathValue("voter")
	if !h.cat.IsPlayer(voter) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}

	var req models.SubmitFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.TargetPlayer == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target_player is required")
		return
	}
	if !h.cat.IsPlayer(req.TargetPlayer) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "target_player is not on the roster")
		return
	}
	if req.TargetPlayer == voter {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Cannot leave feedback for yourself")
		return
	}
	for _, f := range []struct{ name, value string }{
		{"strength", req.Strength},
		{"improvement", req.Improvement},
		{"growth", req.Growth},
	} {
		if strings.TrimSpace(f.value) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, f.name+" is required")
			return
		}
	}

	fb, err := h.store.AppendFeedback(r.Context(), models.Feedback{
		VoterName:    voter,
		TargetPlayer: req.TargetPlayer,
		Strength:     strings.TrimSpace(req.Strength),
		Improvement:  strings.TrimSpace(req.Improvement),
		Growth:       strings.TrimSpace(req.Growth),
	})
	if err != nil {
		slog.Error("failed to store feedback", "voter", voter, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit feedback")
		return
	}

	slog.Info("feedback submitted", "voter", voter, "target", fb.TargetPlayer)

	middleware.JSONResponse(w, http.StatusCreated, fb)
}

// ListFor handles GET /players/{player}/feedback
func (h *FeedbackHandler) ListFor(w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("player")
	if !h.cat.IsPlayer(player) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Player not found")
		return
	}

	feedback, err := h.store.ListFeedbackFor(r.Context(), player)
	if err != nil {
		slog.Error("failed to load feedback", "player", player, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load feedback")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, feedback)
}
