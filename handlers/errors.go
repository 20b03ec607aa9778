// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/season-awards/ballot"
	"github.com/danielhkuo/season-awards/middleware"
)

// writeBallotError maps engine errors to HTTP responses. Anything that is
// not a ballot error is logged and reported as a 500 with fallback.
func writeBallotError(w http.ResponseWriter, err error, fallback string) {
	var rejection *ballot.RejectionError
	switch {
	case errors.As(err, &rejection):
		status := http.StatusBadRequest
		if rejection.Reason == ballot.ReasonDuplicate {
			status = http.StatusConflict
		}
		middleware.ErrorResponse(w, status, rejection.Error())
	case errors.Is(err, ballot.ErrUnknownAward):
		middleware.ErrorResponse(w, http.StatusNotFound, "Award not found")
	case errors.Is(err, ballot.ErrUnknownVoter):
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
	default:
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
