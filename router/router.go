// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/cliparse"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/devicelock"
	"github.com/danielhkuo/season-awards/handlers"
	"github.com/danielhkuo/season-awards/middleware"
)

func NewRouter(conn *sql.DB, cfg cliparse.Config, cat *catalog.Catalog) *http.ServeMux {
	mux := http.NewServeMux()

	store := db.NewStore(conn)
	lock := devicelock.New(cfg.SessionSecret)

	// Initialize handlers
	ballotHandler := handlers.NewBallotHandler(store, cat, lock)
	resultsHandler := handlers.NewResultsHandler(store, cat)
	feedbackHandler := handlers.NewFeedbackHandler(store, cat)
	adminHandler := handlers.NewAdminHandler(store, cat, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting
	mux.HandleFunc("GET /catalog", middleware.WithLogging(ballotHandler.GetCatalog))
	mux.HandleFunc("POST /session", middleware.WithLogging(ballotHandler.SelectVoter))
	mux.HandleFunc("GET /voters/{voter}/progress", middleware.WithLogging(ballotHandler.GetProgress))
	mux.HandleFunc("GET /voters/{voter}/awards/{award}", middleware.WithLogging(ballotHandler.GetAward))
	mux.HandleFunc("POST /voters/{voter}/awards/{award}/vote", middleware.WithLogging(ballotHandler.SubmitVote))

	// Results (public)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.GetResults))
	mux.HandleFunc("GET /results/{award}", middleware.WithLogging(resultsHandler.GetAwardResults))

	// Feedback
	mux.HandleFunc("POST /voters/{voter}/feedback", middleware.WithLogging(feedbackHandler.Submit))
	mux.HandleFunc("GET /players/{player}/feedback", middleware.WithLogging(feedbackHandler.ListFor))

	// Admin (X-Admin-Key)
	mux.HandleFunc("GET /admin/report", middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKey, adminHandler.Report)))
	mux.HandleFunc("POST /admin/import", middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKey, adminHandler.Import)))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("season-awards API v1"))
	})

	return mux
}
