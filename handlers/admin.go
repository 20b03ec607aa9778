// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/cliparse"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/importer"
	"github.com/danielhkuo/season-awards/integrity"
	"github.com/danielhkuo/season-awards/middleware"
	"github.com/danielhkuo/season-awards/models"
)

// AdminHandler serves the integrity report and bulk import.
// Routes must be wrapped with middleware.RequireAdmin.
type AdminHandler struct {
	store *db.Store
	cat   *catalog.Catalog
	cfg   cliparse.Config
}

func NewAdminHandler(store *db.Store, cat *catalog.Catalog, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store, cat: cat, cfg: cfg}
}

type reportResponse struct {
	integrity.Report
	FeedbackCount int  `json:"feedback_count"`
	Clean         bool `json:"clean"`
}

// Report handles GET /admin/report
func (h *AdminHandler) Report(w http.ResponseWriter, r *http.Request) {
	var (
		votes    []models.Vote
		feedback []models.Feedback
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		votes, err = h.store.ListVotes(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		feedback, err = h.store.ListFeedback(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("failed to load report data", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build report")
		return
	}

	report := integrity.Analyze(h.cat, votes, integrity.Options{BulkWindow: h.cfg.BulkWindow})
	slog.Info("integrity report built",
		"votes", report.TotalVotes,
		"duplicates", report.Duplicates.DuplicateCount,
		"findings", len(report.Import.Findings),
	)

	middleware.JSONResponse(w, http.StatusOK, reportResponse{
		Report:        report,
		FeedbackCount: len(feedback),
		Clean:         report.Clean(),
	})
}

// Import handles POST /admin/import
func (h *AdminHandler) Import(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	n, err := importer.Import(r.Context(), h.store, h.cat, r.Body)
	if errors.Is(err, importer.ErrInvalidImport) {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		slog.Error("failed to import votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to import votes")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.ImportResponse{Imported: n})
}
