// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/integrity"
	"github.com/danielhkuo/season-awards/models"
	"github.com/danielhkuo/season-awards/testutil"
)

func TestAdminReport(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := db.NewStore(conn)
	handler := NewAdminHandler(store, testutil.TestCatalog(t), testutil.GetTestConfig())

	testutil.AddTestVote(t, conn, "A", "X", "B", "C")
	testutil.AddTestVote(t, conn, "A", "X", "C", "B")
	testutil.AddTestVote(t, conn, "B", "Y", "A", "C", "D")
	if _, err := store.AppendFeedback(t.Context(), models.Feedback{
		VoterName: "A", TargetPlayer: "B", Strength: "s", Improvement: "i", Growth: "g",
	}); err != nil {
		t.Fatalf("Failed to add feedback: %v", err)
	}

	w := httptest.NewRecorder()
	handler.Report(w, httptest.NewRequest("GET", "/admin/report", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp reportResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 3 || resp.Voters != 2 {
		t.Errorf("Expected 3 votes from 2 voters, got %d from %d", resp.TotalVotes, resp.Voters)
	}
	if resp.Duplicates.DuplicateCount != 1 {
		t.Errorf("Expected 1 duplicate, got %d", resp.Duplicates.DuplicateCount)
	}
	if resp.FeedbackCount != 1 {
		t.Errorf("Expected 1 feedback, got %d", resp.FeedbackCount)
	}
	if resp.Clean {
		t.Error("Expected report with duplicates to be unclean")
	}
	if resp.Summary == "" {
		t.Error("Expected a summary")
	}
}

func TestAdminReportEmpty(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewAdminHandler(db.NewStore(conn), testutil.TestCatalog(t), testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Report(w, httptest.NewRequest("GET", "/admin/report", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp reportResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.Clean || resp.TotalVotes != 0 {
		t.Errorf("Expected clean empty report, got %+v", resp.Report)
	}
}

func TestAdminImport(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	store := db.NewStore(conn)
	cat := testutil.TestCatalog(t)
	handler := NewAdminHandler(store, cat, testutil.GetTestConfig())

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedCount  int
	}{
		{
			name: "valid import",
			body: `[
				{"voterName": "A", "award": "X", "rankings": ["B", "C"], "timestamp": 1700000000000},
				{"voterName": "A", "award": "X", "rankings": ["B", "C"], "timestamp": 1700000001000}
			]`,
			expectedStatus: http.StatusCreated,
			expectedCount:  2,
		},
		{
			name:           "unknown voter",
			body:           `[{"voterName": "Nobody", "award": "X", "rankings": ["B", "C"]}]`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown award",
			body:           `[{"voterName": "A", "award": "Nope", "rankings": ["B", "C"]}]`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{"voterName":`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/import", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			handler.Import(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.ImportResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Imported != tt.expectedCount {
					t.Errorf("Expected %d imported, got %d", tt.expectedCount, resp.Imported)
				}
			}
		})
	}

	// Imported duplicates are stored and show up in the report
	votes, err := store.ListVotes(t.Context())
	if err != nil {
		t.Fatalf("Failed to list votes: %v", err)
	}
	if len(votes) != 2 {
		t.Fatalf("Expected 2 stored votes, got %d", len(votes))
	}

	report := integrity.Analyze(cat, votes, integrity.Options{})
	if report.Duplicates.DuplicateCount != 1 {
		t.Errorf("Expected 1 duplicate, got %d", report.Duplicates.DuplicateCount)
	}
	var exact bool
	for _, f := range report.Import.Findings {
		if f.Kind == integrity.FindingExactDuplicate {
			exact = true
		}
	}
	if !exact {
		t.Errorf("Expected an exact duplicate finding, got %+v", report.Import.Findings)
	}
}
