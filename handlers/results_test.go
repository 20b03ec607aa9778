// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/models"
	"github.com/danielhkuo/season-awards/testutil"
)

func TestGetResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(db.NewStore(conn), testutil.TestCatalog(t))

	// Roster of 4: first place earns 3, second earns 2
	testutil.AddTestVote(t, conn, "A", "X", "B", "C")
	testutil.AddTestVote(t, conn, "B", "X", "A", "C")
	testutil.AddTestVote(t, conn, "C", "X", "A", "B")

	w := httptest.NewRecorder()
	handler.GetResults(w, httptest.NewRequest("GET", "/results", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.AwardResultResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp) != 3 {
		t.Fatalf("Expected 3 awards, got %d", len(resp))
	}

	x := resp[0]
	if x.Award != "X" || x.VoteCount != 3 {
		t.Errorf("Expected X with 3 votes, got %s with %d", x.Award, x.VoteCount)
	}

	expected := []models.StandingResponse{
		{Candidate: "A", Score: 6, Rank: 1},
		{Candidate: "B", Score: 5, Rank: 2},
		{Candidate: "C", Score: 4, Rank: 3},
	}
	if len(x.Standings) != len(expected) {
		t.Fatalf("Expected %d placed standings (D has no points), got %+v", len(expected), x.Standings)
	}
	for i, want := range expected {
		if x.Standings[i] != want {
			t.Errorf("Standing %d: expected %+v, got %+v", i, want, x.Standings[i])
		}
	}

	if resp[1].VoteCount != 0 || len(resp[1].Standings) != 0 {
		t.Errorf("Expected no results for Y, got %+v", resp[1])
	}
}

func TestGetAwardResults(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewResultsHandler(db.NewStore(conn), testutil.TestCatalog(t))

	testutil.AddTestVote(t, conn, "A", "Y", "B", "C", "D")
	testutil.AddTestVote(t, conn, "B", "Y", "C", "A", "D")

	tests := []struct {
		name           string
		award          string
		expectedStatus int
	}{
		{"known award", "Y", http.StatusOK},
		{"unknown award", "Nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/results/"+tt.award, nil)
			req.SetPathValue("award", tt.award)
			w := httptest.NewRecorder()

			handler.GetAwardResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.AwardDetailResponse
			testutil.AssertJSON(t, w, &resp)

			// C: 2+3, B: 3, A: 2, D: 1+1
			if len(resp.Standings) != 4 {
				t.Fatalf("Expected every roster member in standings, got %+v", resp.Standings)
			}
			if resp.Standings[0].Candidate != "C" || resp.Standings[0].Score != 5 {
				t.Errorf("Expected C to lead with 5, got %+v", resp.Standings[0])
			}
			if resp.Standings[1].Score != 3 || resp.Standings[1].Candidate != "B" {
				t.Errorf("Expected B second with 3, got %+v", resp.Standings[1])
			}
			if resp.Standings[2].Rank != 3 || resp.Standings[3].Rank != 3 {
				t.Errorf("Expected A and D to share rank 3, got %+v", resp.Standings[2:])
			}

			if len(resp.Breakdown) != 6 {
				t.Fatalf("Expected 6 breakdown rows, got %d", len(resp.Breakdown))
			}
			first := resp.Breakdown[0]
			if first.Voter != "A" || first.Candidate != "B" || first.Position != 1 || first.Points != 3 {
				t.Errorf("Unexpected first breakdown row %+v", first)
			}
		})
	}
}
