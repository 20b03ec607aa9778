// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/season-awards/ballot"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/devicelock"
	"github.com/danielhkuo/season-awards/models"
	"github.com/danielhkuo/season-awards/testutil"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Every voter selects themselves
// 2. Every voter ranks every award, in catalog order
// 3. A resubmission is rejected
// 4. Progress is complete and the cursor lands on the last award
// 5. Results and the integrity report agree
func TestFullVotingWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cat := testutil.TestCatalog(t)
	store := db.NewStore(conn)
	ballotHandler := NewBallotHandler(store, cat, devicelock.New(cfg.SessionSecret))
	resultsHandler := NewResultsHandler(store, cat)
	adminHandler := NewAdminHandler(store, cat, cfg)

	for _, voter := range cat.Roster() {
		// Step 1: Select voter
		req := testutil.MakeRequest("POST", "/session", models.SelectVoterRequest{Voter: voter}, nil)
		w := httptest.NewRecorder()
		ballotHandler.SelectVoter(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 1 - Select %s failed: %d - %s", voter, w.Code, w.Body.String())
		}

		var progress models.ProgressResponse
		testutil.AssertJSON(t, w, &progress)

		// Step 2: Follow Next until complete, ranking candidates as listed
		for progress.Next != "" {
			award := progress.Next

			req := httptest.NewRequest("GET", "/voters/"+voter+"/awards/"+string(award), nil)
			req.SetPathValue("voter", voter)
			req.SetPathValue("award", string(award))
			w := httptest.NewRecorder()
			ballotHandler.GetAward(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("Step 2 - Get %s for %s failed: %d - %s", award, voter, w.Code, w.Body.String())
			}

			var view models.AwardViewResponse
			testutil.AssertJSON(t, w, &view)
			if view.Locked {
				t.Fatalf("Step 2 - %s already locked for %s", award, voter)
			}

			w = httptest.NewRecorder()
			ballotHandler.SubmitVote(w, voteRequest(voter, award, view.Candidates))
			if w.Code != http.StatusCreated {
				t.Fatalf("Step 2 - Vote %s for %s failed: %d - %s", award, voter, w.Code, w.Body.String())
			}

			var resp models.SubmitVoteResponse
			testutil.AssertJSON(t, w, &resp)
			progress = resp.Progress
		}

		if progress.State != models.StateComplete || progress.Done != cat.Size() {
			t.Errorf("Step 2 - Expected %s complete, got %+v", voter, progress)
		}
	}

	// Step 3: Resubmission is rejected
	w := httptest.NewRecorder()
	ballotHandler.SubmitVote(w, voteRequest("A", "Y", []string{"B", "C", "D"}))
	if w.Code != http.StatusConflict {
		t.Errorf("Step 3 - Expected 409 on resubmission, got %d", w.Code)
	}

	// Step 4: Resume lands on the last award
	votes, err := store.ListVotesByVoter(t.Context(), "A")
	if err != nil {
		t.Fatalf("Step 4 - Failed to list votes: %v", err)
	}
	cursor := ballot.NewCursor(cat, "A", votes)
	if cursor.Current() != "Z" || !cursor.Locked() {
		t.Errorf("Step 4 - Expected cursor locked at Z, got %s (locked=%v)", cursor.Current(), cursor.Locked())
	}

	// Step 5: Results cover every award with every voter's ballot
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, httptest.NewRequest("GET", "/results", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var results []models.AwardResultResponse
	testutil.AssertJSON(t, w, &results)
	for _, res := range results {
		if res.VoteCount != cat.RosterSize() {
			t.Errorf("Step 5 - Expected %d votes for %s, got %d", cat.RosterSize(), res.Award, res.VoteCount)
		}
	}

	w = httptest.NewRecorder()
	adminHandler.Report(w, httptest.NewRequest("GET", "/admin/report", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var report reportResponse
	testutil.AssertJSON(t, w, &report)
	if report.Duplicates.DuplicateCount != 0 {
		t.Errorf("Step 5 - Expected no duplicates, got %d", report.Duplicates.DuplicateCount)
	}
	if report.TotalVotes != cat.RosterSize()*cat.Size() {
		t.Errorf("Step 5 - Expected %d votes, got %d", cat.RosterSize()*cat.Size(), report.TotalVotes)
	}
}
