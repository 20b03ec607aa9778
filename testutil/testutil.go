// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/cliparse"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/models"
)

// TestDBURL is an in-memory SQLite database. db.Open limits SQLite to a
// single connection, so every query sees the same database.
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   TestDBURL,
		DatabaseType:  db.TypeSQLite,
		AdminKey:      "test-admin-key",
		SessionSecret: "test-session-secret-0123456789ab",
		BulkWindow:    time.Hour,
	}
}

// TestCatalog is a small catalog: players A, B, C, D and awards X, Y, Z,
// where D cannot be ranked for X
func TestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(catalog.Definition{
		Roster:       []string{"A", "B", "C", "D"},
		Awards:       []string{"X", "Y", "Z"},
		Restrictions: map[string][]string{"X": {"D"}},
	})
	if err != nil {
		t.Fatalf("Failed to build test catalog: %v", err)
	}
	return cat
}

// SeasonCatalog returns the built-in season catalog
func SeasonCatalog() *catalog.Catalog {
	return catalog.Default()
}

// AddTestVote stores a vote directly, bypassing validation
func AddTestVote(t *testing.T, conn *sql.DB, voter string, award catalog.Award, rankings ...string) models.Vote {
	t.Helper()

	vote, err := db.NewStore(conn).AppendVote(context.Background(), models.Vote{
		VoterName: voter,
		Award:     award,
		Rankings:  rankings,
	})
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}
	return vote
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
