// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/season-awards/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":"123"}`},
		{"Conflict", http.StatusConflict, `{"error":"Conflict"}`},
		{"NotFound", http.StatusNotFound, "not found"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/voters/Cam/awards/MVP/vote", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if !called {
				t.Error("Expected handler to be called")
			}
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Run("implicit OK", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
		rec.Write([]byte("hi"))
		if rec.status != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.status)
		}
	})

	t.Run("first status wins", func(t *testing.T) {
		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
		rec.WriteHeader(http.StatusConflict)
		rec.Write([]byte("dup"))
		if rec.status != http.StatusConflict {
			t.Errorf("Expected status 409, got %d", rec.status)
		}
	})
}

func TestParseJSONBody_TooLarge(t *testing.T) {
	body := `{"voter":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest("POST", "/session", strings.NewReader(body))

	var v struct {
		Voter string `json:"voter"`
	}
	if err := ParseJSONBody(req, &v); err == nil {
		t.Error("Expected error for oversized body")
	}
}

func TestRequireAdmin(t *testing.T) {
	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	testCases := []struct {
		name       string
		configured string
		header     string
		expected   int
	}{
		{"valid key", "admin-secret", "admin-secret", http.StatusOK},
		{"wrong key", "admin-secret", "guess", http.StatusUnauthorized},
		{"missing header", "admin-secret", "", http.StatusUnauthorized},
		{"no key configured", "", "", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin/report", nil)
			if tc.header != "" {
				req.Header.Set(AdminKeyHeader, tc.header)
			}
			w := httptest.NewRecorder()

			RequireAdmin(tc.configured, next)(w, req)

			if w.Code != tc.expected {
				t.Errorf("Expected status %d, got %d", tc.expected, w.Code)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusConflict, "already voted for this award")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Error != "Conflict" {
		t.Errorf("Expected error 'Conflict', got '%s'", resp.Error)
	}
	if resp.Message != "already voted for this award" {
		t.Errorf("Unexpected message '%s'", resp.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"rankings":["G","Cam"]}`))
		var body models.SubmitVoteRequest
		if err := ParseJSONBody(req, &body); err != nil {
			t.Fatalf("ParseJSONBody failed: %v", err)
		}
		if len(body.Rankings) != 2 || body.Rankings[0] != "G" {
			t.Errorf("Unexpected rankings %v", body.Rankings)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"rankings":`))
		var body models.SubmitVoteRequest
		if err := ParseJSONBody(req, &body); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})
	corsHandler := CORS(next)

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/results", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), AdminKeyHeader) {
			t.Error("Expected X-Admin-Key in allowed headers")
		}
	})

	t.Run("no origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/results", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"X-Forwarded-For chain", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:1", "203.0.113.195"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "203.0.113.50"},
		{"RemoteAddr with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"RemoteAddr without port", nil, "192.168.1.50", "192.168.1.50"},
		{"IPv6 RemoteAddr", nil, "[2001:db8::1]:443", "2001:db8::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
