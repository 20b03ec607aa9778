// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package devicelock

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// carryCookies copies the cookies set on w onto a new request
func carryCookies(w *httptest.ResponseRecorder) *http.Request {
	req := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestLock_UnboundDevice(t *testing.T) {
	lock := New("test-session-secret")
	req := httptest.NewRequest("GET", "/", nil)

	if v := lock.Voter(req); v != "" {
		t.Errorf("Expected no voter, got %q", v)
	}
	if err := lock.Check(req, "Cam"); err != nil {
		t.Errorf("Expected unbound device to pass check, got %v", err)
	}
}

func TestLock_ClaimBindsDevice(t *testing.T) {
	lock := New("test-session-secret")

	w := httptest.NewRecorder()
	if err := lock.Claim(w, httptest.NewRequest("POST", "/", nil), "Cam"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}

	req := carryCookies(w)
	if v := lock.Voter(req); v != "Cam" {
		t.Errorf("Expected device bound to Cam, got %q", v)
	}
	if err := lock.Check(req, "Cam"); err != nil {
		t.Errorf("Same voter should pass check, got %v", err)
	}
	if err := lock.Check(req, "Dope"); !errors.Is(err, ErrDeviceBound) {
		t.Errorf("Expected ErrDeviceBound for another voter, got %v", err)
	}
}

func TestLock_FirstClaimWins(t *testing.T) {
	lock := New("test-session-secret")

	w1 := httptest.NewRecorder()
	lock.Claim(w1, httptest.NewRequest("POST", "/", nil), "Cam")

	w2 := httptest.NewRecorder()
	if err := lock.Claim(w2, carryCookies(w1), "Dope"); err != nil {
		t.Fatalf("Claim failed: %v", err)
	}

	// Second claim writes nothing, so the original cookie still stands
	if len(w2.Result().Cookies()) != 0 {
		t.Error("Expected second claim not to rewrite the cookie")
	}
	if v := lock.Voter(carryCookies(w1)); v != "Cam" {
		t.Errorf("Expected device to stay bound to Cam, got %q", v)
	}
}

func TestLock_ForeignSecretIgnored(t *testing.T) {
	w := httptest.NewRecorder()
	New("secret-one").Claim(w, httptest.NewRequest("POST", "/", nil), "Cam")

	other := New("secret-two")
	if v := other.Voter(carryCookies(w)); v != "" {
		t.Errorf("Expected cookie signed with another secret to be ignored, got %q", v)
	}
}
