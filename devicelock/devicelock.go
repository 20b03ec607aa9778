// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package devicelock

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "season_awards_device"
	voterKey   = "voter"
	oneYear    = 365 * 24 * 60 * 60
)

var ErrDeviceBound = errors.New("this device has already been used to vote")

// Lock records which voter a device voted as, in a signed cookie.
// It is advisory: clearing the cookie clears the lock.
type Lock struct {
	store sessions.Store
}

// New creates a Lock whose cookies are signed with secret
func New(secret string) *Lock {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   oneYear,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Lock{store: store}
}

// Voter returns the voter this device is bound to, or "" if none.
// Tampered or unreadable cookies count as unbound.
func (l *Lock) Voter(r *http.Request) string {
	session, err := l.store.Get(r, cookieName)
	if err != nil {
		return ""
	}
	voter, _ := session.Values[voterKey].(string)
	return voter
}

// Check returns ErrDeviceBound if the device is bound to another voter
func (l *Lock) Check(r *http.Request, voter string) error {
	bound := l.Voter(r)
	if bound != "" && bound != voter {
		return fmt.Errorf("%w as %s", ErrDeviceBound, bound)
	}
	return nil
}

// Claim binds the device to voter. The first claim wins; later claims
// for a different voter are ignored.
func (l *Lock) Claim(w http.ResponseWriter, r *http.Request, voter string) error {
	// On a decode error Get still returns a fresh session
	session, _ := l.store.Get(r, cookieName)
	if bound, _ := session.Values[voterKey].(string); bound != "" {
		return nil
	}

	session.Values[voterKey] = voter
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("failed to save device lock: %w", err)
	}
	return nil
}
