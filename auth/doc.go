// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles admin key checks and secret generation.

Voters are not authenticated: the election runs among a small, known
group and picking a name is trusted. Only the admin console is gated.

# Admin Keys

The admin key comes from configuration (ADMIN_KEY). Requests present it
in the X-Admin-Key header:

	if err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey); err != nil {
		// 401
	}

Comparison is constant time (HMAC equality over SHA-256 digests).

# Secrets

GenerateSecret returns a random URL-safe string, used when no session
secret is configured:

	secret, err := auth.GenerateSecret(32)

# Errors

	ErrInvalidAdminKey - key does not match
	ErrNoAdminKey      - no key configured; admin routes are closed
*/
package auth
