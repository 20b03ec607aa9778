// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Season Awards API server.

Season Awards is an end-of-season peer awards election. Every player ranks
their teammates for each award in a fixed catalog, and each award is
decided by Borda count.

# Starting the Server

The server needs an admin key. Everything else has a default:

	ADMIN_KEY=secret go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key secret

A .env file in the working directory is loaded before flags are parsed.

# Configuration

Required settings:

  - ADMIN_KEY (-admin-key): Key for the /admin routes

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:season-awards.db)
  - SESSION_SECRET (-session-secret): Device cookie secret (random if unset)
  - CATALOG_PATH (-catalog): JSON catalog replacing the built-in season
  - BULK_WINDOW (-bulk-window): Integrity bulk-import window (default: 1h)

# Architecture

  - catalog: Roster, awards and eligibility restrictions
  - ballot: Eligibility, ranking validation, progress and Borda tally
  - integrity: Duplicate, distribution and import analysis
  - db: Schema and the append-only vote and feedback store
  - importer: Bulk import of existing votes
  - devicelock: Advisory per-device voter cookie
  - handlers: HTTP request handlers (ballot, results, feedback, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin guard, JSON helpers
  - models: Records and request/response types
  - auth: Admin key checks and secret generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
