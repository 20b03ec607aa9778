// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Season Awards API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, cat)

# Endpoints

Health:

	GET /health

Voting:

	GET  /catalog                             - Roster and awards
	POST /session                             - Select voter
	GET  /voters/{voter}/progress             - Completed and remaining awards
	GET  /voters/{voter}/awards/{award}       - Candidates and navigation
	POST /voters/{voter}/awards/{award}/vote  - Submit ranking

Results (public):

	GET /results         - Placed standings for every award
	GET /results/{award} - Full standings and per-vote points

Feedback:

	POST /voters/{voter}/feedback - Leave feedback for a teammate
	GET  /players/{player}/feedback - Feedback received

Admin (requires X-Admin-Key):

	GET  /admin/report - Integrity report
	POST /admin/import - Bulk import votes

Award names may contain spaces; clients escape them in paths
(/results/Best%20Forward).

# Handler Initialization

The router builds one vote store and one device lock and shares them
between handlers:

	store := db.NewStore(conn)
	lock := devicelock.New(cfg.SessionSecret)
	ballotHandler := handlers.NewBallotHandler(store, cat, lock)
*/
package router
