// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:season-awards.db)
  - AdminKey: key for admin routes (required)
  - SessionSecret: device cookie signing secret (generated when empty)
  - CatalogPath: JSON award catalog (default: built-in season catalog)
  - BulkWindow: integrity bulk-import window (default: 1h)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-catalog         Catalog file
	-bulk-window     Bulk-import window (Go duration, e.g. 45m)
	-admin-key       Admin key
	-session-secret  Device cookie secret

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	CATALOG_PATH   → -catalog
	BULK_WINDOW    → -bulk-window
	ADMIN_KEY      → -admin-key
	SESSION_SECRET → -session-secret

CLI flags take precedence over environment variables. main loads a .env
file (if present) before parsing.
*/
package cliparse
