// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation, and the record
store.

# Connecting

Open picks a driver by database type and pings the connection:

	conn, err := db.Open(db.TypeSQLite, "file:season-awards.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (no cgo); PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - vote: voter_name, award, rankings ("A, B, C"), created_at (unix ms)
  - feedback: voter_name, target_player, strength, improvement, growth, created_at

Neither table enforces one record per voter. Votes are append-only: a
changed mind is a new row, which the integrity checks will flag.

# Store

Store offers append-one and read-all operations:

	store := db.NewStore(conn)
	vote, err := store.AppendVote(ctx, models.Vote{VoterName: "Cam", Award: "MVP", Rankings: ranking})
	votes, err := store.ListVotes(ctx)

Reads are ordered by creation time, then ID, so "first encountered" is
stable across calls.
*/
package db
