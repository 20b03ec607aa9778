package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/season-awards/auth"
	"github.com/danielhkuo/season-awards/catalog"
	"github.com/danielhkuo/season-awards/cliparse"
	"github.com/danielhkuo/season-awards/db"
	"github.com/danielhkuo/season-awards/middleware"
	"github.com/danielhkuo/season-awards/router"
)

func main() {
	var err error

	// A missing .env is fine; flags and the environment still apply
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load the award catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("catalog load failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Catalog ready", "awards", cat.Size(), "players", cat.RosterSize())

	if cfg.SessionSecret == "" {
		cfg.SessionSecret, err = auth.GenerateSecret(32)
		if err != nil {
			slog.Error("session secret generation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("SESSION_SECRET not set; device locks reset on restart")
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	stored, err := db.NewStore(dbConn).CountVotes(context.Background())
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType, "votes", stored)

	// Create router
	mux := router.NewRouter(dbConn, cfg, cat)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
