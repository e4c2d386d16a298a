package main

import (
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"

	"github.com/vincentbai/domtrace-agent/internal/config"
	"github.com/vincentbai/domtrace-agent/internal/database"
	"github.com/vincentbai/domtrace-agent/internal/logging"
	"github.com/vincentbai/domtrace-agent/internal/server"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatal("Failed to set up logging:", err)
	}

	applicationDirectory := cfg.DataDir
	if applicationDirectory == "" {
		applicationDirectory, err = defaultApplicationDirectory()
		if err != nil {
			log.Fatal(err)
		}
	}
	if err := os.MkdirAll(applicationDirectory, 0o755); err != nil {
		log.Fatal("Failed to create application directory:", err)
	}
	databasePath := filepath.Join(applicationDirectory, "records.db")

	// Initialize database
	db, err := database.NewDatabase(databasePath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// One session id per agent run, attached to every stored record
	sessionID := uuid.New().String()
	logger.Info("starting DOMTrace agent", "session_id", sessionID, "database", databasePath)

	srv := server.NewServer(db, cfg.Address, sessionID, logger)
	if err := srv.Start(); err != nil {
		logger.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}
}

// defaultApplicationDirectory resolves the platform-specific data dir.
func defaultApplicationDirectory() (string, error) {
	homeDirectory, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDirectory, "Library", "Application Support", "DOMTrace"), nil
	case "windows":
		return filepath.Join(homeDirectory, "AppData", "Roaming", "DOMTrace"), nil
	default: // linux and others
		return filepath.Join(homeDirectory, ".local", "share", "DOMTrace"), nil
	}
}
