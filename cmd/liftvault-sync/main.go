package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/claude/liftvault/internal/vaultsync"
)

// liftvault-sync runs on the machine holding the vault. It sends new and
// edited session notes to the server's ingest API and remembers what it
// already sent in a local SQLite state database.
func main() {
	serverURL := flag.String("server", os.Getenv("LIFTVAULT_SERVER"), "LiftVault server URL (or LIFTVAULT_SERVER)")
	apiKey := flag.String("api-key", os.Getenv("LIFTVAULT_API_KEY"), "ingest API key (or LIFTVAULT_API_KEY)")
	vaultDir := flag.String("vault", "", "path to the vault directory")
	stateDir := flag.String("state-dir", defaultStateDir(), "directory for the sync state database")
	dryRun := flag.Bool("dry-run", false, "show what would be synced without sending")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *vaultDir == "" {
		log.Error("-vault is required")
		os.Exit(1)
	}
	if !*dryRun && (*serverURL == "" || *apiKey == "") {
		log.Error("-server and -api-key are required (or set LIFTVAULT_SERVER / LIFTVAULT_API_KEY)")
		os.Exit(1)
	}

	state, err := vaultsync.OpenStateDB(*stateDir)
	if err != nil {
		log.Error("opening state db failed", "error", err)
		os.Exit(1)
	}
	defer state.Close()

	client := vaultsync.NewClient(*serverURL, *apiKey)
	syncer := vaultsync.New(client, state, *vaultDir, *dryRun, log)

	stats, err := syncer.Run()
	if err != nil {
		log.Error("sync failed", "error", err)
		os.Exit(1)
	}

	log.Info("sync finished",
		"total", stats.FilesTotal,
		"synced", stats.FilesSynced,
		"skipped", stats.FilesSkipped,
		"errors", stats.FilesErrored,
		"sessions_added", stats.SessionsAdded,
	)
	if stats.FilesErrored > 0 {
		os.Exit(1)
	}
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".liftvault-sync"
	}
	return filepath.Join(home, ".liftvault-sync")
}
