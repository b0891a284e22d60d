package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/claude/liftvault/internal/ingest/vault"
	"github.com/claude/liftvault/internal/storage"
)

// liftvault-import bulk-loads a vault directory of session notes straight
// into the database. Meant for first-time setup; day-to-day syncing goes
// through liftvault-sync and the ingest API.
func main() {
	dsn := flag.String("dsn", os.Getenv("LIFTVAULT_DSN"), "PostgreSQL DSN (or LIFTVAULT_DSN)")
	vaultDir := flag.String("vault", "", "path to the vault directory")
	migrationsPath := flag.String("migrations", "migrations", "path to migrations directory")
	dryRun := flag.Bool("dry-run", false, "parse notes but do not write to the database")
	userID := flag.Int("user", 1, "user ID to import sessions for")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *dsn == "" || *vaultDir == "" {
		log.Error("both -dsn and -vault are required")
		os.Exit(1)
	}

	ctx := context.Background()

	var provider *vault.Provider
	if !*dryRun {
		if err := storage.RunMigrations(*dsn, *migrationsPath); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		db, err := storage.Open(ctx, *dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		provider = vault.NewProvider(db, log)
	}

	notes, err := collectNotes(*vaultDir)
	if err != nil {
		log.Error("scanning vault failed", "error", err)
		os.Exit(1)
	}
	log.Info("found session notes", "count", len(notes))

	imported, skipped, errored := 0, 0, 0
	for _, path := range notes {
		f, err := os.Open(path)
		if err != nil {
			log.Warn("open failed", "note", path, "error", err)
			errored++
			continue
		}

		if *dryRun {
			session, err := vault.Parse(f)
			f.Close()
			if err != nil {
				log.Warn("parse failed", "note", path, "error", err)
				errored++
				continue
			}
			log.Info("would import", "note", path, "session", session.Name, "exercises", len(session.Exercises))
			imported++
			continue
		}

		result, err := provider.Ingest(ctx, *userID, f)
		f.Close()
		if err != nil {
			log.Warn("import failed", "note", path, "error", err)
			errored++
			continue
		}
		if result.Inserted {
			imported++
		} else {
			skipped++
		}
	}

	log.Info("import finished",
		"imported", imported,
		"duplicates", skipped,
		"errors", errored,
	)
	if errored > 0 {
		os.Exit(1)
	}
}

func collectNotes(dir string) ([]string, error) {
	var notes []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			notes = append(notes, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(notes)
	return notes, nil
}
