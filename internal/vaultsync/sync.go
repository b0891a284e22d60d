package vaultsync

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Stats tracks sync progress.
type Stats struct {
	FilesTotal    int
	FilesSynced   int
	FilesSkipped  int
	FilesErrored  int
	SessionsAdded int
}

// Syncer walks a vault directory and sends changed session notes to the
// server.
type Syncer struct {
	client *Client
	state  *StateDB
	vault  string
	dryRun bool
	log    *slog.Logger
	stats  Stats
}

// New creates a Syncer rooted at the given vault directory.
func New(client *Client, state *StateDB, vaultDir string, dryRun bool, log *slog.Logger) *Syncer {
	return &Syncer{
		client: client,
		state:  state,
		vault:  vaultDir,
		dryRun: dryRun,
		log:    log,
	}
}

// Run syncs every markdown note under the vault, oldest path first. Notes
// whose size and hash match the state database are skipped. A note that
// fails to send is logged and counted; it does not stop the run.
func (s *Syncer) Run() (*Stats, error) {
	notes, err := s.collectNotes()
	if err != nil {
		return &s.stats, err
	}
	s.stats.FilesTotal = len(notes)

	for _, relPath := range notes {
		fullPath := filepath.Join(s.vault, relPath)

		info, err := os.Stat(fullPath)
		if err != nil {
			s.log.Warn("stat failed", "note", relPath, "error", err)
			s.stats.FilesErrored++
			continue
		}
		hash, err := HashFile(fullPath)
		if err != nil {
			s.log.Warn("hash failed", "note", relPath, "error", err)
			s.stats.FilesErrored++
			continue
		}

		synced, err := s.state.IsSynced(relPath, info.Size(), hash)
		if err != nil {
			return &s.stats, fmt.Errorf("checking sync state for %s: %w", relPath, err)
		}
		if synced {
			s.stats.FilesSkipped++
			continue
		}

		if s.dryRun {
			s.log.Info("would sync", "note", relPath, "size", info.Size())
			s.stats.FilesSynced++
			continue
		}

		f, err := os.Open(fullPath)
		if err != nil {
			s.log.Warn("open failed", "note", relPath, "error", err)
			s.stats.FilesErrored++
			continue
		}
		result, err := s.client.SendNote(f)
		f.Close()
		if err != nil {
			s.log.Warn("sync failed", "note", relPath, "error", err)
			s.stats.FilesErrored++
			continue
		}

		if err := s.state.MarkSynced(relPath, info.Size(), hash); err != nil {
			return &s.stats, fmt.Errorf("marking %s synced: %w", relPath, err)
		}
		s.stats.FilesSynced++
		if result.Inserted {
			s.stats.SessionsAdded++
		}
		s.log.Info("synced note",
			"note", relPath,
			"session", result.SessionName,
			"inserted", result.Inserted,
		)
	}

	return &s.stats, nil
}

// collectNotes returns the relative paths of all .md files under the vault,
// sorted for deterministic runs. Hidden directories (.obsidian and friends)
// are skipped.
func (s *Syncer) collectNotes() ([]string, error) {
	var notes []string
	err := filepath.WalkDir(s.vault, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != s.vault {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			rel, err := filepath.Rel(s.vault, path)
			if err != nil {
				return err
			}
			notes = append(notes, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault %s: %w", s.vault, err)
	}
	sort.Strings(notes)
	return notes, nil
}
