package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"calckit/internal/domain"
)

// exportFile is the on-disk JSON structure of a history export.
type exportFile struct {
	V       int                   `json:"v"`
	Entries []domain.HistoryEntry `json:"entries"`
}

const exportFormatVersion = 1

// ExportJSON writes every entry of s to path, newest first.
func ExportJSON(ctx context.Context, s domain.HistoryStore, path string) (int, error) {
	entries, err := s.ListEntries(ctx, domain.HistoryFilter{})
	if err != nil {
		return 0, err
	}
	if err := writeJSON(path, exportFile{V: exportFormatVersion, Entries: entries}, 0o600); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return len(entries), nil
}

// ImportJSON saves every entry in the export at path into s. Entries are
// de-duplicated by fingerprint like any other save.
func ImportJSON(ctx context.Context, s domain.HistoryStore, path string) (int, error) {
	var f exportFile
	found, err := readJSON(path, &f)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	if !found {
		return 0, fmt.Errorf("reading %s: %w", path, os.ErrNotExist)
	}
	if f.V > exportFormatVersion {
		return 0, fmt.Errorf("unsupported export version %d", f.V)
	}
	// Oldest first, so the newest duplicate wins. Ids and fingerprints are
	// reassigned by the target store.
	n := 0
	for i := len(f.Entries) - 1; i >= 0; i-- {
		e := f.Entries[i]
		e.ID = uuid.Nil
		e.Fingerprint = ""
		if _, err := s.SaveEntry(ctx, e); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// readJSON reads path into out and reports whether the file existed.
func readJSON(path string, out any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, out)
}

// writeJSON writes JSON via a temp file then rename.
func writeJSON(path string, v any, mode os.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, b, mode)
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
