// Package store persists calculation history.
//
// It contains two implementations of domain.HistoryStore:
//   - SQLite, a sqlx repository over modernc.org/sqlite whose schema is
//     managed by goose migrations embedded in the binary
//   - Memory, a mutex-guarded in-process store for servers and tests that
//     run without a database file
//
// Both de-duplicate by fingerprint: saving a calculation whose slug and
// normalised inputs match an existing entry refreshes that entry instead of
// adding a new one. Entries are listed newest first.
//
// ExportJSON and ImportJSON move history between stores as a JSON file,
// written atomically via a temp file and rename.
package store
