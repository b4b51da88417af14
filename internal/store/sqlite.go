package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"calckit/internal/digest"
	"calckit/internal/domain"
	_ "calckit/internal/store/migrations"
)

//go:embed migrations/*.sql migrations/*.go
var embedMigrations embed.FS

// SQLite is a HistoryStore backed by a SQLite database file.
type SQLite struct {
	db *sqlx.DB
}

// Compile-time assertion that SQLite implements domain.HistoryStore.
var _ domain.HistoryStore = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database at path and applies all
// pending migrations. The parent directory is created with 0700.
func OpenSQLite(path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating database dir : %w", err)
	}
	db, err := sqlx.Connect("sqlite", fmt.Sprintf("%s?_journal=WAL&_timeout=5000&_fk=true", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migration : %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close releases the database connection.
func (s *SQLite) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing db : %w", err)
	}
	return nil
}

// inputsColumn stores domain.Inputs as a JSON object.
type inputsColumn domain.Inputs

// Scan implements sql.Scanner.
func (c *inputsColumn) Scan(value any) error {
	*c = inputsColumn{}
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return fmt.Errorf("unsupported inputs type %T", v)
	}
}

// Value implements driver.Valuer.
func (c inputsColumn) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// dbEntry is a history row.
type dbEntry struct {
	ID          uuid.UUID    `db:"id"`
	Slug        string       `db:"slug"`
	Inputs      inputsColumn `db:"inputs"`
	Summary     string       `db:"summary"`
	Fingerprint string       `db:"fingerprint"`
	CreatedAt   time.Time    `db:"created_at"`
}

func toDomainEntry(e dbEntry) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:          e.ID,
		Slug:        domain.Slug(e.Slug),
		Inputs:      domain.Inputs(e.Inputs),
		Summary:     e.Summary,
		Fingerprint: e.Fingerprint,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

// prepare fills the id, fingerprint and timestamp of a new entry.
func prepare(e domain.HistoryEntry) (domain.HistoryEntry, error) {
	if e.Slug == "" {
		return e, errors.New("history entry has no slug")
	}
	if e.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return e, fmt.Errorf("creating id : %w", err)
		}
		e.ID = id
	}
	if e.Fingerprint == "" {
		e.Fingerprint = digest.Fingerprint(e.Slug, e.Inputs)
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC()
	return e, nil
}

const entryColumns = `id, slug, inputs, summary, fingerprint, created_at`

// SaveEntry inserts e, or refreshes the summary and timestamp of the entry
// with the same fingerprint, and returns the stored row.
func (s *SQLite) SaveEntry(ctx context.Context, e domain.HistoryEntry) (domain.HistoryEntry, error) {
	e, err := prepare(e)
	if err != nil {
		return domain.HistoryEntry{}, err
	}
	row := dbEntry{
		ID:          e.ID,
		Slug:        string(e.Slug),
		Inputs:      inputsColumn(e.Inputs),
		Summary:     e.Summary,
		Fingerprint: e.Fingerprint,
		CreatedAt:   e.CreatedAt,
	}
	query := `INSERT INTO history (` + entryColumns + `)
	          VALUES (:id, :slug, :inputs, :summary, :fingerprint, :created_at)
	          ON CONFLICT(fingerprint) DO UPDATE SET
	              summary = excluded.summary,
	              inputs = excluded.inputs,
	              created_at = excluded.created_at`
	if _, err := s.db.NamedExecContext(ctx, query, row); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("saving history entry %s : %w", e.Slug, err)
	}

	var stored dbEntry
	err = s.db.GetContext(ctx, &stored, `SELECT `+entryColumns+` FROM history WHERE fingerprint = ?`, e.Fingerprint)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("reading back history entry : %w", err)
	}
	return toDomainEntry(stored), nil
}

// ListEntries returns entries newest first, optionally filtered by slug.
func (s *SQLite) ListEntries(ctx context.Context, f domain.HistoryFilter) ([]domain.HistoryEntry, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT ` + entryColumns + ` FROM history
	          WHERE (? = '' OR slug = ?)
	          ORDER BY created_at DESC, id DESC
	          LIMIT ?`
	var rows []dbEntry
	if err := s.db.SelectContext(ctx, &rows, query, string(f.Slug), string(f.Slug), limit); err != nil {
		return nil, fmt.Errorf("listing history : %w", err)
	}
	out := make([]domain.HistoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, toDomainEntry(r))
	}
	return out, nil
}

// GetEntry returns the entry with id and whether it exists.
func (s *SQLite) GetEntry(ctx context.Context, id uuid.UUID) (domain.HistoryEntry, bool, error) {
	var row dbEntry
	err := s.db.GetContext(ctx, &row, `SELECT `+entryColumns+` FROM history WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.HistoryEntry{}, false, nil
	}
	if err != nil {
		return domain.HistoryEntry{}, false, fmt.Errorf("getting history entry %s : %w", id, err)
	}
	return toDomainEntry(row), true, nil
}

// DeleteEntry removes the entry with id. Deleting a missing entry is not an
// error.
func (s *SQLite) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting history entry %s : %w", id, err)
	}
	return nil
}

// ClearEntries removes every entry.
func (s *SQLite) ClearEntries(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history : %w", err)
	}
	return nil
}
