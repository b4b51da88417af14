package migrations

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"calckit/internal/digest"
	"calckit/internal/domain"
)

func init() {
	goose.AddMigrationContext(upAddFingerprint, downDropFingerprint)
}

// upAddFingerprint adds the fingerprint column, backfills it from slug and
// inputs, drops all but the newest row per fingerprint and makes the column
// unique.
func upAddFingerprint(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `ALTER TABLE history ADD COLUMN fingerprint TEXT NOT NULL DEFAULT ''`); err != nil {
		return fmt.Errorf("adding fingerprint column : %w", err)
	}

	rows, err := tx.QueryContext(ctx, `SELECT id, slug, inputs FROM history`)
	if err != nil {
		return fmt.Errorf("getting all rows: %w", err)
	}
	type row struct{ id, fingerprint string }
	var pending []row
	for rows.Next() {
		var id, slug, raw string
		if err := rows.Scan(&id, &slug, &raw); err != nil {
			rows.Close()
			return fmt.Errorf("scanning row: %w", err)
		}
		in := domain.Inputs{}
		if raw != "" {
			if err := json.Unmarshal([]byte(raw), &in); err != nil {
				rows.Close()
				return fmt.Errorf("decoding inputs for row %s : %w", id, err)
			}
		}
		pending = append(pending, row{id: id, fingerprint: digest.Fingerprint(domain.Slug(slug), in)})
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("iterating rows: %w", err)
	}
	rows.Close()

	for _, r := range pending {
		if _, err := tx.ExecContext(ctx, `UPDATE history SET fingerprint = ? WHERE id = ?`, r.fingerprint, r.id); err != nil {
			return fmt.Errorf("updating row %s : %w", r.id, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		DELETE FROM history
		WHERE id NOT IN (
			SELECT id FROM (
				SELECT id, ROW_NUMBER() OVER (PARTITION BY fingerprint ORDER BY created_at DESC, id DESC) AS rn
				FROM history
			) WHERE rn = 1
		)`)
	if err != nil {
		return fmt.Errorf("removing duplicate rows : %w", err)
	}

	if _, err := tx.ExecContext(ctx, `CREATE UNIQUE INDEX idx_history_fingerprint ON history (fingerprint)`); err != nil {
		return fmt.Errorf("creating fingerprint index : %w", err)
	}
	return nil
}

func downDropFingerprint(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `DROP INDEX IF EXISTS idx_history_fingerprint`); err != nil {
		return fmt.Errorf("dropping fingerprint index : %w", err)
	}
	if _, err := tx.ExecContext(ctx, `ALTER TABLE history DROP COLUMN fingerprint`); err != nil {
		return fmt.Errorf("dropping fingerprint column : %w", err)
	}
	return nil
}
