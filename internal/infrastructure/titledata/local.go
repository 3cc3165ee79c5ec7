package titledata

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

// Local is a sqlite-backed title-data mirror. It serves the same batch keys
// as the remote store from a single-file database, for offline play and as a
// seedable fixture store in development.
type Local struct {
	db        *sql.DB
	namespace string
}

const localSchema = `
CREATE TABLE IF NOT EXISTS title_data (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// OpenLocal opens (creating if needed) the mirror database at path.
func OpenLocal(path, namespace string) (*Local, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("titledata: open %s: %w", path, err)
	}
	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("titledata: init schema: %w", err)
	}
	return &Local{db: db, namespace: namespace}, nil
}

// Close releases the underlying database handle.
func (l *Local) Close() error { return l.db.Close() }

// Batch reads one dataset batch from the mirror. Absent keys yield an empty
// slice and a nil error, matching the remote contract.
func (l *Local) Batch(ctx context.Context, dataset domain.Dataset, n int) ([]domain.PuzzleRecord, error) {
	key := BatchKey(l.namespace, dataset, n)
	var raw string
	err := l.db.QueryRowContext(ctx, `SELECT value FROM title_data WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("titledata: read %s: %w", key, err)
	}
	var records []domain.PuzzleRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("titledata %s: batch payload: %w", key, err)
	}
	return records, nil
}

// Seed writes one dataset batch into the mirror, replacing any previous
// value for the key.
func (l *Local) Seed(ctx context.Context, dataset domain.Dataset, n int, records []domain.PuzzleRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	key := BatchKey(l.namespace, dataset, n)
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO title_data(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	if err != nil {
		return fmt.Errorf("titledata: seed %s: %w", key, err)
	}
	return nil
}
