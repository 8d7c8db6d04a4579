package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	mode       TEXT NOT NULL,
	game_date  TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'running',
	processed  INTEGER NOT NULL DEFAULT 0,
	skipped    INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS upserts (
	id         TEXT PRIMARY KEY,
	run_id     TEXT NOT NULL REFERENCES runs(id),
	game_key   TEXT NOT NULL,
	action     TEXT NOT NULL,
	page_id    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_runs_game_date ON runs(game_date);
CREATE INDEX IF NOT EXISTS idx_upserts_run_id ON upserts(run_id);
CREATE INDEX IF NOT EXISTS idx_upserts_game_key ON upserts(game_key);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) BeginRun(ctx context.Context, mode, gameDate string) (*Run, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, mode, game_date, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, mode, gameDate, StatusRunning, now, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	return &Run{
		ID:        id,
		Mode:      mode,
		GameDate:  gameDate,
		Status:    StatusRunning,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *SQLiteStore) RecordUpsert(ctx context.Context, runID, gameKey, action, pageID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO upserts (id, run_id, game_key, action, page_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), runID, gameKey, action, pageID, time.Now().UTC(),
	)
	return eris.Wrapf(err, "sqlite: record upsert %s", gameKey)
}

func (s *SQLiteStore) FinishRun(ctx context.Context, runID, status string, processed, skipped int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET status = ?, processed = ?, skipped = ?, updated_at = ? WHERE id = ?`,
		status, processed, skipped, time.Now().UTC(), runID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: finish run %s", runID)
	}
	return checkRowsAffected(res, "run", runID)
}

func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, game_date, status, processed, skipped, created_at, updated_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close() //nolint:errcheck

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Mode, &r.GameDate, &r.Status, &r.Processed, &r.Skipped, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan run")
		}
		runs = append(runs, r)
	}
	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

func (s *SQLiteStore) ListUpserts(ctx context.Context, runID string) ([]Upsert, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, game_key, action, page_id, created_at
		 FROM upserts WHERE run_id = ? ORDER BY created_at`,
		runID,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list upserts for run %s", runID)
	}
	defer rows.Close() //nolint:errcheck

	var ups []Upsert
	for rows.Next() {
		var u Upsert
		if err := rows.Scan(&u.ID, &u.RunID, &u.GameKey, &u.Action, &u.PageID, &u.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan upsert")
		}
		ups = append(ups, u)
	}
	return ups, eris.Wrap(rows.Err(), "sqlite: list upserts iterate")
}

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Errorf("%s not found: %s", entity, id)
	}
	return nil
}
