// Package store persists a local audit trail of pipeline runs and
// per-record upsert outcomes.
package store

import (
	"context"
	"time"
)

// Run statuses.
const (
	StatusRunning  = "running"
	StatusComplete = "complete"
	StatusFailed   = "failed"
)

// Run is one pipeline invocation: the daily slate fetch or an odds
// ingest.
type Run struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"` // "daily" or "odds"
	GameDate  string    `json:"game_date"`
	Status    string    `json:"status"`
	Processed int       `json:"processed"`
	Skipped   int       `json:"skipped"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Upsert is one record-store write within a run.
type Upsert struct {
	ID        string    `json:"id"`
	RunID     string    `json:"run_id"`
	GameKey   string    `json:"game_key"`
	Action    string    `json:"action"` // "created" or "updated"
	PageID    string    `json:"page_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the audit persistence interface.
type Store interface {
	BeginRun(ctx context.Context, mode, gameDate string) (*Run, error)
	RecordUpsert(ctx context.Context, runID, gameKey, action, pageID string) error
	FinishRun(ctx context.Context, runID, status string, processed, skipped int) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	ListUpserts(ctx context.Context, runID string) ([]Upsert, error)

	Migrate(ctx context.Context) error
	Close() error
}
