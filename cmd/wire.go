package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/dugoutlabs/slate-cli/internal/pipeline"
	"github.com/dugoutlabs/slate-cli/internal/schedule"
	"github.com/dugoutlabs/slate-cli/internal/store"
	"github.com/dugoutlabs/slate-cli/pkg/notion"
)

// newPipeline assembles a full pipeline from configuration: Notion
// client with schema loaded and the Key column ensured, schedule
// provider, and local audit store. The returned cleanup closes the
// audit store.
func newPipeline(ctx context.Context) (*pipeline.Pipeline, func(), error) {
	if err := cfg.ValidateNotion(); err != nil {
		return nil, nil, err
	}

	client := notion.NewClient(cfg.Notion.Token, notion.WithRateLimit(cfg.Notion.RateLimit))

	schema, err := notion.LoadSchema(ctx, client, cfg.Notion.DatabaseID)
	if err != nil {
		return nil, nil, err
	}
	if err := schema.EnsureKey(ctx, client, cfg.Notion.DatabaseID); err != nil {
		return nil, nil, err
	}

	provider, err := schedule.NewStatsAPI(schedule.Options{
		BaseURL:   cfg.MLB.BaseURL,
		UserAgent: cfg.MLB.UserAgent,
		Timeout:   time.Duration(cfg.MLB.TimeoutSecs) * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}

	audit, err := initAudit(ctx)
	if err != nil {
		return nil, nil, err
	}

	pl := &pipeline.Pipeline{
		Provider: provider,
		Sink: &pipeline.NotionSink{
			Client:     client,
			DatabaseID: cfg.Notion.DatabaseID,
			Schema:     schema,
		},
		Audit:       audit,
		SnapshotDir: cfg.Snapshot.Dir,
	}
	return pl, func() { _ = audit.Close() }, nil
}

// initAudit opens and migrates the local audit store.
func initAudit(ctx context.Context) (store.Store, error) {
	audit, err := store.NewSQLite(cfg.Audit.Path)
	if err != nil {
		return nil, eris.Wrap(err, "open audit store")
	}
	if err := audit.Migrate(ctx); err != nil {
		_ = audit.Close()
		return nil, eris.Wrap(err, "migrate audit store")
	}
	return audit, nil
}
