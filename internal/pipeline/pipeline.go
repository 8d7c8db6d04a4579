// Package pipeline drives the two run modes: the daily slate fetch and
// the odds ingest that derives picks.
package pipeline

import (
	"context"
	"os"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/dugoutlabs/slate-cli/internal/gamekey"
	"github.com/dugoutlabs/slate-cli/internal/model"
	"github.com/dugoutlabs/slate-cli/internal/oddsfeed"
	"github.com/dugoutlabs/slate-cli/internal/picks"
	"github.com/dugoutlabs/slate-cli/internal/schedule"
	"github.com/dugoutlabs/slate-cli/internal/snapshot"
	"github.com/dugoutlabs/slate-cli/internal/store"
)

// Run modes recorded in the audit log.
const (
	ModeDaily = "daily"
	ModeOdds  = "odds"
)

const (
	joinedNotes   = "Joined slate + odds"
	joinedSources = "MLB Stats API + Odds CSV"
)

// Pipeline wires the schedule provider, the record-store sink, the
// local audit store, and the snapshot directory. Records are processed
// one at a time; a failure stops the run with everything before it
// already committed, and reruns are safe because the sink upsert is
// keyed.
type Pipeline struct {
	Provider    schedule.Provider
	Sink        Sink
	Audit       store.Store
	SnapshotDir string
}

// Daily fetches the slate for the date, writes the slate snapshot, and
// upserts every entry with empty market fields and picks.
func (pl *Pipeline) Daily(ctx context.Context, dateISO string) error {
	slate, err := pl.Provider.Slate(ctx, dateISO)
	if err != nil {
		return eris.Wrap(err, "pipeline: fetch slate")
	}
	if len(slate) == 0 {
		zap.L().Info("no games scheduled", zap.String("date", dateISO))
		return nil
	}

	preds := make([]model.Prediction, 0, len(slate))
	for _, e := range slate {
		preds = append(preds, model.Prediction{SlateEntry: e})
	}

	slatePath := snapshot.SlatePath(pl.SnapshotDir, dateISO)
	if err := snapshot.Write(slatePath, preds); err != nil {
		return eris.Wrap(err, "pipeline: write slate snapshot")
	}
	zap.L().Info("slate snapshot written",
		zap.String("path", slatePath),
		zap.Int("games", len(preds)),
	)

	return pl.upsertAll(ctx, ModeDaily, dateISO, preds, 0)
}

// IngestOdds joins an odds CSV onto the already-fetched slate for the
// date, derives picks, upserts every prediction, and writes the joined
// snapshot. The daily slate snapshot must exist.
func (pl *Pipeline) IngestOdds(ctx context.Context, dateISO, oddsPath string) error {
	slatePath := snapshot.SlatePath(pl.SnapshotDir, dateISO)
	if _, err := os.Stat(slatePath); err != nil {
		return eris.Errorf("pipeline: slate snapshot not found: %s (run the daily mode first)", slatePath)
	}

	slate, err := snapshot.ReadSlate(slatePath)
	if err != nil {
		return eris.Wrap(err, "pipeline: read slate snapshot")
	}
	for i := range slate {
		slate[i].Notes = joinedNotes
		slate[i].Sources = joinedSources
	}

	quotes, skipped, err := oddsfeed.Load(oddsPath)
	if err != nil {
		return eris.Wrap(err, "pipeline: load odds feed")
	}
	if skipped > 0 {
		zap.L().Warn("odds feed rows skipped", zap.Int("skipped", skipped))
	}

	preds := gamekey.Join(slate, quotes, picks.Derive)

	if err := pl.upsertAll(ctx, ModeOdds, dateISO, preds, skipped); err != nil {
		return err
	}

	predsPath := snapshot.PredictionsPath(pl.SnapshotDir, dateISO)
	if err := snapshot.Write(predsPath, preds); err != nil {
		return eris.Wrap(err, "pipeline: write predictions snapshot")
	}
	zap.L().Info("predictions snapshot written",
		zap.String("path", predsPath),
		zap.Int("games", len(preds)),
	)
	return nil
}

// upsertAll pushes predictions to the sink one at a time, recording
// and logging each outcome.
func (pl *Pipeline) upsertAll(ctx context.Context, mode, dateISO string, preds []model.Prediction, skipped int) error {
	run, err := pl.Audit.BeginRun(ctx, mode, dateISO)
	if err != nil {
		return eris.Wrap(err, "pipeline: begin audit run")
	}

	done := 0
	for _, p := range preds {
		out, err := pl.Sink.Upsert(ctx, p)
		if err != nil {
			_ = pl.Audit.FinishRun(ctx, run.ID, store.StatusFailed, done, skipped)
			return eris.Wrapf(err, "pipeline: upsert %s @ %s", p.Away, p.Home)
		}
		if err := pl.Audit.RecordUpsert(ctx, run.ID, out.Key, string(out.Action), out.PageID); err != nil {
			_ = pl.Audit.FinishRun(ctx, run.ID, store.StatusFailed, done, skipped)
			return eris.Wrap(err, "pipeline: record upsert")
		}
		done++

		zap.L().Info("record upserted",
			zap.String("matchup", p.Away+" @ "+p.Home),
			zap.String("action", string(out.Action)),
			zap.String("page_id", out.PageID),
			zap.String("key", out.Key),
			zap.Bool("has_odds", p.Quote != nil),
		)
	}

	return eris.Wrap(
		pl.Audit.FinishRun(ctx, run.ID, store.StatusComplete, done, skipped),
		"pipeline: finish audit run",
	)
}
