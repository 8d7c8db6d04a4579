// Package snapshot reads and writes the local CSV snapshots: the
// daily slate file and the joined predictions file.
package snapshot

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/dugoutlabs/slate-cli/internal/model"
	"github.com/dugoutlabs/slate-cli/internal/team"
)

// columns is the fixed snapshot column set. Order matters: the odds
// mode re-reads slate files written by the daily mode.
var columns = []string{
	"game_date", "away", "home", "start_et", "away_p", "home_p",
	"ml_home", "ml_away", "total",
	"pick_ml", "conf_ml", "pick_tot", "conf_tot", "pick_rl", "conf_rl",
	"box_link", "notes", "sources",
}

// SlatePath returns the slate snapshot path for a date.
func SlatePath(dir, dateISO string) string {
	return filepath.Join(dir, "slate_"+dateISO+".csv")
}

// PredictionsPath returns the joined predictions snapshot path for a date.
func PredictionsPath(dir, dateISO string) string {
	return filepath.Join(dir, "predictions_"+dateISO+".csv")
}

// Write persists predictions to a CSV snapshot, creating parent
// directories as needed. An empty set writes nothing.
func Write(path string, preds []model.Prediction) error {
	if len(preds) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "snapshot: create dir for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "snapshot: create %s", path)
	}
	defer f.Close() //nolint:errcheck

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return eris.Wrap(err, "snapshot: write header")
	}
	for _, p := range preds {
		if err := w.Write(row(p)); err != nil {
			return eris.Wrap(err, "snapshot: write row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return eris.Wrap(err, "snapshot: flush")
	}
	return nil
}

// ReadSlate loads a slate snapshot as the authoritative entry set,
// re-normalizing team codes on the way in.
func ReadSlate(path string) ([]model.SlateEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "snapshot: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "snapshot: read %s", path)
	}
	if len(records) < 2 {
		return nil, nil
	}

	headers := records[0]
	entries := make([]model.SlateEntry, 0, len(records)-1)
	for _, rec := range records[1:] {
		get := fieldGetter(headers, rec)
		entries = append(entries, model.SlateEntry{
			GameDate:    strings.TrimSpace(get("game_date")),
			Away:        team.Normalize(get("away")),
			Home:        team.Normalize(get("home")),
			StartET:     get("start_et"),
			AwayPitcher: get("away_p"),
			HomePitcher: get("home_p"),
			BoxLink:     get("box_link"),
		})
	}
	return entries, nil
}

// fieldGetter pairs a header row with one record, returning empty
// strings for columns the record does not cover.
func fieldGetter(headers, rec []string) func(string) string {
	byName := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(rec) {
			byName[h] = rec[i]
		}
	}
	return func(name string) string { return byName[name] }
}

func row(p model.Prediction) []string {
	var mlHome, mlAway, total string
	if p.Quote != nil {
		mlHome = formatFloat(p.Quote.MLHome)
		mlAway = formatFloat(p.Quote.MLAway)
		if p.Quote.Total != nil {
			total = formatFloat(*p.Quote.Total)
		}
	}

	var pickML, confML, pickTot, confTot, pickRL, confRL string
	if p.Picks != nil {
		pickML = p.Picks.Moneyline
		confML = strconv.Itoa(p.Picks.MoneylineConf)
		pickTot = p.Picks.Total
		confTot = strconv.Itoa(p.Picks.TotalConf)
		pickRL = p.Picks.RunLine
		confRL = strconv.Itoa(p.Picks.RunLineConf)
	}

	return []string{
		p.GameDate, p.Away, p.Home, p.StartET, p.AwayPitcher, p.HomePitcher,
		mlHome, mlAway, total,
		pickML, confML, pickTot, confTot, pickRL, confRL,
		p.BoxLink, p.Notes, p.Sources,
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
