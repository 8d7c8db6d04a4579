// Package oddsfeed loads a market odds CSV and keys each quote by game.
package oddsfeed

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/dugoutlabs/slate-cli/internal/gamekey"
	"github.com/dugoutlabs/slate-cli/internal/model"
	"github.com/dugoutlabs/slate-cli/internal/team"
)

// Expected column headers in the odds CSV.
const (
	colDate       = "Game Date"
	colAway       = "Away Team"
	colHome       = "Home Team"
	colMLHome     = "ML - Market Home"
	colMLAway     = "ML - Market Away"
	colTotal      = "Total (Market)"
	colOverPrice  = "Over Price"
	colUnderPrice = "Under Price"
)

// defaultPrice is the standard -110 vig price assumed when the feed
// omits over/under prices.
const defaultPrice = -110.0

// Load reads an odds CSV and returns quotes keyed by game key, plus
// the number of rows skipped. Rows missing the date or either team are
// skipped, as are rows whose moneylines fail to parse; each skip is
// logged so a malformed feed degrades to "no odds for that game"
// instead of aborting the run. When the same key appears twice the
// last row wins.
func Load(path string) (map[string]model.MarketQuote, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, eris.Wrapf(err, "oddsfeed: open %s", path)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, eris.Wrapf(err, "oddsfeed: read %s", path)
	}
	if len(records) < 2 {
		return map[string]model.MarketQuote{}, 0, nil
	}

	headers := records[0]
	quotes := make(map[string]model.MarketQuote)
	skipped := 0

	for i, rec := range records[1:] {
		rowNum := i + 2 // 1-based, after the header

		get := fieldGetter(headers, rec)
		date := strings.TrimSpace(get(colDate))
		away := team.Normalize(get(colAway))
		home := team.Normalize(get(colHome))
		if date == "" || away == "" || home == "" {
			skipped++
			zap.L().Warn("oddsfeed: row missing date or team, skipping",
				zap.Int("row", rowNum),
			)
			continue
		}

		mlHome, errHome := strconv.ParseFloat(strings.TrimSpace(get(colMLHome)), 64)
		mlAway, errAway := strconv.ParseFloat(strings.TrimSpace(get(colMLAway)), 64)
		if errHome != nil || errAway != nil {
			skipped++
			zap.L().Warn("oddsfeed: row has unparseable moneyline, skipping",
				zap.Int("row", rowNum),
				zap.String("key", gamekey.Make(date, away, home)),
			)
			continue
		}

		q := model.MarketQuote{
			MLHome:     mlHome,
			MLAway:     mlAway,
			OverPrice:  parsePrice(get(colOverPrice)),
			UnderPrice: parsePrice(get(colUnderPrice)),
		}
		if total, err := strconv.ParseFloat(strings.TrimSpace(get(colTotal)), 64); err == nil {
			q.Total = &total
		}

		quotes[gamekey.Make(date, away, home)] = q
	}

	return quotes, skipped, nil
}

// parsePrice parses an over/under price, falling back to the standard
// -110 when the field is empty or malformed.
func parsePrice(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultPrice
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultPrice
	}
	return v
}

func fieldGetter(headers, rec []string) func(string) string {
	byName := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(rec) {
			byName[h] = rec[i]
		}
	}
	return func(name string) string { return byName[name] }
}
