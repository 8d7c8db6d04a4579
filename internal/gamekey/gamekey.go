// Package gamekey builds the composite game identifier and joins the
// odds feed onto the authoritative slate by exact key match.
package gamekey

import (
	"github.com/dugoutlabs/slate-cli/internal/model"
)

const sep = "|"

// Make builds the composite key for one scheduled game. Codes must
// already be canonical; away always precedes home.
func Make(date, away, home string) string {
	return date + sep + away + sep + home
}

// ForEntry returns the key for a slate entry.
func ForEntry(e model.SlateEntry) string {
	return Make(e.GameDate, e.Away, e.Home)
}

// Deriver turns a market quote into picks for the given matchup.
type Deriver func(q model.MarketQuote, away, home string) model.Picks

// Join merges market quotes onto the slate, producing exactly one
// prediction per slate entry. Entries with no matching quote keep
// empty market fields and empty picks. Quotes whose key matches no
// slate entry are dropped, so the join never emits rows absent from
// the slate.
func Join(slate []model.SlateEntry, quotes map[string]model.MarketQuote, derive Deriver) []model.Prediction {
	out := make([]model.Prediction, 0, len(slate))
	for _, e := range slate {
		p := model.Prediction{SlateEntry: e}
		if q, ok := quotes[ForEntry(e)]; ok {
			quote := q
			picks := derive(q, e.Away, e.Home)
			p.Quote = &quote
			p.Picks = &picks
		}
		out = append(out, p)
	}
	return out
}
