// Package model defines the data types shared across the slate pipeline.
package model

// SlateEntry is one scheduled game from the daily MLB slate. Team codes
// are canonical (see internal/team). Entries are immutable once written
// to the local snapshot and serve as the authoritative join anchor.
type SlateEntry struct {
	GameDate    string `json:"game_date"` // YYYY-MM-DD
	Away        string `json:"away"`
	Home        string `json:"home"`
	StartET     string `json:"start_et"`
	AwayPitcher string `json:"away_p"`
	HomePitcher string `json:"home_p"`
	BoxLink     string `json:"box_link"`
	Notes       string `json:"notes"`
	Sources     string `json:"sources"`
}

// MarketQuote holds the betting-market numbers for one game. Moneyline
// prices are American format. Total is nil when the market posted no
// over/under number.
type MarketQuote struct {
	MLHome     float64  `json:"ml_home"`
	MLAway     float64  `json:"ml_away"`
	Total      *float64 `json:"total,omitempty"`
	OverPrice  float64  `json:"over_price"`
	UnderPrice float64  `json:"under_price"`
}

// Picks holds the derived recommendations for one game, each with a
// confidence score in [1,10].
type Picks struct {
	Moneyline     string `json:"pick_ml"`
	MoneylineConf int    `json:"conf_ml"`
	Total         string `json:"pick_tot"`
	TotalConf     int    `json:"conf_tot"`
	RunLine       string `json:"pick_rl"`
	RunLineConf   int    `json:"conf_rl"`
}

// Prediction is the unit upserted to the record store and written to
// the snapshot CSV: a slate entry plus, when the odds feed had a row
// for the game, its market quote and derived picks.
type Prediction struct {
	SlateEntry
	Quote *MarketQuote `json:"quote,omitempty"`
	Picks *Picks       `json:"picks,omitempty"`
}
