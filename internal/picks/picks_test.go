package picks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugoutlabs/slate-cli/internal/model"
)

func TestMoneyline(t *testing.T) {
	t.Parallel()

	t.Run("home favorite at -150/+130", func(t *testing.T) {
		t.Parallel()
		side, conf, favProb := Moneyline(-150, 130)
		assert.Equal(t, SideHome, side)
		assert.Equal(t, 5, conf)
		assert.InDelta(t, 0.5800, favProb, 1e-3)
	})

	t.Run("away favorite", func(t *testing.T) {
		t.Parallel()
		side, conf, favProb := Moneyline(130, -150)
		assert.Equal(t, SideAway, side)
		assert.Equal(t, 5, conf)
		assert.InDelta(t, 0.5800, favProb, 1e-3)
	})

	t.Run("dead even goes home", func(t *testing.T) {
		t.Parallel()
		side, conf, favProb := Moneyline(-110, -110)
		assert.Equal(t, SideHome, side)
		assert.Equal(t, 3, conf)
		assert.InDelta(t, 0.5, favProb, 1e-9)
	})
}

func TestTotal(t *testing.T) {
	t.Parallel()

	t.Run("standard vig has no edge", func(t *testing.T) {
		t.Parallel()
		label, conf := Total(8.5, -110, -110)
		assert.Equal(t, NoEdge, label)
		assert.Equal(t, 2, conf)
	})

	t.Run("over lean", func(t *testing.T) {
		t.Parallel()
		label, conf := Total(8.5, -130, 110)
		assert.Equal(t, "Over 8.5", label)
		assert.GreaterOrEqual(t, conf, 3)
	})

	t.Run("under lean", func(t *testing.T) {
		t.Parallel()
		label, conf := Total(9, 110, -130)
		assert.Equal(t, "Under 9", label)
		assert.GreaterOrEqual(t, conf, 3)
	})
}

func TestRunLine(t *testing.T) {
	t.Parallel()

	t.Run("strong favorite lays the runs", func(t *testing.T) {
		t.Parallel()
		side, conf := RunLine(0.65)
		assert.Equal(t, RunLineFavorite, side)
		// edge 0.15: 3 + 3*1.5 rounds to 8
		assert.Equal(t, 8, conf)
	})

	t.Run("exactly at threshold", func(t *testing.T) {
		t.Parallel()
		side, _ := RunLine(0.62)
		assert.Equal(t, RunLineFavorite, side)
	})

	t.Run("weak favorite takes the cushion", func(t *testing.T) {
		t.Parallel()
		side, conf := RunLine(0.55)
		assert.Equal(t, RunLineUnderdog, side)
		// edge 0.07 scores 5, minus the dog discount
		assert.Equal(t, 4, conf)
	})

	t.Run("dog confidence floors at 2", func(t *testing.T) {
		t.Parallel()
		side, conf := RunLine(0.615)
		assert.Equal(t, RunLineUnderdog, side)
		assert.Equal(t, 2, conf)
	})
}

func TestDerive(t *testing.T) {
	t.Parallel()

	total := func(v float64) *float64 { return &v }

	t.Run("home favorite renders home labels", func(t *testing.T) {
		t.Parallel()
		q := model.MarketQuote{MLHome: -150, MLAway: 130, Total: total(8.5), OverPrice: -110, UnderPrice: -110}
		p := Derive(q, "NYY", "BOS")

		assert.Equal(t, "BOS ML", p.Moneyline)
		assert.Equal(t, 5, p.MoneylineConf)
		assert.Equal(t, NoEdge, p.Total)
		assert.Equal(t, 2, p.TotalConf)
		// favorite prob ~0.58 is under the run-line threshold
		assert.Equal(t, "NYY +1.5", p.RunLine)
	})

	t.Run("heavy home favorite lays the runs", func(t *testing.T) {
		t.Parallel()
		q := model.MarketQuote{MLHome: -250, MLAway: 210, OverPrice: -110, UnderPrice: -110}
		p := Derive(q, "TB", "HOU")

		assert.Equal(t, "HOU ML", p.Moneyline)
		assert.Equal(t, "HOU -1.5", p.RunLine)
	})

	t.Run("heavy away favorite", func(t *testing.T) {
		t.Parallel()
		q := model.MarketQuote{MLHome: 210, MLAway: -250, OverPrice: -110, UnderPrice: -110}
		p := Derive(q, "TB", "HOU")

		assert.Equal(t, "TB ML", p.Moneyline)
		assert.Equal(t, "TB -1.5", p.RunLine)
	})

	t.Run("weak away favorite gives home the cushion", func(t *testing.T) {
		t.Parallel()
		q := model.MarketQuote{MLHome: 120, MLAway: -140, OverPrice: -110, UnderPrice: -110}
		p := Derive(q, "TB", "HOU")

		assert.Equal(t, "TB ML", p.Moneyline)
		assert.Equal(t, "HOU +1.5", p.RunLine)
	})

	t.Run("missing total means no edge", func(t *testing.T) {
		t.Parallel()
		q := model.MarketQuote{MLHome: -150, MLAway: 130, OverPrice: -110, UnderPrice: -110}
		p := Derive(q, "NYY", "BOS")
		assert.Equal(t, NoEdge, p.Total)
		assert.Equal(t, 2, p.TotalConf)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		q := model.MarketQuote{MLHome: -175, MLAway: 155, Total: total(9.5), OverPrice: -120, UnderPrice: 100}
		first := Derive(q, "SEA", "TEX")
		for i := 0; i < 5; i++ {
			require.Equal(t, first, Derive(q, "SEA", "TEX"))
		}
	})
}
