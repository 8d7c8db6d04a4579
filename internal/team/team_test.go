package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("aliases collapse to canonical codes", func(t *testing.T) {
		t.Parallel()
		cases := map[string]string{
			"ARI":     "AZ",
			"D-BACKS": "AZ",
			"SFG":     "SF",
			"SDP":     "SD",
			"TBR":     "TB",
			"CWS":     "CHW",
			"WAS":     "WSH",
			"KCR":     "KC",
			"OAK":     "ATH",
			"OAK A'S": "ATH",
		}
		for raw, want := range cases {
			assert.Equal(t, want, Normalize(raw))
		}
	})

	t.Run("trims and uppercases", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "NYY", Normalize("  nyy "))
		assert.Equal(t, "AZ", Normalize("ari"))
	})

	t.Run("unknown codes pass through", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "AAA", Normalize("AAA"))
		assert.Equal(t, "", Normalize(""))
	})

	t.Run("idempotent over every alias", func(t *testing.T) {
		t.Parallel()
		for raw := range aliases {
			once := Normalize(raw)
			assert.Equal(t, once, Normalize(once), "alias %q", raw)
		}
		assert.Equal(t, "XYZ", Normalize(Normalize("xyz")))
	})
}
