// Package team normalizes franchise codes so the odds feed and the MLB
// schedule share the same identifiers.
package team

import "strings"

// aliases collapses known cross-source variants onto one canonical
// code. Canonical codes map to themselves so normalization is
// idempotent. The table is fixed; never mutate it at runtime.
var aliases = map[string]string{
	// Common cross-site variants.
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

	// Canonical pass-throughs.
	"AZ": "AZ", "SF": "SF", "SD": "SD", "TB": "TB", "CHW": "CHW",
	"NYY": "NYY", "NYM": "NYM", "LAA": "LAA", "LAD": "LAD",
	"CHC": "CHC", "MIL": "MIL", "PIT": "PIT", "CIN": "CIN",
	"STL": "STL", "MIA": "MIA", "BOS": "BOS", "BAL": "BAL", "HOU": "HOU",
	"SEA": "SEA", "TEX": "TEX", "PHI": "PHI", "WSH": "WSH", "TOR": "TOR",
	"ATL": "ATL", "CLE": "CLE", "DET": "DET", "MIN": "MIN", "KC": "KC",
	"COL": "COL", "ATH": "ATH",
}

// Normalize trims and uppercases a raw team identifier, then applies
// the alias table. Unknown codes pass through unchanged.
func Normalize(code string) string {
	c := strings.ToUpper(strings.TrimSpace(code))
	if canonical, ok := aliases[c]; ok {
		return canonical
	}
	return c
}
