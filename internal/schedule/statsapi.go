// Package schedule fetches the daily MLB slate from the Stats API and
// normalizes it into slate entries.
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/dugoutlabs/slate-cli/internal/model"
	"github.com/dugoutlabs/slate-cli/internal/team"
)

// Provider returns the slate of scheduled games for one date.
type Provider interface {
	Slate(ctx context.Context, dateISO string) ([]model.SlateEntry, error)
}

const (
	defaultBaseURL = "https://statsapi.mlb.com"
	slateNotes     = "Auto from MLB schedule - awaiting odds/model."
	slateSources   = "MLB Stats API"
)

// Options configures the Stats API provider.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// StatsAPI implements Provider against the public MLB Stats API.
type StatsAPI struct {
	client  *http.Client
	opts    Options
	limiter *rate.Limiter
	eastern *time.Location
}

// NewStatsAPI creates a Stats API provider. Requests are throttled to
// 5 req/s, which is far below anything the endpoint objects to.
func NewStatsAPI(opts Options) (*StatsAPI, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "slate-cli/1.0"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 20 * time.Second
	}

	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, eris.Wrap(err, "schedule: load eastern timezone")
	}

	return &StatsAPI{
		client:  &http.Client{Timeout: opts.Timeout},
		opts:    opts,
		limiter: rate.NewLimiter(5, 1),
		eastern: eastern,
	}, nil
}

// scheduleResponse mirrors the subset of the Stats API schedule payload
// the pipeline consumes.
type scheduleResponse struct {
	Dates []struct {
		Games []struct {
			GamePk   int64  `json:"gamePk"`
			GameDate string `json:"gameDate"`
			Teams    struct {
				Away gameSide `json:"away"`
				Home gameSide `json:"home"`
			} `json:"teams"`
		} `json:"games"`
	} `json:"dates"`
}

type gameSide struct {
	Team struct {
		Abbreviation string `json:"abbreviation"`
		TeamCode     string `json:"teamCode"`
		Name         string `json:"name"`
	} `json:"team"`
	ProbablePitcher struct {
		FullName string `json:"fullName"`
	} `json:"probablePitcher"`
}

// Slate fetches and normalizes the schedule for the given date. A day
// with no games returns an empty slice, not an error. Any transport or
// decode failure is fatal for the run: no partial slate is synthesized.
func (s *StatsAPI) Slate(ctx context.Context, dateISO string) ([]model.SlateEntry, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "schedule: rate limiter wait")
	}

	q := url.Values{}
	q.Set("sportId", "1")
	q.Set("date", dateISO)
	q.Set("hydrate", "probablePitchers,team,linescore")
	q.Set("language", "en")
	reqURL := s.opts.BaseURL + "/api/v1/schedule?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, eris.Wrap(err, "schedule: create request")
	}
	req.Header.Set("User-Agent", s.opts.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "schedule: fetch")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("schedule: unexpected status %d from %s", resp.StatusCode, reqURL)
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, eris.Wrap(err, "schedule: decode response")
	}

	var entries []model.SlateEntry
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			entries = append(entries, model.SlateEntry{
				GameDate:    dateISO,
				Away:        team.Normalize(sideCode(g.Teams.Away)),
				Home:        team.Normalize(sideCode(g.Teams.Home)),
				StartET:     s.startET(g.GameDate),
				AwayPitcher: g.Teams.Away.ProbablePitcher.FullName,
				HomePitcher: g.Teams.Home.ProbablePitcher.FullName,
				BoxLink:     boxLink(g.GamePk),
				Notes:       slateNotes,
				Sources:     slateSources,
			})
		}
	}
	return entries, nil
}

// sideCode picks the best available team identifier: abbreviation,
// then teamCode, then full name.
func sideCode(s gameSide) string {
	switch {
	case s.Team.Abbreviation != "":
		return s.Team.Abbreviation
	case s.Team.TeamCode != "":
		return s.Team.TeamCode
	default:
		return s.Team.Name
	}
}

// startET renders the UTC game timestamp as an Eastern clock string
// like "7:05 PM". Unparseable or missing timestamps come back empty.
func (s *StatsAPI) startET(gameDate string) string {
	if gameDate == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, gameDate)
	if err != nil {
		return ""
	}
	return t.In(s.eastern).Format("3:04 PM")
}

func boxLink(gamePk int64) string {
	if gamePk == 0 {
		return ""
	}
	return fmt.Sprintf("https://www.mlb.com/gameday/%d", gamePk)
}
