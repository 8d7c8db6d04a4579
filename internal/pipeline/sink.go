package pipeline

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/dugoutlabs/slate-cli/internal/gamekey"
	"github.com/dugoutlabs/slate-cli/internal/model"
	"github.com/dugoutlabs/slate-cli/pkg/notion"
)

// Sink is the external record store receiving prediction records.
type Sink interface {
	Upsert(ctx context.Context, p model.Prediction) (*notion.Outcome, error)
}

// NotionSink writes prediction records to a Notion database. It builds
// the full property payload for each record, then filters it against
// the destination schema so unrecognized columns are never sent.
type NotionSink struct {
	Client     notion.Client
	DatabaseID string
	Schema     *notion.Schema
}

func (s *NotionSink) Upsert(ctx context.Context, p model.Prediction) (*notion.Outcome, error) {
	key := gamekey.ForEntry(p.SlateEntry)
	props := s.Schema.Filter(buildProperties(p, key, s.Schema.TitleProp))
	return notion.UpsertByKey(ctx, s.Client, s.DatabaseID, key, props)
}

// buildProperties renders the full prediction record as Notion page
// properties. The title column carries the away code; the rest of the
// columns follow the destination naming.
func buildProperties(p model.Prediction, key, titleProp string) notionapi.Properties {
	props := notionapi.Properties{
		titleProp:          notion.Title(p.Away),
		notion.KeyProperty: notion.Text(key),
	}
	if d, ok := notion.DateStart(p.GameDate); ok {
		props["Game Date"] = d
	}
	if titleProp != "Away Team" {
		props["Away Team"] = notion.Text(p.Away)
	}
	props["Home Team"] = notion.Text(p.Home)
	props["Start Time (ET)"] = notion.Text(p.StartET)
	props["Away Pitcher"] = notion.Text(p.AwayPitcher)
	props["Home Pitcher"] = notion.Text(p.HomePitcher)

	if p.Quote != nil {
		props["ML - Market Home"] = notion.Number(p.Quote.MLHome)
		props["ML - Market Away"] = notion.Number(p.Quote.MLAway)
		if p.Quote.Total != nil {
			props["Total (Market)"] = notion.Number(*p.Quote.Total)
		}
	}
	if p.Picks != nil {
		props["Prediction - Moneyline"] = notion.Text(p.Picks.Moneyline)
		props["Confidence (ML)"] = notion.Number(float64(p.Picks.MoneylineConf))
		props["Prediction - Total"] = notion.Text(p.Picks.Total)
		props["Confidence (Total)"] = notion.Number(float64(p.Picks.TotalConf))
		props["Prediction - Run Line"] = notion.Text(p.Picks.RunLine)
		props["Confidence (Run Line)"] = notion.Number(float64(p.Picks.RunLineConf))
	}

	if p.BoxLink != "" {
		props["Box Score Link"] = notion.URL(p.BoxLink)
	}
	props["Notes / Angle"] = notion.Text(p.Notes)
	props["Data Source(s)"] = notion.Text(p.Sources)

	return props
}
