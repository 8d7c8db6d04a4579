package notion

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
)

// Action reports what a keyed upsert did.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Outcome describes one completed upsert: the page touched, whether it
// was created or updated, and the key it was matched on.
type Outcome struct {
	PageID string
	Action Action
	Key    string
}

// FindPageByKey returns the ID of the page whose Key property equals
// key, or "" when no such page exists.
func FindPageByKey(ctx context.Context, c Client, dbID, key string) (string, error) {
	resp, err := c.QueryDatabase(ctx, dbID, &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: KeyProperty,
			RichText: &notionapi.TextFilterCondition{Equals: key},
		},
		PageSize: 1,
	})
	if err != nil {
		return "", eris.Wrapf(err, "notion: find page by key %s", key)
	}
	if len(resp.Results) == 0 {
		return "", nil
	}
	return string(resp.Results[0].ID), nil
}

// UpsertByKey writes the properties to the page matching key, creating
// the page when none exists. The caller is responsible for filtering
// props against the database schema first.
func UpsertByKey(ctx context.Context, c Client, dbID, key string, props notionapi.Properties) (*Outcome, error) {
	pageID, err := FindPageByKey(ctx, c, dbID, key)
	if err != nil {
		return nil, err
	}

	if pageID != "" {
		if _, err := c.UpdatePage(ctx, pageID, &notionapi.PageUpdateRequest{Properties: props}); err != nil {
			return nil, eris.Wrapf(err, "notion: upsert update %s", key)
		}
		return &Outcome{PageID: pageID, Action: ActionUpdated, Key: key}, nil
	}

	page, err := c.CreatePage(ctx, &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(dbID),
		},
		Properties: props,
	})
	if err != nil {
		return nil, eris.Wrapf(err, "notion: upsert create %s", key)
	}
	return &Outcome{PageID: string(page.ID), Action: ActionCreated, Key: key}, nil
}
