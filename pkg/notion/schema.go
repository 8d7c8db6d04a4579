package notion

import (
	"context"

	"github.com/jomei/notionapi"
	"github.com/rotisserie/eris"
)

// KeyProperty is the rich_text column holding the composite game key.
// Every upsert is matched against it.
const KeyProperty = "Key"

// Schema describes the destination database: which properties exist
// and which one is the title column. Writes are filtered against it so
// the store never receives a property the database does not recognize.
type Schema struct {
	TitleProp string
	props     map[string]struct{}
}

// LoadSchema fetches the database definition and indexes its
// properties. The database must have a title column.
func LoadSchema(ctx context.Context, c Client, dbID string) (*Schema, error) {
	db, err := c.GetDatabase(ctx, dbID)
	if err != nil {
		return nil, eris.Wrap(err, "notion: load schema")
	}

	s := &Schema{props: make(map[string]struct{}, len(db.Properties))}
	for name, cfg := range db.Properties {
		s.props[name] = struct{}{}
		if cfg.GetType() == notionapi.PropertyConfigTypeTitle {
			s.TitleProp = name
		}
	}
	if s.TitleProp == "" {
		return nil, eris.Errorf("notion: database %s has no title property", dbID)
	}
	return s, nil
}

// Has reports whether the database recognizes the property.
func (s *Schema) Has(name string) bool {
	_, ok := s.props[name]
	return ok
}

// EnsureKey adds the Key rich_text property to the database when it is
// missing, so keyed upserts have something to match on.
func (s *Schema) EnsureKey(ctx context.Context, c Client, dbID string) error {
	if s.Has(KeyProperty) {
		return nil
	}
	_, err := c.UpdateDatabase(ctx, dbID, &notionapi.DatabaseUpdateRequest{
		Properties: notionapi.PropertyConfigs{
			KeyProperty: notionapi.RichTextPropertyConfig{Type: notionapi.PropertyConfigTypeRichText},
		},
	})
	if err != nil {
		return eris.Wrap(err, "notion: ensure key property")
	}
	s.props[KeyProperty] = struct{}{}
	return nil
}

// Filter drops every property the database does not recognize and
// returns the remainder. The full record is built upstream; this is
// the capability-negotiation step before writing.
func (s *Schema) Filter(props notionapi.Properties) notionapi.Properties {
	out := make(notionapi.Properties, len(props))
	for name, v := range props {
		if s.Has(name) {
			out[name] = v
		}
	}
	return out
}
