package notion

import (
	"time"

	"github.com/jomei/notionapi"
)

// Property builders for composing page payloads.

// Title wraps text as a title property value.
func Title(text string) notionapi.TitleProperty {
	return notionapi.TitleProperty{
		Type: notionapi.PropertyTypeTitle,
		Title: []notionapi.RichText{
			{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: text}},
		},
	}
}

// Text wraps text as a rich_text property value.
func Text(text string) notionapi.RichTextProperty {
	return notionapi.RichTextProperty{
		Type: notionapi.PropertyTypeRichText,
		RichText: []notionapi.RichText{
			{Type: notionapi.ObjectTypeText, Text: &notionapi.Text{Content: text}},
		},
	}
}

// Number wraps a numeric value.
func Number(v float64) notionapi.NumberProperty {
	return notionapi.NumberProperty{
		Type:   notionapi.PropertyTypeNumber,
		Number: v,
	}
}

// DateStart wraps an ISO date (YYYY-MM-DD) as a date property value.
// Returns false when the input does not parse.
func DateStart(iso string) (notionapi.DateProperty, bool) {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return notionapi.DateProperty{}, false
	}
	d := notionapi.Date(t)
	return notionapi.DateProperty{
		Type: notionapi.PropertyTypeDate,
		Date: &notionapi.DateObject{Start: &d},
	}, true
}

// URL wraps a link as a url property value.
func URL(link string) notionapi.URLProperty {
	return notionapi.URLProperty{
		Type: notionapi.PropertyTypeURL,
		URL:  link,
	}
}
