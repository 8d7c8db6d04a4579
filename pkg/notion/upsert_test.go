package notion

import (
	"context"
	"testing"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func queryResult(pages ...notionapi.Page) *notionapi.DatabaseQueryResponse {
	return &notionapi.DatabaseQueryResponse{Results: pages}
}

func TestFindPageByKey(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.MatchedBy(func(req *notionapi.DatabaseQueryRequest) bool {
			f, ok := req.Filter.(notionapi.PropertyFilter)
			return ok && f.Property == KeyProperty && f.RichText != nil &&
				f.RichText.Equals == "2025-08-13|NYY|BOS" && req.PageSize == 1
		})).Return(queryResult(notionapi.Page{ID: "page-1"}), nil)

		id, err := FindPageByKey(ctx, mc, "db-1", "2025-08-13|NYY|BOS")
		require.NoError(t, err)
		assert.Equal(t, "page-1", id)
		mc.AssertExpectations(t)
	})

	t.Run("absent", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.Anything).Return(queryResult(), nil)

		id, err := FindPageByKey(ctx, mc, "db-1", "2025-08-13|AAA|BBB")
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("query error propagates", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.Anything).Return(nil, assert.AnError)

		_, err := FindPageByKey(ctx, mc, "db-1", "k")
		assert.Error(t, err)
	})
}

func TestUpsertByKey(t *testing.T) {
	ctx := context.Background()
	props := notionapi.Properties{KeyProperty: Text("2025-08-13|NYY|BOS")}

	t.Run("creates when no page matches", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.Anything).Return(queryResult(), nil)
		mc.On("CreatePage", ctx, mock.MatchedBy(func(req *notionapi.PageCreateRequest) bool {
			return req.Parent.DatabaseID == "db-1" && len(req.Properties) == 1
		})).Return(&notionapi.Page{ID: "new-page"}, nil)

		out, err := UpsertByKey(ctx, mc, "db-1", "2025-08-13|NYY|BOS", props)
		require.NoError(t, err)
		assert.Equal(t, ActionCreated, out.Action)
		assert.Equal(t, "new-page", out.PageID)
		assert.Equal(t, "2025-08-13|NYY|BOS", out.Key)
		mc.AssertExpectations(t)
	})

	t.Run("updates in place when a page matches", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.Anything).
			Return(queryResult(notionapi.Page{ID: "page-7"}), nil)
		mc.On("UpdatePage", ctx, "page-7", mock.AnythingOfType("*notionapi.PageUpdateRequest")).
			Return(&notionapi.Page{ID: "page-7"}, nil)

		out, err := UpsertByKey(ctx, mc, "db-1", "2025-08-13|NYY|BOS", props)
		require.NoError(t, err)
		assert.Equal(t, ActionUpdated, out.Action)
		assert.Equal(t, "page-7", out.PageID)
		mc.AssertExpectations(t)
	})

	t.Run("rerun with same key stays an update", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.Anything).
			Return(queryResult(notionapi.Page{ID: "page-7"}), nil).Twice()
		mc.On("UpdatePage", ctx, "page-7", mock.Anything).
			Return(&notionapi.Page{ID: "page-7"}, nil).Twice()

		for i := 0; i < 2; i++ {
			out, err := UpsertByKey(ctx, mc, "db-1", "2025-08-13|NYY|BOS", props)
			require.NoError(t, err)
			assert.Equal(t, ActionUpdated, out.Action)
		}
		mc.AssertExpectations(t)
	})

	t.Run("create failure propagates", func(t *testing.T) {
		mc := new(MockClient)
		mc.On("QueryDatabase", ctx, "db-1", mock.Anything).Return(queryResult(), nil)
		mc.On("CreatePage", ctx, mock.Anything).Return(nil, assert.AnError)

		_, err := UpsertByKey(ctx, mc, "db-1", "k", props)
		assert.Error(t, err)
	})
}

func TestPropertyBuilders(t *testing.T) {
	t.Parallel()

	t.Run("title and text wrap content", func(t *testing.T) {
		t.Parallel()
		title := Title("NYY")
		require.Len(t, title.Title, 1)
		assert.Equal(t, "NYY", title.Title[0].Text.Content)

		text := Text("hello")
		require.Len(t, text.RichText, 1)
		assert.Equal(t, "hello", text.RichText[0].Text.Content)
	})

	t.Run("number", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 8.5, Number(8.5).Number)
	})

	t.Run("date start parses ISO dates", func(t *testing.T) {
		t.Parallel()
		d, ok := DateStart("2025-08-13")
		require.True(t, ok)
		require.NotNil(t, d.Date.Start)

		_, ok = DateStart("13/08/2025")
		assert.False(t, ok)
	})

	t.Run("url", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "https://example.com", URL("https://example.com").URL)
	})
}
