package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dugoutlabs/slate-cli/internal/store"
)

func TestRunDate(t *testing.T) {
	dateFlag = "2025-08-13"
	t.Cleanup(func() { dateFlag = "" })
	assert.Equal(t, "2025-08-13", runDate())

	dateFlag = ""
	assert.Equal(t, time.Now().Format("2006-01-02"), runDate())
}

func TestOddsFile(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "odds.csv", oddsFile(nil))
	assert.Equal(t, "book.csv", oddsFile([]string{"book.csv"}))
}

func TestTruncateID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12345678", truncateID("12345678-abcd"))
	assert.Equal(t, "short", truncateID("short"))
}

func TestFormatRuns(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	formatRuns(&buf, []store.Run{
		{
			ID: "aaaaaaaa-1111", Mode: "daily", GameDate: "2025-08-13",
			Status: store.StatusComplete, Processed: 15,
			CreatedAt: time.Date(2025, 8, 13, 9, 0, 0, 0, time.UTC),
		},
	})

	out := buf.String()
	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "daily")
	assert.Contains(t, out, "complete")
	assert.Contains(t, out, "15")
}
