package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func TestParseHistoryDateEmpty(t *testing.T) {
	d, err := ParseHistoryDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseHistoryDate("   ")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestParseHistoryDateRelative(t *testing.T) {
	today := midnight(time.Now())

	d, err := ParseHistoryDate("today")
	require.NoError(t, err)
	assert.Equal(t, today, *d)

	d, err = ParseHistoryDate("Yesterday")
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, -1), *d)

	d, err = ParseHistoryDate("3 days ago")
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, -3), *d)

	d, err = ParseHistoryDate("1 day ago")
	require.NoError(t, err)
	assert.Equal(t, today.AddDate(0, 0, -1), *d)
}

func TestParseHistoryDateAbsolute(t *testing.T) {
	d, err := ParseHistoryDate("15/03/2026")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), *d)

	d, err = ParseHistoryDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local), *d)
}

func TestParseHistoryDateInvalid(t *testing.T) {
	for _, input := range []string{
		"tomorrow",
		"15-03-2026",
		"days ago",
		"-1 days ago",
		"9999 days ago",
		"2026/03/15",
	} {
		_, err := ParseHistoryDate(input)
		assert.Error(t, err, "input %q", input)
	}
}
