package timecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpaysg/timecard-payslip/dto"
)

func TestParseLineCompact(t *testing.T) {
	row, entry := ParseLine("27 0730 1930", 2025, 11)
	require.NotNil(t, row)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-27", row.Date)
	assert.Equal(t, "0730", row.TimeInRaw)
	assert.Equal(t, "1930", row.TimeOutRaw)
	assert.Equal(t, "07:30", entry.ClockIn)
	assert.Equal(t, "19:30", entry.ClockOut)
	assert.Equal(t, DefaultBreakMinutes, entry.BreakMinutes)
	assert.Equal(t, dto.DayTypeNormal, entry.DayType)
}

func TestParseLineColonRange(t *testing.T) {
	row, entry := ParseLine("3 7:00-19:00", 2025, 11)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-03", row.Date)
	assert.Equal(t, "07:00", entry.ClockIn)
	assert.Equal(t, "19:00", entry.ClockOut)
	assert.Equal(t, "0700", row.TimeInRaw)
}

func TestParseLineMergedDayDigit(t *testing.T) {
	_, entry := ParseLine("307:00 - 19:00", 2025, 11)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-03", entry.Date)
	assert.Equal(t, "07:00", entry.ClockIn)
	assert.Equal(t, "19:00", entry.ClockOut)
}

func TestParseLineDayHourToken(t *testing.T) {
	_, entry := ParseLine("1807 - 1900", 2025, 11)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-18", entry.Date)
	assert.Equal(t, "07:00", entry.ClockIn)
	assert.Equal(t, "19:00", entry.ClockOut)
}

func TestParseLineOff(t *testing.T) {
	row, entry := ParseLine("12 OFF", 2025, 11)
	require.NotNil(t, row)
	assert.Nil(t, entry)
	assert.Equal(t, "2025-11-12", row.Date)
	assert.True(t, row.IsOff)
}

func TestParseLinePlusOne(t *testing.T) {
	row, entry := ParseLine("27 0730 1930 +1", 2025, 11)
	require.NotNil(t, entry)
	assert.True(t, row.PlusOne)
	assert.Equal(t, 1.0, entry.ExtraOtHours)
}

func TestParseLineFallbackISODate(t *testing.T) {
	_, entry := ParseLine("2025-11-03 0730 1930", 2025, 11)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-03", entry.Date)
	assert.Equal(t, "07:30", entry.ClockIn)
	assert.Equal(t, "19:30", entry.ClockOut)
}

func TestParseLineFallbackSingleTime(t *testing.T) {
	_, entry := ParseLine("03/11 0730", 2025, 11)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-03", entry.Date)
	assert.Equal(t, "07:30", entry.ClockIn)
	assert.Equal(t, DefaultClockOut, entry.ClockOut)
}

func TestParseLineFallbackSkipsYearToken(t *testing.T) {
	_, entry := ParseLine("2025 periode 03/11 0730", 2025, 11)
	require.NotNil(t, entry)
	assert.Equal(t, "2025-11-03", entry.Date)
	assert.Equal(t, "07:30", entry.ClockIn)
	assert.Equal(t, DefaultClockOut, entry.ClockOut)
}

func TestParseLineInvalidDay(t *testing.T) {
	row, entry := ParseLine("35 0730 1930", 2025, 11)
	assert.Nil(t, row)
	assert.Nil(t, entry)
}

func TestParseLineInvalidTimeFallsThrough(t *testing.T) {
	// 9999 is not a clock time; no grammar should produce an entry.
	_, entry := ParseLine("27 9999 9999", 2025, 11)
	assert.Nil(t, entry)
}

func TestSplitTwoColumn(t *testing.T) {
	parts := SplitTwoColumn("3 0700 1900 18 0730 1930")
	require.Len(t, parts, 2)
	assert.Equal(t, "3 0700 1900", parts[0])
	assert.Equal(t, "18 0730 1930", parts[1])

	assert.Equal(t, []string{"27 0730 1930"}, SplitTwoColumn("27 0730 1930"))
}

func TestParseFlags(t *testing.T) {
	assert.True(t, ParseFlags("12 OFF").IsOff)
	assert.True(t, ParseFlags("SUNDAY").IsOff)
	assert.True(t, ParseFlags("0700 1900 +1").PlusOne)
	assert.True(t, ParseFlags("0700 1900 +1 OT").PlusOne)
	assert.False(t, ParseFlags("27 0730 1930").PlusOne)
	assert.False(t, ParseFlags("27 0730 1930").IsOff)
}

func TestParseTextDocument(t *testing.T) {
	text := "Tahun 2025\nNovember\n3 0700 1900\n12 OFF\n27 0730 1930"
	result := ParseText(text, 0, 0)

	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, 11, result.Month)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "2025-11-03", result.Entries[0].Date)
	assert.Equal(t, "2025-11-27", result.Entries[1].Date)

	require.Len(t, result.Rows, 3)
	assert.True(t, result.Rows[1].IsOff)
}

func TestParseTextLastReadingWins(t *testing.T) {
	text := "Tahun 2025\nNovember\n3 0700 1900\n3 0730 1930"
	result := ParseText(text, 0, 0)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "07:30", result.Entries[0].ClockIn)
}

func TestParseTextOverrides(t *testing.T) {
	text := "Tahun 2025\nNovember\n3 0700 1900"
	result := ParseText(text, 2024, 1)

	assert.Equal(t, 2024, result.Year)
	assert.Equal(t, 1, result.Month)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "2024-01-03", result.Entries[0].Date)
}

func TestParseDocumentTwoColumnSplit(t *testing.T) {
	text := "Tahun 2025\nNovember\n3 0700 1900 18 0730 1930"
	result := ParseText(text, 0, 0)

	require.Len(t, result.Entries, 2)
	assert.Equal(t, "2025-11-03", result.Entries[0].Date)
	assert.Equal(t, "2025-11-18", result.Entries[1].Date)
}
