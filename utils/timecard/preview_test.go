package timecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpaysg/timecard-payslip/dto"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, 1))
	assert.Equal(t, 28, DaysInMonth(2025, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 30, DaysInMonth(2025, 11))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate(2024, 2, 29))
	assert.False(t, IsValidDate(2025, 2, 29))
	assert.False(t, IsValidDate(2025, 13, 1))
	assert.False(t, IsValidDate(2025, 11, 0))
	assert.False(t, IsValidDate(2025, 11, 31))
}

func TestFillMissingDaysEmpty(t *testing.T) {
	rows := FillMissingDays(nil, 2025, 11)
	require.Len(t, rows, 30)
	for i, row := range rows {
		assert.Equal(t, FormatDate(2025, 11, i+1), row.Date)
		assert.False(t, row.IsOff)
	}
}

func TestFillMissingDaysKeepsParsedRows(t *testing.T) {
	parsed := []dto.PreviewRow{
		{Date: "2025-11-27", TimeInRaw: "0730", TimeOutRaw: "1930"},
		{Date: "2025-11-03", TimeInRaw: "0700", TimeOutRaw: "1900"},
	}
	rows := FillMissingDays(parsed, 2025, 11)
	require.Len(t, rows, 30)
	assert.Equal(t, "0700", rows[2].TimeInRaw)
	assert.Equal(t, "0730", rows[26].TimeInRaw)
	assert.Empty(t, rows[0].TimeInRaw)
}

func TestFillMissingDaysDuplicatesLastWins(t *testing.T) {
	parsed := []dto.PreviewRow{
		{Date: "2025-11-03", TimeInRaw: "0700"},
		{Date: "2025-11-03", TimeInRaw: "0730"},
	}
	rows := FillMissingDays(parsed, 2025, 11)
	require.Len(t, rows, 30)
	assert.Equal(t, "0730", rows[2].TimeInRaw)
}

func TestRemapYearMonthDropsOverflowDays(t *testing.T) {
	rows := FillMissingDays([]dto.PreviewRow{
		{Date: "2025-01-31", TimeInRaw: "0700"},
	}, 2025, 1)
	entries := []dto.DayEntry{
		{Date: "2025-01-15", DayType: dto.DayTypeNormal, ClockIn: "07:00", ClockOut: "19:00", BreakMinutes: 60},
		{Date: "2025-01-31", DayType: dto.DayTypeNormal, ClockIn: "07:00", ClockOut: "19:00", BreakMinutes: 60},
	}

	newRows, newEntries := RemapYearMonth(rows, entries, 2025, 2)

	require.Len(t, newRows, 28)
	for i, row := range newRows {
		assert.Equal(t, FormatDate(2025, 2, i+1), row.Date)
	}
	require.Len(t, newEntries, 1)
	assert.Equal(t, "2025-02-15", newEntries[0].Date)
}

func TestRemapYearMonthPreservesRowData(t *testing.T) {
	rows := []dto.PreviewRow{
		{Date: "2025-11-03", TimeInRaw: "0700", TimeOutRaw: "1900"},
	}
	newRows, _ := RemapYearMonth(rows, nil, 2026, 1)
	require.Len(t, newRows, 31)
	assert.Equal(t, "2026-01-03", newRows[2].Date)
	assert.Equal(t, "0700", newRows[2].TimeInRaw)
}
