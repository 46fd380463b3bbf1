package timecard

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/workpaysg/timecard-payslip/dto"
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in (year, month), or 0 for an
// invalid month.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && isLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// IsValidDate reports whether the day exists in (year, month).
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= DaysInMonth(year, month)
}

// FormatDate renders a canonical YYYY-MM-DD date string.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// dayOfMonth extracts the day component of a YYYY-MM-DD string.
func dayOfMonth(date string) int {
	if len(date) != 10 {
		return 0
	}
	day, err := strconv.Atoi(date[8:])
	if err != nil {
		return 0
	}
	return day
}

// FillMissingDays completes a parsed row list so that it covers every
// calendar day of (year, month) exactly once, sorted ascending. Days the
// parse missed become empty rows; duplicate dates collapse, later rows
// winning.
func FillMissingDays(rows []dto.PreviewRow, year, month int) []dto.PreviewRow {
	byDate := make(map[string]dto.PreviewRow, len(rows))
	for _, row := range rows {
		byDate[row.Date] = row
	}

	days := DaysInMonth(year, month)
	out := make([]dto.PreviewRow, 0, days)
	for day := 1; day <= days; day++ {
		date := FormatDate(year, month, day)
		if row, ok := byDate[date]; ok {
			out = append(out, row)
			continue
		}
		out = append(out, dto.PreviewRow{Date: date})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// RemapYearMonth moves an existing parse to a different year/month,
// preserving each row's and entry's day-of-month. Days that do not exist
// in the new month are discarded, then the row list is re-filled.
func RemapYearMonth(rows []dto.PreviewRow, entries []dto.DayEntry, year, month int) ([]dto.PreviewRow, []dto.DayEntry) {
	days := DaysInMonth(year, month)

	newRows := make([]dto.PreviewRow, 0, len(rows))
	for _, row := range rows {
		day := dayOfMonth(row.Date)
		if day < 1 || day > days {
			continue
		}
		row.Date = FormatDate(year, month, day)
		newRows = append(newRows, row)
	}

	newEntries := make([]dto.DayEntry, 0, len(entries))
	for _, entry := range entries {
		day := dayOfMonth(entry.Date)
		if day < 1 || day > days {
			continue
		}
		entry.Date = FormatDate(year, month, day)
		newEntries = append(newEntries, entry)
	}

	return FillMissingDays(newRows, year, month), newEntries
}
