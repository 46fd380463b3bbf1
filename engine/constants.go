package engine

import (
	"time"

	"github.com/workpaysg/timecard-payslip/dto"
)

// Statutory pay parameters (MOM Employment Act figures).
const (
	HoursPerWeek      = 44
	HourlyRateDivisor = 2288  // 52 weeks * 44 hours
	DailyRateDivisor  = 21.67 // (52 * 5) / 12 working days per month
	NormalHoursPerDay = 8
	MaxDailyHours     = 12
	MaxMonthlyOt      = 72

	MaxDeductionRatio     = 0.50
	MaxAccommodationRatio = 0.25

	OtMultiplier      = 1.5
	RestDayMultiplier = 2.0
	PhOtMultiplier    = 1.5
)

// Singapore public holidays by year.
// Hari Raya Puasa and Hari Raya Haji dates TBA for future years; users can
// mark those days manually.
var sgPublicHolidays = map[int][]string{
	2025: {
		"2025-01-01",               // New Year's Day
		"2025-01-29", "2025-01-30", // Chinese New Year
		"2025-03-31", // Hari Raya Puasa
		"2025-04-18", // Good Friday
		"2025-05-01", // Labour Day
		"2025-05-12", // Vesak Day
		"2025-06-07", // Hari Raya Haji
		"2025-08-09", // National Day
		"2025-10-20", // Deepavali
		"2025-12-25", // Christmas Day
	},
	2026: {
		"2026-01-01",               // New Year's Day
		"2026-02-17", "2026-02-18", // Chinese New Year
		"2026-04-03", // Good Friday
		"2026-05-01", // Labour Day
		"2026-06-01", // Vesak Day (in lieu)
		"2026-08-10", // National Day (in lieu)
		"2026-11-09", // Deepavali (in lieu)
		"2026-12-25", // Christmas Day
	},
}

// PublicHolidays returns the known public-holiday dates for a year.
// Years without a table yield an empty set.
func PublicHolidays(year int) map[string]bool {
	set := make(map[string]bool)
	for _, d := range sgPublicHolidays[year] {
		set[d] = true
	}
	return set
}

// IsSunday reports whether a YYYY-MM-DD date falls on a Sunday.
func IsSunday(date string) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Weekday() == time.Sunday
}

// AutoDayType classifies a date from the calendar alone: public holiday
// first, then Sunday as rest day, otherwise normal. An explicit
// classification on the entry always wins over this default.
func AutoDayType(date string, holidays map[string]bool) dto.DayType {
	if holidays[date] {
		return dto.DayTypePublicHoliday
	}
	if IsSunday(date) {
		return dto.DayTypeRest
	}
	return dto.DayTypeNormal
}
