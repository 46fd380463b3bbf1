package utils

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/workpaysg/timecard-payslip/dto"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// clockToMinutes parses "HH:MM" into minutes since midnight.
func clockToMinutes(clock string) (int, error) {
	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if h > 23 || min > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}
	return h*60 + min, nil
}

// ValidateDayEntry checks one entry's fields before calculation.
func ValidateDayEntry(e dto.DayEntry) error {
	if !dateRe.MatchString(e.Date) {
		return fmt.Errorf("entry date %q is not YYYY-MM-DD", e.Date)
	}
	switch e.DayType {
	case dto.DayTypeNormal, dto.DayTypeRest, dto.DayTypePublicHoliday:
	default:
		return fmt.Errorf("entry %s: unknown day type %q", e.Date, e.DayType)
	}
	in, err := clockToMinutes(e.ClockIn)
	if err != nil {
		return fmt.Errorf("entry %s: %w", e.Date, err)
	}
	out, err := clockToMinutes(e.ClockOut)
	if err != nil {
		return fmt.Errorf("entry %s: %w", e.Date, err)
	}
	span := out - in
	if span <= 0 {
		span += 24 * 60
	}
	if e.BreakMinutes < 0 {
		return fmt.Errorf("entry %s: negative break", e.Date)
	}
	if e.BreakMinutes >= span {
		return fmt.Errorf("entry %s: break (%dm) not shorter than worked span (%dm)", e.Date, e.BreakMinutes, span)
	}
	if e.ExtraOtHours < 0 {
		return fmt.Errorf("entry %s: negative extra OT hours", e.Date)
	}
	return nil
}

// ValidatePayslipInput checks the calculation request as a whole.
func ValidatePayslipInput(in dto.PayslipInput) error {
	if in.MonthlySalary <= 0 {
		return fmt.Errorf("monthly salary must be positive, got %.2f", in.MonthlySalary)
	}
	if len(in.Entries) == 0 {
		return dto.ErrNoEntries
	}
	for _, e := range in.Entries {
		if err := ValidateDayEntry(e); err != nil {
			return err
		}
	}
	return nil
}
