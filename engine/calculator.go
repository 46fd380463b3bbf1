package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/workpaysg/timecard-payslip/dto"
)

// CalcHourlyRate derives the basic hourly rate from the monthly salary.
func CalcHourlyRate(monthlySalary float64) float64 {
	return (12 * monthlySalary) / HourlyRateDivisor
}

// CalcDailyRate derives the basic daily rate from the monthly salary.
func CalcDailyRate(monthlySalary float64) float64 {
	return monthlySalary / DailyRateDivisor
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func parseClock(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}

// CalcWorkedHours computes the hours worked between clock-in and clock-out
// minus the break. A clock-out earlier than the clock-in is treated as an
// overnight shift. Returns 0 for malformed times.
func CalcWorkedHours(clockIn, clockOut string, breakMinutes int) float64 {
	in, okIn := parseClock(clockIn)
	out, okOut := parseClock(clockOut)
	if !okIn || !okOut {
		return 0
	}
	total := out - in
	if total < 0 {
		total += 24 * 60 // overnight
	}
	total -= breakMinutes
	if total < 0 {
		return 0
	}
	return float64(total) / 60
}

// CalcDayPay computes the pay for a single day entry. Basic salary for a
// normal day is already inside the fixed monthly salary; the normal-day
// basicPay here is the informational daily portion shown on the breakdown.
func CalcDayPay(entry dto.DayEntry, hourlyRate, dailyRate, otRate float64) dto.DayPayResult {
	baseWorked := CalcWorkedHours(entry.ClockIn, entry.ClockOut, entry.BreakMinutes)
	extra := entry.ExtraOtHours
	workedHours := baseWorked + extra

	var basicPay, otPay, regularHours, otHours float64
	var description string

	switch entry.DayType {
	case dto.DayTypeRest:
		// MOM rest day pay: up to half normal hours = 1 day's salary,
		// more than half = 2 days' salary, OT beyond normal hours at the OT rate.
		halfDay := float64(NormalHoursPerDay) / 2
		switch {
		case baseWorked <= halfDay:
			regularHours = baseWorked
			otHours = extra
			basicPay = dailyRate
		case baseWorked <= NormalHoursPerDay:
			regularHours = baseWorked
			otHours = extra
			basicPay = dailyRate * RestDayMultiplier
		default:
			regularHours = NormalHoursPerDay
			otHours = (baseWorked - NormalHoursPerDay) + extra
			basicPay = dailyRate * RestDayMultiplier
		}
		otPay = otHours * otRate
		if otHours > 0 {
			description = fmt.Sprintf("Rest day + %.1fh OT", otHours)
		} else {
			description = "Rest day work"
		}

	case dto.DayTypePublicHoliday:
		// The worked day's basic salary is already inside the monthly salary;
		// this is the extra day's pay for working on the holiday.
		regularHours = math.Min(baseWorked, NormalHoursPerDay)
		otHours = math.Max(0, baseWorked-NormalHoursPerDay) + extra
		basicPay = dailyRate
		otPay = otHours * otRate
		if otHours > 0 {
			description = fmt.Sprintf("Public holiday + %.1fh OT", otHours)
		} else {
			description = "Public holiday work"
		}

	default: // normal
		regularHours = math.Min(baseWorked, NormalHoursPerDay)
		otHours = math.Max(0, baseWorked-NormalHoursPerDay) + extra
		basicPay = regularHours * hourlyRate
		otPay = otHours * otRate
		if otHours > 0 {
			description = fmt.Sprintf("Normal day + %.1fh OT", otHours)
		} else {
			description = "Normal day"
		}
	}

	return dto.DayPayResult{
		Date:         entry.Date,
		DayType:      entry.DayType,
		WorkedHours:  round2(workedHours),
		RegularHours: round2(regularHours),
		OtHours:      round2(otHours),
		BasicPay:     round2(basicPay),
		OtPay:        round2(otPay),
		TotalDayPay:  round2(basicPay + otPay),
		Description:  description,
	}
}

// CalcPayslip turns a month of day entries plus salary parameters into a
// fully itemized payslip. It is total: anomalies (over-limit hours,
// over-cap deductions) become warnings, never errors.
func CalcPayslip(input dto.PayslipInput) dto.PayslipResult {
	hourlyRate := input.HourlyRateOverride
	if hourlyRate <= 0 {
		hourlyRate = CalcHourlyRate(input.MonthlySalary)
	}
	otRate := input.OtRateOverride
	if otRate <= 0 {
		otRate = hourlyRate * OtMultiplier
	}
	dailyRate := CalcDailyRate(input.MonthlySalary)

	warnings := []string{}

	dayBreakdown := make([]dto.DayPayResult, 0, len(input.Entries))
	for _, entry := range input.Entries {
		dayBreakdown = append(dayBreakdown, CalcDayPay(entry, hourlyRate, dailyRate, otRate))
	}

	var regularOtPay, restDayPay, publicHolidayPay float64
	var totalOtHours, totalWorkedHours float64

	for _, day := range dayBreakdown {
		totalOtHours += day.OtHours
		totalWorkedHours += day.WorkedHours

		if day.WorkedHours > MaxDailyHours {
			warnings = append(warnings,
				fmt.Sprintf("%s: Daily hours (%.1f) exceed 12-hour limit", day.Date, day.WorkedHours))
		}

		switch day.DayType {
		case dto.DayTypeRest:
			restDayPay += day.BasicPay + day.OtPay
		case dto.DayTypePublicHoliday:
			publicHolidayPay += day.BasicPay + day.OtPay
		default:
			regularOtPay += day.OtPay
		}
	}

	if totalOtHours > MaxMonthlyOt {
		warnings = append(warnings,
			fmt.Sprintf("Monthly OT (%.1fh) exceeds 72-hour limit", totalOtHours))
	}

	// Allowances
	allowanceBreakdown := []dto.PayItem{}
	if input.Allowances.Transport > 0 {
		allowanceBreakdown = append(allowanceBreakdown, dto.PayItem{Label: "Transport", Amount: input.Allowances.Transport})
	}
	if input.Allowances.Food > 0 {
		allowanceBreakdown = append(allowanceBreakdown, dto.PayItem{Label: "Food", Amount: input.Allowances.Food})
	}
	if input.Allowances.Other > 0 {
		allowanceBreakdown = append(allowanceBreakdown, dto.PayItem{Label: "Other", Amount: input.Allowances.Other})
	}
	var totalAllowances float64
	for _, a := range allowanceBreakdown {
		totalAllowances += a.Amount
	}

	// Basic pay is the flat monthly salary; pro-ration is out of scope.
	basicPay := input.MonthlySalary
	grossPay := basicPay + regularOtPay + restDayPay + publicHolidayPay + totalAllowances

	// Deductions with statutory caps. Excess is silently dropped from the
	// amounts; the cap itself is surfaced as a warning.
	deductionBreakdown := []dto.PayItem{}
	accommodation := input.Deductions.Accommodation
	maxAccommodation := input.MonthlySalary * MaxAccommodationRatio
	if accommodation > maxAccommodation {
		accommodation = maxAccommodation
		warnings = append(warnings,
			fmt.Sprintf("Accommodation deduction capped at 25%% of salary (SGD %.2f)", maxAccommodation))
	}
	if accommodation > 0 {
		deductionBreakdown = append(deductionBreakdown, dto.PayItem{Label: "Accommodation", Amount: round2(accommodation)})
	}
	if input.Deductions.Meals > 0 {
		deductionBreakdown = append(deductionBreakdown, dto.PayItem{Label: "Meals", Amount: input.Deductions.Meals})
	}
	if input.Deductions.Advances > 0 {
		deductionBreakdown = append(deductionBreakdown, dto.PayItem{Label: "Salary Advance", Amount: input.Deductions.Advances})
	}
	if input.Deductions.Other > 0 {
		deductionBreakdown = append(deductionBreakdown, dto.PayItem{Label: "Other", Amount: input.Deductions.Other})
	}

	var totalDeductions float64
	for _, d := range deductionBreakdown {
		totalDeductions += d.Amount
	}
	maxDeductions := input.MonthlySalary * MaxDeductionRatio
	if totalDeductions > maxDeductions {
		totalDeductions = maxDeductions
		warnings = append(warnings,
			fmt.Sprintf("Total deductions capped at 50%% of salary (SGD %.2f)", maxDeductions))
	}

	netPay := grossPay - totalDeductions

	return dto.PayslipResult{
		BasicPay:           round2(basicPay),
		RegularOtPay:       round2(regularOtPay),
		RestDayPay:         round2(restDayPay),
		PublicHolidayPay:   round2(publicHolidayPay),
		TotalAllowances:    round2(totalAllowances),
		GrossPay:           round2(grossPay),
		TotalDeductions:    round2(totalDeductions),
		NetPay:             round2(netPay),
		DayBreakdown:       dayBreakdown,
		DeductionBreakdown: deductionBreakdown,
		AllowanceBreakdown: allowanceBreakdown,
		TotalOtHours:       round2(totalOtHours),
		TotalWorkedHours:   round2(totalWorkedHours),
		Warnings:           warnings,
	}
}
