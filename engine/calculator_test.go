package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpaysg/timecard-payslip/dto"
)

func normalDay(date string) dto.DayEntry {
	return dto.DayEntry{
		Date:         date,
		DayType:      dto.DayTypeNormal,
		ClockIn:      "08:00",
		ClockOut:     "18:00",
		BreakMinutes: 60,
	}
}

func TestCalcRates(t *testing.T) {
	assert.InDelta(t, 4.20, CalcHourlyRate(800), 0.01)
	assert.InDelta(t, 46.15, CalcDailyRate(1000), 0.01)
}

func TestCalcWorkedHours(t *testing.T) {
	assert.InDelta(t, 9.0, CalcWorkedHours("08:00", "18:00", 60), 0.001)
	assert.InDelta(t, 8.0, CalcWorkedHours("22:00", "06:00", 0), 0.001, "overnight shift")
	assert.InDelta(t, 0.0, CalcWorkedHours("bad", "18:00", 0), 0.001)
	assert.InDelta(t, 0.0, CalcWorkedHours("08:00", "08:30", 60), 0.001, "break longer than span")
}

func TestCalcDayPayNormalWithOt(t *testing.T) {
	day := CalcDayPay(normalDay("2025-11-03"), 5, 40, 7.5)
	assert.InDelta(t, 8.0, day.RegularHours, 0.001)
	assert.InDelta(t, 1.0, day.OtHours, 0.001)
	assert.InDelta(t, 40.0, day.BasicPay, 0.001)
	assert.InDelta(t, 7.5, day.OtPay, 0.001)
	assert.Contains(t, day.Description, "OT")
}

func TestCalcDayPayRestDayTiers(t *testing.T) {
	short := dto.DayEntry{
		Date: "2025-11-09", DayType: dto.DayTypeRest,
		ClockIn: "08:00", ClockOut: "12:30", BreakMinutes: 30,
	}
	day := CalcDayPay(short, 5, 40, 7.5)
	assert.InDelta(t, 40.0, day.BasicPay, 0.001, "up to half a day pays one daily rate")
	assert.InDelta(t, 0.0, day.OtPay, 0.001)

	long := dto.DayEntry{
		Date: "2025-11-09", DayType: dto.DayTypeRest,
		ClockIn: "08:00", ClockOut: "15:00", BreakMinutes: 60,
	}
	day = CalcDayPay(long, 5, 40, 7.5)
	assert.InDelta(t, 80.0, day.BasicPay, 0.001, "over half a day pays two daily rates")

	overtime := dto.DayEntry{
		Date: "2025-11-09", DayType: dto.DayTypeRest,
		ClockIn: "08:00", ClockOut: "19:00", BreakMinutes: 60,
	}
	day = CalcDayPay(overtime, 5, 40, 7.5)
	assert.InDelta(t, 80.0, day.BasicPay, 0.001)
	assert.InDelta(t, 2.0, day.OtHours, 0.001)
	assert.InDelta(t, 15.0, day.OtPay, 0.001)
}

func TestCalcDayPayPublicHoliday(t *testing.T) {
	entry := dto.DayEntry{
		Date: "2025-12-25", DayType: dto.DayTypePublicHoliday,
		ClockIn: "08:00", ClockOut: "17:00", BreakMinutes: 60,
	}
	day := CalcDayPay(entry, 5, 40, 7.5)
	assert.InDelta(t, 40.0, day.BasicPay, 0.001, "extra day's pay on top of monthly salary")
	assert.InDelta(t, 0.0, day.OtPay, 0.001)
}

func TestCalcDayPayExtraOtHours(t *testing.T) {
	entry := dto.DayEntry{
		Date: "2025-11-03", DayType: dto.DayTypeNormal,
		ClockIn: "08:00", ClockOut: "17:00", BreakMinutes: 60,
		ExtraOtHours: 1,
	}
	day := CalcDayPay(entry, 5, 40, 7.5)
	assert.InDelta(t, 9.0, day.WorkedHours, 0.001)
	assert.InDelta(t, 1.0, day.OtHours, 0.001)
	assert.InDelta(t, 7.5, day.OtPay, 0.001)
}

func TestCalcPayslipScenarioFiveNormalDays(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary: 800,
		Entries: []dto.DayEntry{
			normalDay("2025-11-03"),
			normalDay("2025-11-04"),
			normalDay("2025-11-05"),
			normalDay("2025-11-06"),
			normalDay("2025-11-07"),
		},
	}
	result := CalcPayslip(input)

	assert.InDelta(t, 800.00, result.BasicPay, 0.001)
	assert.InDelta(t, 5.0, result.TotalOtHours, 0.001)
	assert.InDelta(t, 31.47, result.RegularOtPay, 0.05)
	assert.InDelta(t, 0.0, result.RestDayPay, 0.001)
	assert.Empty(t, result.Warnings)
}

func TestCalcPayslipScenarioRestDay(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary: 1000,
		Entries: []dto.DayEntry{
			{
				Date: "2025-11-09", DayType: dto.DayTypeRest,
				ClockIn: "08:00", ClockOut: "19:00", BreakMinutes: 60,
			},
		},
	}
	result := CalcPayslip(input)

	assert.InDelta(t, 108.05, result.RestDayPay, 0.05)
	assert.InDelta(t, 2.0, result.TotalOtHours, 0.001)
}

func TestCalcPayslipAccommodationCap(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary: 1000,
		Entries:       []dto.DayEntry{normalDay("2025-11-03")},
		Deductions:    dto.Deductions{Accommodation: 400},
	}
	result := CalcPayslip(input)

	assert.InDelta(t, 250.00, result.TotalDeductions, 0.001)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "25%")
	assert.Contains(t, result.Warnings[0], "250.00")
}

func TestCalcPayslipTotalDeductionCap(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary: 1000,
		Entries:       []dto.DayEntry{normalDay("2025-11-03")},
		Deductions:    dto.Deductions{Meals: 300, Advances: 300},
	}
	result := CalcPayslip(input)

	assert.InDelta(t, 500.00, result.TotalDeductions, 0.001)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "50%")
}

func TestCalcPayslipMonthlyOtThreshold(t *testing.T) {
	twelveHourDay := func(day int) dto.DayEntry {
		return dto.DayEntry{
			Date:    fmt.Sprintf("2025-11-%02d", day),
			DayType: dto.DayTypeNormal,
			ClockIn: "07:00", ClockOut: "20:00", BreakMinutes: 60,
		}
	}

	var atLimit dto.PayslipInput
	atLimit.MonthlySalary = 1200
	for d := 1; d <= 18; d++ {
		atLimit.Entries = append(atLimit.Entries, twelveHourDay(d))
	}
	result := CalcPayslip(atLimit)
	assert.InDelta(t, 72.0, result.TotalOtHours, 0.001)
	for _, w := range result.Warnings {
		assert.NotContains(t, w, "72-hour")
	}

	var overLimit dto.PayslipInput
	overLimit.MonthlySalary = 1200
	for d := 1; d <= 20; d++ {
		overLimit.Entries = append(overLimit.Entries, twelveHourDay(d))
	}
	result = CalcPayslip(overLimit)
	assert.InDelta(t, 80.0, result.TotalOtHours, 0.001)

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "72") && strings.Contains(w, "80.0") {
			found = true
		}
	}
	assert.True(t, found, "expected monthly OT warning")
}

func TestCalcPayslipDailyHoursWarning(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary: 1000,
		Entries: []dto.DayEntry{
			{
				Date: "2025-11-03", DayType: dto.DayTypeNormal,
				ClockIn: "07:00", ClockOut: "21:00", BreakMinutes: 60,
			},
		},
	}
	result := CalcPayslip(input)

	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "12-hour limit")
}

func TestCalcPayslipRateOverrides(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary:      1000,
		HourlyRateOverride: 10,
		Entries:            []dto.DayEntry{normalDay("2025-11-03")},
	}
	result := CalcPayslip(input)

	// 1h OT at 10 * 1.5
	assert.InDelta(t, 15.0, result.RegularOtPay, 0.001)
}

func TestCalcPayslipAllowances(t *testing.T) {
	input := dto.PayslipInput{
		MonthlySalary: 1000,
		Entries:       []dto.DayEntry{normalDay("2025-11-03")},
		Allowances:    dto.Allowances{Transport: 100, Food: 50},
	}
	result := CalcPayslip(input)

	assert.InDelta(t, 150.0, result.TotalAllowances, 0.001)
	require.Len(t, result.AllowanceBreakdown, 2)
	assert.Equal(t, "Transport", result.AllowanceBreakdown[0].Label)
}

func TestAutoDayType(t *testing.T) {
	holidays := PublicHolidays(2025)
	assert.Equal(t, dto.DayTypePublicHoliday, AutoDayType("2025-12-25", holidays))
	assert.Equal(t, dto.DayTypeRest, AutoDayType("2025-11-09", holidays), "a Sunday")
	assert.Equal(t, dto.DayTypeNormal, AutoDayType("2025-11-03", holidays), "a Monday")
}
