package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/workpaysg/timecard-payslip/dto"
)

func validInput() dto.PayslipInput {
	return dto.PayslipInput{
		MonthlySalary: 1000,
		Entries: []dto.DayEntry{
			{
				Date: "2025-11-03", DayType: dto.DayTypeNormal,
				ClockIn: "08:00", ClockOut: "18:00", BreakMinutes: 60,
			},
		},
	}
}

func TestValidatePayslipInputOK(t *testing.T) {
	assert.NoError(t, ValidatePayslipInput(validInput()))
}

func TestValidatePayslipInputSalary(t *testing.T) {
	in := validInput()
	in.MonthlySalary = 0
	err := ValidatePayslipInput(in)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "salary")
}

func TestValidatePayslipInputNoEntries(t *testing.T) {
	in := validInput()
	in.Entries = nil
	assert.ErrorIs(t, ValidatePayslipInput(in), dto.ErrNoEntries)
}

func TestValidateDayEntryBadDate(t *testing.T) {
	e := validInput().Entries[0]
	e.Date = "03/11/2025"
	assert.Error(t, ValidateDayEntry(e))
}

func TestValidateDayEntryBadClock(t *testing.T) {
	e := validInput().Entries[0]
	e.ClockIn = "25:00"
	assert.Error(t, ValidateDayEntry(e))

	e = validInput().Entries[0]
	e.ClockOut = "1800"
	assert.Error(t, ValidateDayEntry(e))
}

func TestValidateDayEntryBreakTooLong(t *testing.T) {
	e := validInput().Entries[0]
	e.ClockOut = "09:00"
	e.BreakMinutes = 90
	err := ValidateDayEntry(e)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "break")
}

func TestValidateDayEntryOvernightSpan(t *testing.T) {
	e := validInput().Entries[0]
	e.ClockIn = "22:00"
	e.ClockOut = "06:00"
	assert.NoError(t, ValidateDayEntry(e))
}

func TestValidateDayEntryBadDayType(t *testing.T) {
	e := validInput().Entries[0]
	e.DayType = "weekend"
	assert.Error(t, ValidateDayEntry(e))
}

func TestValidateDayEntryNegativeExtraOt(t *testing.T) {
	e := validInput().Entries[0]
	e.ExtraOtHours = -1
	assert.Error(t, ValidateDayEntry(e))
}
