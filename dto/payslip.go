package dto

// Deductions are employer deductions requested for the month, before caps.
type Deductions struct {
	Accommodation float64 `json:"accommodation"`
	Meals         float64 `json:"meals"`
	Advances      float64 `json:"advances"`
	Other         float64 `json:"other"`
}

// Allowances are monthly allowances added to gross pay.
type Allowances struct {
	Transport float64 `json:"transport"`
	Food      float64 `json:"food"`
	Other     float64 `json:"other"`
}

// PayslipInput is everything the wage engine needs for one "calculate" action.
type PayslipInput struct {
	EmployeeName       string     `json:"employee_name"`
	EmployerName       string     `json:"employer_name"`
	MonthlySalary      float64    `json:"monthly_salary"`
	PaymentPeriodStart string     `json:"payment_period_start,omitempty"`
	PaymentPeriodEnd   string     `json:"payment_period_end,omitempty"`
	Entries            []DayEntry `json:"entries"`
	Deductions         Deductions `json:"deductions"`
	Allowances         Allowances `json:"allowances"`

	// Manual rate overrides; zero means "derive from monthly salary".
	HourlyRateOverride float64 `json:"hourly_rate_override,omitempty"`
	OtRateOverride     float64 `json:"ot_rate_override,omitempty"`
}

// DayPayResult is the per-day breakdown of the computed payslip.
type DayPayResult struct {
	Date         string  `json:"date"`
	DayType      DayType `json:"day_type"`
	WorkedHours  float64 `json:"worked_hours"`
	RegularHours float64 `json:"regular_hours"`
	OtHours      float64 `json:"ot_hours"`
	BasicPay     float64 `json:"basic_pay"`
	OtPay        float64 `json:"ot_pay"`
	TotalDayPay  float64 `json:"total_day_pay"`
	Description  string  `json:"description"`
}

// PayItem is one labeled deduction or allowance line.
type PayItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PayslipResult is the fully itemized payslip. Plain serializable data only.
type PayslipResult struct {
	BasicPay           float64        `json:"basic_pay"`
	RegularOtPay       float64        `json:"regular_ot_pay"`
	RestDayPay         float64        `json:"rest_day_pay"`
	PublicHolidayPay   float64        `json:"public_holiday_pay"`
	TotalAllowances    float64        `json:"total_allowances"`
	GrossPay           float64        `json:"gross_pay"`
	TotalDeductions    float64        `json:"total_deductions"`
	NetPay             float64        `json:"net_pay"`
	DayBreakdown       []DayPayResult `json:"day_breakdown"`
	DeductionBreakdown []PayItem      `json:"deduction_breakdown"`
	AllowanceBreakdown []PayItem      `json:"allowance_breakdown"`
	TotalOtHours       float64        `json:"total_ot_hours"`
	TotalWorkedHours   float64        `json:"total_worked_hours"`
	Warnings           []string       `json:"warnings"`
}
