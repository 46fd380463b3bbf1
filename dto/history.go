package dto

// HistoryEntry is one saved payslip. The history file is a plain JSON array,
// newest last, capped at a fixed entry count with the oldest evicted first.
type HistoryEntry struct {
	ID            string        `json:"id"`
	SavedAt       string        `json:"saved_at"` // RFC3339
	EmployeeName  string        `json:"employee_name,omitempty"`
	MonthlySalary float64       `json:"monthly_salary"`
	Payslip       PayslipResult `json:"payslip"`
}
