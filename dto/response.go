package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// RemapResponse carries the rows and entries after a year/month remap.
type RemapResponse struct {
	Rows    []PreviewRow `json:"rows"`
	Entries []DayEntry   `json:"entries"`
}

// CalculateResponse wraps a computed payslip with its history id.
type CalculateResponse struct {
	ID      string        `json:"id"`
	Payslip PayslipResult `json:"payslip"`
}
