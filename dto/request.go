package dto

import "errors"

// Custom errors
var (
	ErrNoFiles      = errors.New("at least one timecard image or PDF is required")
	ErrNoEntries    = errors.New("at least one day entry is required")
	ErrNotFound     = errors.New("payslip not found")
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// FillRequest asks for the preview rows of (year, month) to be completed.
type FillRequest struct {
	Rows  []PreviewRow `json:"rows"`
	Year  int          `json:"year" binding:"required"`
	Month int          `json:"month" binding:"required"`
}

// RemapRequest moves an existing parse to a different year/month.
type RemapRequest struct {
	Rows    []PreviewRow `json:"rows"`
	Entries []DayEntry   `json:"entries"`
	Year    int          `json:"year" binding:"required"`
	Month   int          `json:"month" binding:"required"`
}

// Validate performs basic range checks shared by fill and remap.
func (r *FillRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

func (r *RemapRequest) Validate() error {
	if r.Month < 1 || r.Month > 12 {
		return ErrInvalidMonth
	}
	return nil
}
