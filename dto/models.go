package dto

type DayType string

const (
	DayTypeNormal        DayType = "normal"
	DayTypeRest          DayType = "rest"
	DayTypePublicHoliday DayType = "publicHoliday"
)

// FourPoints is the bounding quadrilateral of an OCR line:
// four (x, y) corners in image pixel coordinates.
type FourPoints [4][2]float64

// RawLine is one line of text as produced by the OCR engine.
// Confidence and Box are used for row grouping only, never for correction.
type RawLine struct {
	Text       string      `json:"text"`
	Confidence float64     `json:"confidence"`
	Box        *FourPoints `json:"box,omitempty"`
}

// PreviewRow is a calendar-day placeholder shown to the reviewer before the
// day is accepted into the entry list. TimeInRaw/TimeOutRaw keep the OCR
// 4-digit tokens as read so the UI can show them as placeholders.
type PreviewRow struct {
	Date       string `json:"date"` // YYYY-MM-DD
	TimeInRaw  string `json:"time_in_raw"`
	TimeOutRaw string `json:"time_out_raw"`
	IsOff      bool   `json:"is_off"`
	PlusOne    bool   `json:"plus_one"`
}

// DayEntry is one successfully parsed worked day.
type DayEntry struct {
	Date         string  `json:"date"` // YYYY-MM-DD
	DayType      DayType `json:"day_type"`
	ClockIn      string  `json:"clock_in"`  // HH:MM
	ClockOut     string  `json:"clock_out"` // HH:MM
	BreakMinutes int     `json:"break_minutes"`
	ExtraOtHours float64 `json:"extra_ot_hours,omitempty"`
}

// ParsedTimecard is the result of parsing one or more timecard images.
// Rows always cover every calendar day of the detected month.
type ParsedTimecard struct {
	Year    int          `json:"year"`
	Month   int          `json:"month"`
	Entries []DayEntry   `json:"entries"`
	Rows    []PreviewRow `json:"rows"`
}
