package timecard

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/workpaysg/timecard-payslip/dto"
	"github.com/workpaysg/timecard-payslip/utils/ocrfix"
)

// DefaultBreakMinutes is assumed for every OCR-parsed entry; the reviewer
// can adjust it before calculation.
const DefaultBreakMinutes = 60

// DefaultClockOut is used when a line carries a date and a single time.
const DefaultClockOut = "17:00"

var (
	offFlagRe     = regexp.MustCompile(`(?i)(?:\bOFF\b|\b0FF\b|\bO\s*F\s*F\b|\bSUN\w*\b|\bcuday\b)`)
	plusOneFlagRe = regexp.MustCompile(`\+\s*[1lI|]`)

	leadingDayRe = regexp.MustCompile(`^\s*(\d{1,2})\b`)

	compactRe   = regexp.MustCompile(`^\s*(\d{1,2})\s+.*?(\d{4})\s*[|\s]\s*(\d{4})`)
	colonRe     = regexp.MustCompile(`^\s*(\d{1,2})\s+(\d{1,2})[:.](\d{2})\s*[-–—~\s]\s*(\d{1,2})[:.](\d{2})`)
	mergedDayRe = regexp.MustCompile(`^\s*(\d)(\d{2})[:.](\d{2})\s*[-–—~]\s*(\d{1,2})[:.](\d{2})`)
	dayHourRe   = regexp.MustCompile(`^\s*(\d{2})(\d{2})\s*[-–—~]\s*(\d{4})\b`)

	isoDateRe      = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	dmyDateRe      = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})[/-](\d{4})`)
	dmDateRe       = regexp.MustCompile(`(\d{1,2})[/-](\d{1,2})`)
	trailingYearRe = regexp.MustCompile(`^[\s./-]*(?:19|20)\d{2}\b`)
	colonTimeRe    = regexp.MustCompile(`\b(\d{1,2})[:.](\d{2})\b`)
	bareTimeRe     = regexp.MustCompile(`\b\d{4}\b`)
	plainYearRe    = regexp.MustCompile(`^20\d{2}$`)

	secondDayRe = regexp.MustCompile(`\b(1[6-9]|2\d|3[01])\b`)
)

// LineFlags are computed independently of the grammar cascade.
type LineFlags struct {
	IsOff   bool
	PlusOne bool
}

// ParseFlags detects the OFF marker (including its common misreads and
// weekday "rest taken" notes) and the "+1" extra-hour marker on one line.
func ParseFlags(line string) LineFlags {
	return LineFlags{
		IsOff:   offFlagRe.MatchString(line),
		PlusOne: hasPlusOne(line),
	}
}

// hasPlusOne looks for "+" followed by a 1-like glyph, at a word edge or
// directly before an OT note.
func hasPlusOne(line string) bool {
	for _, loc := range plusOneFlagRe.FindAllStringIndex(line, -1) {
		rest := line[loc[1]:]
		if rest == "" {
			return true
		}
		if strings.HasPrefix(strings.ToUpper(rest), "OT") {
			return true
		}
		c := rest[0]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_') {
			return true
		}
	}
	return false
}

func formatFourDigit(raw string) string {
	return raw[:2] + ":" + raw[2:]
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

type candidate struct {
	day        int    // day-of-month; 0 when date carries its own month
	date       string // set instead of day by the fallback grammar
	timeInRaw  string // 4-digit token as read
	timeOutRaw string
	clockIn    string // HH:MM
	clockOut   string
}

// grammars are tried in priority order; the first one whose candidate
// passes validation wins. A failed validation falls through to the next.
type grammar func(line string) (candidate, bool)

var grammars = []grammar{
	matchCompact,
	matchColon,
	matchMergedDay,
	matchDayHour,
	matchFallbackDate,
}

// matchCompact handles the compact format: day number plus two 4-digit
// times, e.g. "27 0730 1930".
func matchCompact(line string) (candidate, bool) {
	m := compactRe.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	day, _ := strconv.Atoi(m[1])
	if !ocrfix.IsValidTime4(m[2]) || !ocrfix.IsValidTime4(m[3]) {
		return candidate{}, false
	}
	return candidate{
		day:        day,
		timeInRaw:  m[2],
		timeOutRaw: m[3],
		clockIn:    formatFourDigit(m[2]),
		clockOut:   formatFourDigit(m[3]),
	}, true
}

// matchColon handles the colon/range format: "3 7:00-19:00" or "3 7:00 19:00".
func matchColon(line string) (candidate, bool) {
	m := colonRe.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	day, _ := strconv.Atoi(m[1])
	inH, _ := strconv.Atoi(m[2])
	inM, _ := strconv.Atoi(m[3])
	outH, _ := strconv.Atoi(m[4])
	outM, _ := strconv.Atoi(m[5])
	if inH > 23 || inM > 59 || outH > 23 || outM > 59 {
		return candidate{}, false
	}
	return candidate{
		day:        day,
		timeInRaw:  pad2(inH) + pad2(inM),
		timeOutRaw: pad2(outH) + pad2(outM),
		clockIn:    pad2(inH) + ":" + pad2(inM),
		clockOut:   pad2(outH) + ":" + pad2(outM),
	}, true
}

// matchMergedDay handles a day digit merged into the first hour token:
// "307:00 - 19:00" is day 3, clock-in 07:00.
func matchMergedDay(line string) (candidate, bool) {
	m := mergedDayRe.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	day, _ := strconv.Atoi(m[1])
	inH, _ := strconv.Atoi(m[2])
	inM, _ := strconv.Atoi(m[3])
	outH, _ := strconv.Atoi(m[4])
	outM, _ := strconv.Atoi(m[5])
	if inH > 23 || inM > 59 || outH > 23 || outM > 59 {
		return candidate{}, false
	}
	return candidate{
		day:        day,
		timeInRaw:  pad2(inH) + pad2(inM),
		timeOutRaw: pad2(outH) + pad2(outM),
		clockIn:    pad2(inH) + ":" + pad2(inM),
		clockOut:   pad2(outH) + ":" + pad2(outM),
	}, true
}

// matchDayHour handles "1807 - 1900": day and clock-in hour merged into one
// 4-digit token. The leading pair is accepted as a day only in 10-31, which
// keeps ambiguous day-vs-hour readings like "0700 - 1900" out of this
// grammar.
func matchDayHour(line string) (candidate, bool) {
	m := dayHourRe.FindStringSubmatch(line)
	if m == nil {
		return candidate{}, false
	}
	day, _ := strconv.Atoi(m[1])
	if day < 10 || day > 31 {
		return candidate{}, false
	}
	inRaw := m[2] + "00"
	if !ocrfix.IsValidTime4(inRaw) || !ocrfix.IsValidTime4(m[3]) {
		return candidate{}, false
	}
	return candidate{
		day:        day,
		timeInRaw:  inRaw,
		timeOutRaw: m[3],
		clockIn:    formatFourDigit(inRaw),
		clockOut:   formatFourDigit(m[3]),
	}, true
}

// matchFallbackDate finds any recognizable date substring plus up to two
// time-like tokens anywhere in the line. One time token gets the default
// clock-out; zero tokens yields a date-only candidate (row, no entry).
func matchFallbackDate(line string) (candidate, bool) {
	date, dateSpan := findDateSubstring(line)
	if date == "" {
		return candidate{}, false
	}

	times := findTimeTokens(line, dateSpan)
	c := candidate{date: date}
	switch {
	case len(times) >= 2:
		c.timeInRaw = times[0].raw
		c.timeOutRaw = times[1].raw
		c.clockIn = times[0].clock
		c.clockOut = times[1].clock
	case len(times) == 1:
		c.timeInRaw = times[0].raw
		c.clockIn = times[0].clock
		c.clockOut = DefaultClockOut
		c.timeOutRaw = "1700"
	}
	return c, true
}

// findDateSubstring recognizes ISO, DD/MM/YYYY, and bare DD/MM dates.
// The bare form is returned with empty year/month placeholders filled in
// by the caller's document header. Returns the match span so time-token
// scanning can skip digits that belong to the date.
func findDateSubstring(line string) (string, []int) {
	if loc := isoDateRe.FindStringSubmatchIndex(line); loc != nil {
		m := isoDateRe.FindStringSubmatch(line)
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if IsValidDate(year, month, day) {
			return FormatDate(year, month, day), loc[0:2]
		}
		return "", nil
	}
	if loc := dmyDateRe.FindStringSubmatchIndex(line); loc != nil {
		m := dmyDateRe.FindStringSubmatch(line)
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if IsValidDate(year, month, day) {
			return FormatDate(year, month, day), loc[0:2]
		}
		return "", nil
	}
	if loc := dmDateRe.FindStringSubmatchIndex(line); loc != nil {
		m := dmDateRe.FindStringSubmatch(line)
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			// A bare year after DD/MM belongs to the date, not the times.
			span := loc[0:2]
			if m2 := trailingYearRe.FindStringIndex(line[span[1]:]); m2 != nil {
				span = []int{span[0], span[1] + m2[1]}
			}
			// Year filled in by the caller from the document header.
			return "0000-" + pad2(month) + "-" + pad2(day), span
		}
	}
	return "", nil
}

type timeToken struct {
	raw   string
	clock string
}

// findTimeTokens collects colon-separated times and bare 4-digit tokens,
// skipping digits that belong to the date span and lone 20xx year tokens.
func findTimeTokens(line string, dateSpan []int) []timeToken {
	var tokens []timeToken
	taken := func(start, end int) bool {
		return dateSpan != nil && start < dateSpan[1] && end > dateSpan[0]
	}

	for _, loc := range colonTimeRe.FindAllStringSubmatchIndex(line, -1) {
		if taken(loc[0], loc[1]) {
			continue
		}
		h, _ := strconv.Atoi(line[loc[2]:loc[3]])
		m := line[loc[4]:loc[5]]
		if h > 23 {
			continue
		}
		tokens = append(tokens, timeToken{raw: pad2(h) + m, clock: pad2(h) + ":" + m})
	}

	for _, loc := range bareTimeRe.FindAllStringIndex(line, -1) {
		if taken(loc[0], loc[1]) {
			continue
		}
		tok := line[loc[0]:loc[1]]
		// A lone 20xx token is a year, not a clock reading.
		if plainYearRe.MatchString(tok) {
			continue
		}
		if !ocrfix.IsValidTime4(tok) {
			continue
		}
		tokens = append(tokens, timeToken{raw: tok, clock: formatFourDigit(tok)})
	}

	return tokens
}

// SplitTwoColumn splits a line where a two-column timecard was OCR-joined:
// a second day number in 16-31 after leading content that itself starts
// with a day number 1-15.
func SplitTwoColumn(line string) []string {
	for _, loc := range secondDayRe.FindAllStringIndex(line, -1) {
		pos := loc[0]
		if pos == 0 {
			continue
		}
		before := strings.TrimSpace(line[:pos])
		after := strings.TrimSpace(line[pos:])
		m := leadingDayRe.FindStringSubmatch(before)
		if m == nil || len(before) <= 1 {
			continue
		}
		if day, _ := strconv.Atoi(m[1]); day >= 1 && day <= 15 {
			return []string{before, after}
		}
	}
	return []string{line}
}

// ParseLine parses one corrected line against the document's (year, month).
// It returns at most one preview row and at most one day entry; the two may
// disagree when a row's times fail entry validation.
func ParseLine(line string, year, month int) (*dto.PreviewRow, *dto.DayEntry) {
	flags := ParseFlags(line)

	if flags.IsOff {
		// An off day still gets a preview row when the line names a day.
		m := leadingDayRe.FindStringSubmatch(line)
		if m == nil {
			return nil, nil
		}
		day, _ := strconv.Atoi(m[1])
		if !IsValidDate(year, month, day) {
			return nil, nil
		}
		return &dto.PreviewRow{
			Date:    FormatDate(year, month, day),
			IsOff:   true,
			PlusOne: flags.PlusOne,
		}, nil
	}

	for _, g := range grammars {
		c, ok := g(line)
		if !ok {
			continue
		}

		date := c.date
		if date == "" {
			if !IsValidDate(year, month, c.day) {
				continue
			}
			date = FormatDate(year, month, c.day)
		} else if strings.HasPrefix(date, "0000-") {
			pm, _ := strconv.Atoi(date[5:7])
			d := dayOfMonth(date)
			if !IsValidDate(year, pm, d) {
				continue
			}
			date = FormatDate(year, pm, d)
		}

		row := &dto.PreviewRow{
			Date:       date,
			TimeInRaw:  c.timeInRaw,
			TimeOutRaw: c.timeOutRaw,
			PlusOne:    flags.PlusOne,
		}

		if c.clockIn == "" || c.clockOut == "" {
			return row, nil
		}

		entry := &dto.DayEntry{
			Date:         date,
			DayType:      dto.DayTypeNormal,
			ClockIn:      c.clockIn,
			ClockOut:     c.clockOut,
			BreakMinutes: DefaultBreakMinutes,
		}
		if flags.PlusOne {
			entry.ExtraOtHours = 1
		}
		return row, entry
	}

	return nil, nil
}

// ParseDocument turns raw OCR lines into day entries and preview rows.
// Overrides of 0 mean "use the extracted header". Rows are not yet filled
// to a full month; the caller runs FillMissingDays once after merging all
// images of a batch.
func ParseDocument(lines []dto.RawLine, overrideYear, overrideMonth int) dto.ParsedTimecard {
	rowTexts := ClusterRows(lines)

	corrected := make([]string, len(rowTexts))
	for i, t := range rowTexts {
		corrected[i] = ocrfix.Correct(t)
	}

	year, month := ExtractYearMonth(strings.Join(corrected, "\n"))
	if overrideYear > 0 {
		year = overrideYear
	}
	if overrideMonth >= 1 && overrideMonth <= 12 {
		month = overrideMonth
	}

	rowsByDate := make(map[string]dto.PreviewRow)
	entriesByDate := make(map[string]dto.DayEntry)
	var order []string

	for _, line := range corrected {
		for _, segment := range SplitTwoColumn(line) {
			row, entry := ParseLine(segment, year, month)
			if row == nil {
				continue
			}
			if _, seen := rowsByDate[row.Date]; !seen {
				order = append(order, row.Date)
			}
			rowsByDate[row.Date] = *row
			if entry != nil {
				entriesByDate[entry.Date] = *entry
			} else {
				delete(entriesByDate, row.Date)
			}
		}
	}

	result := dto.ParsedTimecard{Year: year, Month: month}
	for _, date := range order {
		result.Rows = append(result.Rows, rowsByDate[date])
		if entry, ok := entriesByDate[date]; ok {
			result.Entries = append(result.Entries, entry)
		}
	}
	return result
}

// ParseText parses a plain text document (no boxes, one row per line).
func ParseText(text string, overrideYear, overrideMonth int) dto.ParsedTimecard {
	var lines []dto.RawLine
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, dto.RawLine{Text: l, Confidence: 1})
	}
	return ParseDocument(lines, overrideYear, overrideMonth)
}
