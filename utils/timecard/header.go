// Package timecard recovers per-day attendance records from corrected OCR
// text: a (year, month) document header, day rows in several grammars, and
// a complete calendar preview for reviewer editing.
package timecard

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type monthName struct {
	name string
	num  int
}

// Month name lookup, longest-known spellings included. Order matters: it is
// the tie-break for prefix and whole-word scans.
var monthNames = []monthName{
	{"jan", 1}, {"january", 1},
	{"feb", 2}, {"february", 2},
	{"mar", 3}, {"march", 3},
	{"apr", 4}, {"april", 4},
	{"may", 5},
	{"jun", 6}, {"june", 6},
	{"jul", 7}, {"july", 7},
	{"aug", 8}, {"august", 8},
	{"sep", 9}, {"september", 9}, {"sept", 9},
	{"oct", 10}, {"october", 10},
	{"nov", 11}, {"november", 11},
	{"dec", 12}, {"december", 12},
}

var monthByName = func() map[string]int {
	m := make(map[string]int, len(monthNames))
	for _, mn := range monthNames {
		m[mn.name] = mn.num
	}
	return m
}()

// Words that look close enough to month names to fool the fuzzy matcher:
// weekday abbreviations and common short timecard vocabulary.
var fuzzyStopwords = map[string]bool{
	"out": true, "in": true, "date": true, "the": true, "for": true,
	"and": true, "not": true, "off": true, "day": true, "sun": true,
	"mon": true, "tue": true, "wed": true, "thu": true, "fri": true,
	"sat": true, "tot": true, "amt": true, "qty": true, "ot": true,
	"no": true, "yes": true, "set": true, "get": true, "put": true,
	"run": true, "add": true, "end": true, "pay": true, "due": true,
}

var (
	tahunRe          = regexp.MustCompile(`[Tt]ahun\s*(20\d{2})`)
	bareYearRe       = regexp.MustCompile(`\b(20\d{2})\b`)
	englishHdrRe     = regexp.MustCompile(`(?i)20\d{2}\s+year\s+([a-z]+)\s+month`)
	cjkMonthRe       = regexp.MustCompile(`(\d{1,2})\s*月`)
	wordSplitRe      = regexp.MustCompile(`[\s,.\-/]+`)
	monthAfterYearRe = regexp.MustCompile(`^\s*[./\-\s]\s*(\d{1,2})\b`)
)

// levenshtein computes the edit distance between two strings.
func levenshtein(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	n, m := len(r1), len(r2)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	matrix := make([][]int, n+1)
	for i := range matrix {
		matrix[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= m; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			matrix[i][j] = minOf(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[n][m]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// fuzzyMatchMonth tries to read a single OCR word as a month name: exact
// lookup, then a 3-character prefix match in either direction, then a
// bounded edit-distance match. Returns 0 when nothing is close enough.
func fuzzyMatchMonth(word string) int {
	w := strings.ToLower(word)
	if len(w) < 3 || fuzzyStopwords[w] {
		return 0
	}

	if num, ok := monthByName[w]; ok {
		return num
	}

	for _, mn := range monthNames {
		if len(mn.name) >= 3 && strings.HasPrefix(w, mn.name[:3]) {
			return mn.num
		}
		if len(w) >= 3 && strings.HasPrefix(mn.name, w[:3]) {
			return mn.num
		}
	}

	best := 0
	bestDist := int(^uint(0) >> 1)
	for _, mn := range monthNames {
		if len(mn.name) < 3 {
			continue
		}
		dist := levenshtein(w, mn.name)
		minLen := len(mn.name)
		if len(w) < minLen {
			minLen = len(w)
		}
		threshold := 1
		if minLen > 3 {
			threshold = minLen / 3
			if threshold < 2 {
				threshold = 2
			}
		}
		if dist < bestDist && dist <= threshold {
			bestDist = dist
			best = mn.num
		}
	}
	return best
}

// ExtractYearMonth recovers the best-guess (year, month) from the full OCR
// text of one document, defaulting to the current calendar year and month.
// The cascade tries, first match wins: an explicit "Tahun YYYY" token, a
// bare 20XX token, an English "20XX year NAME month" phrase, a CJK "N月"
// token, any whole-word month name, a per-word fuzzy match, and finally a
// numeric month directly after the year token.
func ExtractYearMonth(text string) (int, int) {
	now := time.Now()
	year := now.Year()
	month := int(now.Month())
	monthFound := false

	// "Tahun YYYY" or "TahunYYYY" (Malay)
	tahunMatch := tahunRe.FindStringSubmatch(text)
	if tahunMatch != nil {
		year, _ = strconv.Atoi(tahunMatch[1])
	}

	yearMatch := bareYearRe.FindStringSubmatch(text)
	if tahunMatch == nil && yearMatch != nil {
		year, _ = strconv.Atoi(yearMatch[1])
	}

	// "20XX year NAME month" (English)
	if m := englishHdrRe.FindStringSubmatch(text); m != nil {
		if num, ok := monthByName[strings.ToLower(m[1])]; ok {
			month = num
			monthFound = true
		}
	}

	// "20XX 年 X月" or "X月份" (CJK)
	if !monthFound {
		if m := cjkMonthRe.FindStringSubmatch(text); m != nil {
			if num, _ := strconv.Atoi(m[1]); num >= 1 && num <= 12 {
				month = num
				monthFound = true
			}
		}
	}

	// Any month name as a whole word
	if !monthFound {
		textLower := strings.ToLower(text)
		for _, mn := range monthNames {
			if regexp.MustCompile(`\b` + mn.name + `\b`).MatchString(textLower) {
				month = mn.num
				monthFound = true
				break
			}
		}
	}

	// Fuzzy match each word against month names
	if !monthFound {
		for _, word := range wordSplitRe.Split(text, -1) {
			if num := fuzzyMatchMonth(word); num != 0 {
				month = num
				monthFound = true
				break
			}
		}
	}

	// "YYYY/MM", "YYYY-MM" or "YYYY MM" right after the year token
	if !monthFound && yearMatch != nil {
		idx := strings.Index(text, yearMatch[1])
		afterYear := text[idx+len(yearMatch[1]):]
		if m := monthAfterYearRe.FindStringSubmatch(afterYear); m != nil {
			if num, _ := strconv.Atoi(m[1]); num >= 1 && num <= 12 {
				month = num
			}
		}
	}

	return year, month
}
