// Package ocrfix repairs systematic OCR misreads on timecard text lines.
//
// Known misread patterns from PP-OCR style engines on handwritten timecards:
//
//	D → 0, O → 0, g → 9, I/l → 1, B → 8, S → 5
//	Slashes/pipes inside digit runs: 19/0 → 1900
//	Fragment splits: "070 1900" → "0700 1900"
//
// Every fix is a pure string → string transform; Correct applies them in a
// fixed order and is idempotent.
package ocrfix

import (
	"regexp"
	"strconv"
	"strings"
)

// Letters commonly confused with digits in OCR output.
var letterToDigit = map[byte]byte{
	'D': '0',
	'O': '0',
	'o': '0',
	'g': '9',
	'q': '9',
	'I': '1',
	'l': '1',
	'B': '8',
	'S': '5',
	's': '5',
	'Z': '2',
	'z': '2',
	'e': '0',
	'w': '0',
	'W': '0',
	't': '1',
	'T': '1',
	'n': '0',
	'm': '0',
	'U': '0',
	'u': '0',
	'r': '1',
	'R': '1',
	'f': '7',
	'F': '7',
}

// IsValidTime4 reports whether a 4-digit string is a valid clock time
// (hour 00-23, minute 00-59).
func IsValidTime4(s string) bool {
	if len(s) != 4 {
		return false
	}
	hour, err1 := strconv.Atoi(s[:2])
	minute, err2 := strconv.Atoi(s[2:])
	if err1 != nil || err2 != nil {
		return false
	}
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

var (
	offRe = regexp.MustCompile(`\b[0Oo]\s?[Ff]\s?[Ff]\b`)

	plusOneRe = regexp.MustCompile(`(\d{3,})(\s+)[tTfF+]\s*[1l3Ii|](\s|$)`)

	leadingFRe     = regexp.MustCompile(`\b[Ff](\d{3,})`)
	dollarRe       = regexp.MustCompile(`\$(:?\d)`)
	strayDashRe    = regexp.MustCompile(`(\d)±(\d)`)
	leadingEightRe = regexp.MustCompile(`\b8(\d{3})\b`)

	digitLetterDigitRe = regexp.MustCompile(`(\d)([A-Za-z])(\d)`)
	letterDigitsRe     = regexp.MustCompile(`([A-Za-z])(\d+)`)
	digitsLetterRe     = regexp.MustCompile(`(\d+)([A-Za-z])`)

	slashShortRe = regexp.MustCompile(`(\d{2,})[/|\\](\d+)`)
	slashLeftRe  = regexp.MustCompile(`(\d{3,})[/|\\](\d+)`)
	slashRightRe = regexp.MustCompile(`(\d+)[/|\\](\d{3,})`)

	threeThreeRe = regexp.MustCompile(`\b(\d{3})\s+(\d{3})\b`)
	fourThreeRe  = regexp.MustCompile(`\b(\d{4})\s+(\d{3})\b`)
	threeFourRe  = regexp.MustCompile(`\b(\d{3})\s+(\d{4})\b`)
	sixRe        = regexp.MustCompile(`\b\d{6}\b`)
	sevenRe      = regexp.MustCompile(`\b\d{7}\b`)
	eightRe      = regexp.MustCompile(`\b\d{8}\b`)

	mergedDayRe = regexp.MustCompile(`\b\d{9,10}\b`)
)

// normalizeOff canonicalizes OFF spelling variants: OfF, 0FF, oFF, O F F → OFF.
func normalizeOff(text string) string {
	return offRe.ReplaceAllString(text, "OFF")
}

// normalizePlusOne repairs a mis-OCR'd "+1" extra-hour marker. The "+" is
// commonly read as t/T/f/F and the "1" as 3/l/I/i/|, e.g.
// "0700 1900 t 3" → "0700 1900 +1".
func normalizePlusOne(text string) string {
	return plusOneRe.ReplaceAllString(text, "${1} +1${3}")
}

// fixHandwritingDigits fixes misreads that only occur in specific positions.
func fixHandwritingDigits(text string) string {
	// Leading F/f before 3+ digits → 7 (handwritten 7 looks like F)
	text = leadingFRe.ReplaceAllString(text, "7$1")

	// Leading $ before colon-digit (handwritten 7 misread as $): "$:60" → "7:60"
	text = dollarRe.ReplaceAllString(text, "7$1")

	// Stray "±" between digits → space (OCR artifact from a handwritten dash)
	text = strayDashRe.ReplaceAllString(text, "$1 $2")

	// "8" at the start of a 4-digit sequence where 8xxx cannot be a time but
	// 0xxx can: handwritten 0 looks like 8, e.g. "8730" → "0730".
	text = leadingEightRe.ReplaceAllStringFunc(text, func(match string) string {
		as0 := "0" + match[1:]
		hour8, _ := strconv.Atoi(match[:2])
		if hour8 > 23 && IsValidTime4(as0) {
			return as0
		}
		return match
	})

	return text
}

// fixLettersInDigitContext replaces OCR-confused letters with digits when
// surrounded by digit context. Runs up to 3 passes to catch cascading fixes
// (e.g. D7w190 → 07w190 → 070190).
func fixLettersInDigitContext(text string) string {
	result := text
	for i := 0; i < 3; i++ {
		prev := result
		result = digitLetterDigitRe.ReplaceAllStringFunc(result, func(match string) string {
			if d, ok := letterToDigit[match[1]]; ok {
				return string(match[0]) + string(d) + string(match[2])
			}
			return match
		})
		// Letter followed by digits (e.g. D7 → 07, D70 → 070)
		result = letterDigitsRe.ReplaceAllStringFunc(result, func(match string) string {
			if d, ok := letterToDigit[match[0]]; ok {
				return string(d) + match[1:]
			}
			return match
		})
		// Digits followed by letter (e.g. 07D → 070, 070D → 0700)
		result = digitsLetterRe.ReplaceAllStringFunc(result, func(match string) string {
			if d, ok := letterToDigit[match[len(match)-1]]; ok {
				return match[:len(match)-1] + string(d)
			}
			return match
		})
		if result == prev {
			break
		}
	}
	return result
}

// fixPunctuationInDigits replaces stray separators inside digit runs.
// A slash/pipe/backslash with exactly one trailing digit becomes a 0 plus
// that digit ("19/0" → "1900"); with 3+ digits on either side it is deleted
// outright. Short DD/DD patterns (date separators like 01/11) stay untouched.
func fixPunctuationInDigits(text string) string {
	text = slashShortRe.ReplaceAllStringFunc(text, func(match string) string {
		m := slashShortRe.FindStringSubmatch(match)
		if len(m[2]) == 1 {
			return m[1] + "0" + m[2]
		}
		return match
	})
	text = slashLeftRe.ReplaceAllString(text, "$1$2")
	text = slashRightRe.ReplaceAllString(text, "$1$2")
	return text
}

// rejoinTimeFragments repairs time tokens that the OCR engine split or
// merged. A trailing 0 is the digit most often lost, so 3-digit tokens are
// padded with one and kept only when the padding yields a valid time.
func rejoinTimeFragments(text string) string {
	// Two 3-digit tokens: both might be truncated 4-digit times.
	text = threeThreeRe.ReplaceAllStringFunc(text, func(match string) string {
		m := threeThreeRe.FindStringSubmatch(match)
		aPad, bPad := m[1]+"0", m[2]+"0"
		if IsValidTime4(aPad) && IsValidTime4(bPad) {
			return aPad + " " + bPad
		}
		if IsValidTime4(aPad) {
			return aPad + " " + m[2]
		}
		return match
	})

	// 4-digit token + 3-digit token (e.g. "0700 190" → "0700 1900")
	text = fourThreeRe.ReplaceAllStringFunc(text, func(match string) string {
		m := fourThreeRe.FindStringSubmatch(match)
		padded := m[2] + "0"
		if IsValidTime4(m[1]) && IsValidTime4(padded) {
			return m[1] + " " + padded
		}
		return match
	})

	// 3-digit token + 4-digit token (e.g. "070 1900" → "0700 1900")
	text = threeFourRe.ReplaceAllStringFunc(text, func(match string) string {
		m := threeFourRe.FindStringSubmatch(match)
		padded := m[1] + "0"
		if IsValidTime4(padded) && IsValidTime4(m[2]) {
			return padded + " " + m[2]
		}
		return match
	})

	// 6 consecutive digits like "070190" → "0700 1900"
	text = sixRe.ReplaceAllStringFunc(text, func(six string) string {
		// Split 3+3, pad both
		if a, b := six[:3]+"0", six[3:]+"0"; IsValidTime4(a) && IsValidTime4(b) {
			return a + " " + b
		}
		// Split 4+2, pad second
		if a, b := six[:4], six[4:]+"00"; IsValidTime4(a) && IsValidTime4(b) {
			return a + " " + b
		}
		// Split 2+4, pad first
		if a, b := six[:2]+"00", six[2:]; IsValidTime4(a) && IsValidTime4(b) {
			return a + " " + b
		}
		return six
	})

	// 7 consecutive digits like "0701900" → "0700 1900"
	text = sevenRe.ReplaceAllStringFunc(text, func(seven string) string {
		if a, b := seven[:3]+"0", seven[3:]; IsValidTime4(a) && IsValidTime4(b) {
			return a + " " + b
		}
		if a, b := seven[:4], seven[4:]+"0"; IsValidTime4(a) && IsValidTime4(b) {
			return a + " " + b
		}
		return seven
	})

	// 8 consecutive digits like "07001900" → "0700 1900"
	text = eightRe.ReplaceAllStringFunc(text, func(eight string) string {
		if a, b := eight[:4], eight[4:]; IsValidTime4(a) && IsValidTime4(b) {
			return a + " " + b
		}
		return eight
	})

	return text
}

// splitMergedDayDigits splits a merged day number + two times:
// "2707301930" → "27 0730 1930".
func splitMergedDayDigits(text string) string {
	return mergedDayRe.ReplaceAllStringFunc(text, func(digits string) string {
		// 2-digit day prefix
		if len(digits) >= 10 {
			day, _ := strconv.Atoi(digits[:2])
			rest := digits[2:]
			if day >= 1 && day <= 31 && len(rest) == 8 &&
				IsValidTime4(rest[:4]) && IsValidTime4(rest[4:]) {
				return digits[:2] + " " + rest[:4] + " " + rest[4:]
			}
		}
		// 1-digit day prefix
		if len(digits) >= 9 {
			day, _ := strconv.Atoi(digits[:1])
			rest := digits[1:]
			if day >= 1 && day <= 9 && len(rest) == 8 &&
				IsValidTime4(rest[:4]) && IsValidTime4(rest[4:]) {
				return digits[:1] + " " + rest[:4] + " " + rest[4:]
			}
		}
		return digits
	})
}

// Correct applies all OCR corrections to a single line of text. It is
// deterministic and total; unrecognized text passes through unchanged.
func Correct(line string) string {
	text := line
	text = normalizeOff(text)
	text = normalizePlusOne(text)
	text = fixHandwritingDigits(text)
	text = fixLettersInDigitContext(text)
	text = fixPunctuationInDigits(text)
	text = rejoinTimeFragments(text)
	text = splitMergedDayDigits(text)
	return text
}

// CorrectAll corrects every line of a document, preserving line order.
func CorrectAll(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Correct(strings.TrimRight(line, "\r"))
	}
	return out
}
