package timecard

import (
	"sort"
	"strings"

	"github.com/workpaysg/timecard-payslip/dto"
)

// rowTolerancePx is how far a line's vertical center may drift from the
// running average of its row before it starts a new row.
const rowTolerancePx = 12.0

type placedLine struct {
	text    string
	centerY float64
	leftX   float64
}

func boxCenterY(b *dto.FourPoints) float64 {
	return (b[0][1] + b[1][1] + b[2][1] + b[3][1]) / 4
}

func boxLeftX(b *dto.FourPoints) float64 {
	left := b[0][0]
	for _, p := range b[1:] {
		if p[0] < left {
			left = p[0]
		}
	}
	return left
}

// ClusterRows groups OCR lines that sit on the same visual row of the
// timecard and joins each row left to right. Lines without geometry each
// become their own row, in input order, so plain-text OCR output passes
// through unchanged.
func ClusterRows(lines []dto.RawLine) []string {
	var placed []placedLine
	var loose []string
	for _, l := range lines {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}
		if l.Box == nil {
			loose = append(loose, l.Text)
			continue
		}
		placed = append(placed, placedLine{
			text:    l.Text,
			centerY: boxCenterY(l.Box),
			leftX:   boxLeftX(l.Box),
		})
	}

	if len(placed) == 0 {
		return loose
	}

	sort.SliceStable(placed, func(i, j int) bool {
		return placed[i].centerY < placed[j].centerY
	})

	var rows [][]placedLine
	var current []placedLine
	var sumY float64
	for _, p := range placed {
		if len(current) > 0 {
			avg := sumY / float64(len(current))
			if p.centerY-avg > rowTolerancePx {
				rows = append(rows, current)
				current = nil
				sumY = 0
			}
		}
		current = append(current, p)
		sumY += p.centerY
	}
	rows = append(rows, current)

	out := make([]string, 0, len(rows)+len(loose))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool {
			return row[i].leftX < row[j].leftX
		})
		parts := make([]string, len(row))
		for i, p := range row {
			parts[i] = p.text
		}
		out = append(out, strings.Join(parts, " "))
	}
	return append(out, loose...)
}
