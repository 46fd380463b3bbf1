package timecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workpaysg/timecard-payslip/dto"
)

func box(x, y, w, h float64) *dto.FourPoints {
	return &dto.FourPoints{
		{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h},
	}
}

func TestClusterRowsJoinsSameLine(t *testing.T) {
	lines := []dto.RawLine{
		{Text: "0700 1900", Box: box(120, 103, 200, 20)},
		{Text: "3", Box: box(10, 100, 30, 20)},
		{Text: "4", Box: box(10, 140, 30, 20)},
		{Text: "0730 1930", Box: box(120, 143, 200, 20)},
	}

	rows := ClusterRows(lines)
	require.Len(t, rows, 2)
	assert.Equal(t, "3 0700 1900", rows[0])
	assert.Equal(t, "4 0730 1930", rows[1])
}

func TestClusterRowsWithoutGeometry(t *testing.T) {
	lines := []dto.RawLine{
		{Text: "3 0700 1900"},
		{Text: "4 0730 1930"},
	}
	rows := ClusterRows(lines)
	assert.Equal(t, []string{"3 0700 1900", "4 0730 1930"}, rows)
}

func TestClusterRowsSkipsBlankText(t *testing.T) {
	lines := []dto.RawLine{
		{Text: "  "},
		{Text: "3 0700 1900", Box: box(10, 100, 200, 20)},
	}
	rows := ClusterRows(lines)
	assert.Equal(t, []string{"3 0700 1900"}, rows)
}
