package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_GridShape(t *testing.T) {
	intervals := Generate()

	require.Len(t, intervals, 16)
	assert.Equal(t, Interval{Start: "09:00", End: "09:30"}, intervals[0])
	assert.Equal(t, Interval{Start: "16:30", End: "17:00"}, intervals[len(intervals)-1])
}

func TestGenerate_ContiguousNonOverlapping(t *testing.T) {
	intervals := Generate()

	for i, iv := range intervals {
		assert.Less(t, iv.Start, iv.End)
		if i > 0 {
			// Each slot starts exactly where the previous one ends.
			assert.Equal(t, intervals[i-1].End, iv.Start)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	assert.Equal(t, Generate(), Generate())
}

func TestFormatMinute(t *testing.T) {
	assert.Equal(t, "09:00", formatMinute(540))
	assert.Equal(t, "09:30", formatMinute(570))
	assert.Equal(t, "17:00", formatMinute(1020))
}
