package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCycleElapsed(t *testing.T) {
	start := date(2025, time.January, 15)

	assert.False(t, CycleElapsed(start, date(2025, time.January, 20)))
	assert.False(t, CycleElapsed(start, date(2025, time.February, 14)))
	assert.True(t, CycleElapsed(start, date(2025, time.February, 15)))
	assert.True(t, CycleElapsed(start, date(2025, time.March, 1)))
}

func TestAdvanceCycleStart_SingleBoundary(t *testing.T) {
	start := date(2025, time.January, 15)
	got := AdvanceCycleStart(start, date(2025, time.February, 20))
	assert.Equal(t, date(2025, time.February, 15), got)
}

func TestAdvanceCycleStart_MultipleBoundaries(t *testing.T) {
	start := date(2025, time.January, 15)
	got := AdvanceCycleStart(start, date(2025, time.May, 1))
	assert.Equal(t, date(2025, time.April, 15), got)
}

func TestAdvanceCycleStart_NoBoundary(t *testing.T) {
	start := date(2025, time.January, 15)
	got := AdvanceCycleStart(start, date(2025, time.January, 31))
	assert.Equal(t, start, got)
}

func TestNextCycleStart_MonthEndNormalization(t *testing.T) {
	// Jan 31 + 1 calendar month lands on Mar 3 in non-leap years.
	got := NextCycleStart(date(2025, time.January, 31))
	assert.Equal(t, date(2025, time.March, 3), got)
}
