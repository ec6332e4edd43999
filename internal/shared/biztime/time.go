// Package biztime provides time utilities for billing calculations.
// All storage and transport use UTC; billing cycles use calendar-month
// boundaries rather than fixed 30-day windows.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// NextCycleStart returns the start of the billing cycle that follows the
// given cycle start, one calendar month later. AddDate normalizes overflowed
// days (Jan 31 + 1 month = Mar 3), which matches the provider's behavior.
func NextCycleStart(cycleStart time.Time) time.Time {
	return cycleStart.AddDate(0, 1, 0)
}

// CycleElapsed reports whether now has reached or passed the end of the
// billing cycle that started at cycleStart.
func CycleElapsed(cycleStart, now time.Time) bool {
	return !now.Before(NextCycleStart(cycleStart))
}

// AdvanceCycleStart moves cycleStart forward by whole calendar months until
// it is the start of the cycle containing now. Returns cycleStart unchanged
// when the current cycle has not elapsed.
func AdvanceCycleStart(cycleStart, now time.Time) time.Time {
	for CycleElapsed(cycleStart, now) {
		cycleStart = NextCycleStart(cycleStart)
	}
	return cycleStart
}
