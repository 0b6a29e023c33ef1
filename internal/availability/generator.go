package availability

import "fmt"

// Daily working window and grid step, fixed by policy.
const (
	workDayStartMinute = 9 * 60
	workDayEndMinute   = 17 * 60
	slotStepMinutes    = 30
)

// Generate derives the candidate slot grid for one day: consecutive
// half-hour intervals from 09:00, keeping only those whose end fits
// inside the working window. Pure; the same grid for every service and
// date.
func Generate() []Interval {
	var intervals []Interval
	for start := workDayStartMinute; start+slotStepMinutes <= workDayEndMinute; start += slotStepMinutes {
		intervals = append(intervals, Interval{
			Start: formatMinute(start),
			End:   formatMinute(start + slotStepMinutes),
		})
	}
	return intervals
}

func formatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
