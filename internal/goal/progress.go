package goal

import (
	"math"
	"time"
)

// TotalDays is the goal's span in whole days, rounding partial days up.
// A goal whose end equals its start spans zero days.
func TotalDays(start, end time.Time) int {
	diff := end.Sub(start)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Percentage is completed/total as a rounded percent, 0 when total is 0.
func Percentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func DaysRemaining(now, end time.Time) int {
	diff := end.Sub(now)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}
