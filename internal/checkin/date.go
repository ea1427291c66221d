package checkin

import "time"

// DayOf normalizes a point in time to its UTC calendar day. The (goal, day)
// uniqueness key must not depend on the server's timezone.
func DayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
