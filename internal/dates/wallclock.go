package dates

import "time"

// WallClock keeps the calendar and clock fields of t and drops its zone,
// at second precision. The result is in UTC only as a neutral carrier:
// 09:00 at +07:00 stays 09:00 on the same day.
func WallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}
