package dates

import (
	"fmt"
	"time"
)

// ClockTime is an optional HH:MM time of day. The empty value means "no
// time"; it sorts before every explicit time.
type ClockTime string

const NoTime ClockTime = ""

// ParseClockTime accepts "", "HH:MM" or "HH:MM:SS" and normalizes to HH:MM.
func ParseClockTime(s string) (ClockTime, error) {
	if s == "" {
		return NoTime, nil
	}
	for _, l := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(l, s); err == nil {
			return ClockTime(t.Format("15:04")), nil
		}
	}
	return NoTime, fmt.Errorf("invalid time %q: expected HH:MM", s)
}

func (c ClockTime) IsSet() bool {
	return c != NoTime
}

func (c ClockTime) String() string {
	return string(c)
}
