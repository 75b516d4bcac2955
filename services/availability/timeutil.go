package availability

import (
	"fmt"
	"time"
)

// TimeOfDay is a clock time with no date and no zone attached.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// SecondsFromMidnight positions the value within its day for ordering.
func (t TimeOfDay) SecondsFromMidnight() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.SecondsFromMidnight() < other.SecondsFromMidnight()
}

// ParseTimeOfDay accepts "HH:MM:SS" or "HH:MM" and nothing else.
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return TimeOfDay{
				Hour:   parsed.Hour(),
				Minute: parsed.Minute(),
				Second: parsed.Second(),
			}, nil
		}
	}
	return TimeOfDay{}, &TimeParseError{Value: value}
}

// Combine anchors a time-of-day on a calendar day in the given zone. Every
// timestamp the engine compares comes from here, so naive/aware mixups cannot
// happen downstream.
func Combine(date time.Time, tod TimeOfDay, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, tod.Second, 0, loc)
}

// DayStart returns midnight of the given instant's calendar day in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
