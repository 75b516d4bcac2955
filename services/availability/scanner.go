package availability

import "time"

// DefaultGranularity is the step between candidate start times.
const DefaultGranularity = 15 * time.Minute

// AlignUp rounds t up to the next granularity boundary within its day,
// leaving it untouched if it already sits on one.
func AlignUp(t time.Time, granularity time.Duration) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := t.Sub(midnight)
	aligned := offset.Truncate(granularity)
	if aligned < offset {
		aligned += granularity
	}
	return midnight.Add(aligned)
}

// ScanInterval walks one operating interval at fixed granularity and returns
// the "HH:MM" start times where the whole service block fits before the
// window closes and fewer busy intervals overlap it than there is staff.
//
// Overlap is half-open: a block ending exactly when a busy interval starts
// does not collide. notBefore, when non-zero, floors the scan at the aligned
// current time so same-day requests never offer the past.
func ScanInterval(
	window OperatingInterval,
	date time.Time,
	loc *time.Location,
	totalDuration time.Duration,
	busy []BusyInterval,
	staffCapacity int,
	granularity time.Duration,
	notBefore time.Time,
) []string {
	start := Combine(date, window.Start, loc)
	end := Combine(date, window.End, loc)

	cursor := start
	if !notBefore.IsZero() {
		if floor := AlignUp(notBefore, granularity); floor.After(cursor) {
			cursor = floor
		}
	}

	lastStart := end.Add(-totalDuration)
	if lastStart.Before(start) {
		// Interval too short for the requested block.
		return nil
	}

	var slots []string
	for !cursor.After(lastStart) {
		candidateEnd := cursor.Add(totalDuration)
		if candidateEnd.After(end) {
			// Unreachable while lastStart is computed correctly; stepping
			// forward can only make it worse, so stop rather than skip.
			break
		}

		overlaps := 0
		for _, b := range busy {
			if cursor.Before(b.End) && candidateEnd.After(b.Start) {
				overlaps++
			}
		}
		if overlaps < staffCapacity {
			slots = append(slots, cursor.Format("15:04"))
		}

		cursor = cursor.Add(granularity)
	}
	return slots
}
