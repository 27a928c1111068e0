package schedule

import "fmt"

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" or "HH:MM:SS" (seconds are ignored). It returns
// ok=false for anything malformed or out of range instead of an error, since
// a bad clock string downgrades one event rather than aborting a layout.
func ParseClock(s string) (Clock, bool) {
	fields := splitClock(s)
	if fields == nil {
		return Clock{}, false
	}
	h, m, sec := fields[0], fields[1], fields[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return Clock{}, false
	}
	return Clock{Hour: h, Minute: m}, true
}

// splitClock returns [hour, minute, second] or nil. Seconds default to 0 when
// the field is absent. Only plain digit runs of 1-2 characters are accepted.
func splitClock(s string) []int {
	out := []int{0, 0, 0}
	field := 0
	digits := 0
	val := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
			if digits > 2 {
				return nil
			}
			val = val*10 + int(c-'0')
		case c == ':':
			if digits == 0 || field >= 2 {
				return nil
			}
			out[field] = val
			field++
			digits = 0
			val = 0
		default:
			return nil
		}
	}
	if digits == 0 || field == 0 {
		return nil
	}
	out[field] = val
	return out
}

// Minutes returns the offset from midnight in minutes.
func (c Clock) Minutes() int {
	return c.Hour*60 + c.Minute
}

// String formats the clock as zero-padded "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ClockFromMinutes builds a Clock from a minutes-of-day offset.
func ClockFromMinutes(m int) Clock {
	return Clock{Hour: m / 60, Minute: m % 60}
}
