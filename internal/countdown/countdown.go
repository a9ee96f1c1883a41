// Package countdown computes the time remaining until the event starts and
// drives periodic countdown updates.
package countdown

import (
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Remaining is the split of the distance to the target into whole days,
// hours, minutes and seconds.
type Remaining struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

// IsZero reports whether every field is zero.
func (r Remaining) IsZero() bool {
	return r == Remaining{}
}

// Compute returns the time left until target as seen at now.
// Fields are truncated, never rounded. A target in the past yields zero.
func Compute(target, now time.Time) Remaining {
	distance := target.Sub(now).Milliseconds()
	if distance <= 0 {
		return Remaining{}
	}

	return Remaining{
		Days:    distance / msPerDay,
		Hours:   (distance % msPerDay) / msPerHour,
		Minutes: (distance % msPerHour) / msPerMinute,
		Seconds: (distance % msPerMinute) / msPerSecond,
	}
}

// Started reports whether the countdown shows zero at now, that is whether
// less than a whole second is left before target.
func Started(target, now time.Time) bool {
	return target.Sub(now).Milliseconds() < msPerSecond
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}
