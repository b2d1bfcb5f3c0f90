package datetime

import (
	"math"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
	msPerWeek   = 7 * msPerDay
	msPerMonth  = 30 * msPerDay
	msPerYear   = 365 * msPerDay
)

// TimeSpan is a signed duration in milliseconds. Month and year views are
// approximations (30 and 365 days); use Instant.Add for calendar math.
type TimeSpan struct {
	ms int64
}

func NewTimeSpan(milliseconds int64) TimeSpan { return TimeSpan{ms: milliseconds} }

func TimeSpanFromDuration(d time.Duration) TimeSpan { return TimeSpan{ms: d.Milliseconds()} }

// Between returns b - a.
func Between(a, b Instant) TimeSpan { return TimeSpan{ms: b.UnixMilli() - a.UnixMilli()} }

func (s TimeSpan) Milliseconds() int64 { return s.ms }
func (s TimeSpan) Seconds() float64    { return float64(s.ms) / float64(msPerSecond) }
func (s TimeSpan) Minutes() float64    { return float64(s.ms) / float64(msPerMinute) }
func (s TimeSpan) Hours() float64      { return float64(s.ms) / float64(msPerHour) }
func (s TimeSpan) Days() float64       { return float64(s.ms) / float64(msPerDay) }
func (s TimeSpan) Weeks() float64      { return float64(s.ms) / float64(msPerWeek) }
func (s TimeSpan) Months() float64     { return float64(s.ms) / float64(msPerMonth) }
func (s TimeSpan) Years() float64      { return float64(s.ms) / float64(msPerYear) }

func (s TimeSpan) Duration() time.Duration { return time.Duration(s.ms) * time.Millisecond }
func (s TimeSpan) String() string          { return s.Duration().String() }
func (s TimeSpan) Negate() TimeSpan        { return TimeSpan{ms: -s.ms} }

func (s TimeSpan) Abs() TimeSpan {
	if s.ms < 0 {
		return s.Negate()
	}
	return s
}

// Largest returns the largest unit whose magnitude is at least one, with the
// value truncated toward zero. Seconds is the fallback.
func (s TimeSpan) Largest() (int64, Unit) {
	views := []struct {
		value float64
		unit  Unit
	}{
		{s.Years(), UnitYear},
		{s.Months(), UnitMonth},
		{s.Weeks(), UnitWeek},
		{s.Days(), UnitDay},
		{s.Hours(), UnitHour},
		{s.Minutes(), UnitMinute},
	}
	for _, v := range views {
		if math.Abs(v.value) >= 1 {
			return int64(math.Trunc(v.value)), v.unit
		}
	}
	return int64(math.Trunc(s.Seconds())), UnitSecond
}

// Format renders the span as a relative phrase in the formatter's locale.
// Negative spans read as past even when the magnitude truncates to zero.
func (s TimeSpan) Format(f *Formatter) string {
	value, unit := s.Largest()
	if value < 0 {
		value = -value
	}
	return f.formatRelative(value, unit, s.ms < 0)
}
