package datetime

import (
	"fmt"
	"time"
)

// Fields holds the calendar and clock fields of an Instant.
type Fields struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// Instant is an immutable point in time bound to a calendar and a location.
// The zero value reports IsZero and is used by the API for "absent" or "now".
type Instant struct {
	t   time.Time
	cal Calendar
}

// NewInstant binds t to cal. A nil calendar means Gregorian.
func NewInstant(t time.Time, cal Calendar) Instant {
	if cal == nil {
		cal = Gregorian
	}
	return Instant{t: t, cal: cal}
}

// Now returns the current instant in cal and loc.
func Now(cal Calendar, loc *time.Location) Instant {
	if loc == nil {
		loc = time.Local
	}
	return NewInstant(time.Now().In(loc), cal)
}

// Date builds an Instant from fields interpreted in cal.
func Date(cal Calendar, year, month, day, hour, minute, second int, loc *time.Location) (Instant, error) {
	if cal == nil {
		cal = Gregorian
	}
	if loc == nil {
		loc = time.Local
	}
	f := Fields{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
	if err := validateFields(cal, f); err != nil {
		return Instant{}, err
	}
	return Instant{t: cal.Time(year, month, day, hour, minute, second, 0, loc), cal: cal}, nil
}

// MustDate is Date for values known to be valid.
func MustDate(cal Calendar, year, month, day, hour, minute, second int, loc *time.Location) Instant {
	inst, err := Date(cal, year, month, day, hour, minute, second, loc)
	if err != nil {
		panic(err)
	}
	return inst
}

func validateFields(cal Calendar, f Fields) error {
	if months := cal.MonthsInYear(f.Year); f.Month < 1 || f.Month > months {
		return fmt.Errorf("%w: month %d outside 1..%d", ErrInvalidField, f.Month, months)
	}
	if days := cal.DaysInMonth(f.Year, f.Month); f.Day < 1 || f.Day > days {
		return fmt.Errorf("%w: day %d outside 1..%d", ErrInvalidField, f.Day, days)
	}
	if f.Hour < 0 || f.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrInvalidField, f.Hour)
	}
	if f.Minute < 0 || f.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrInvalidField, f.Minute)
	}
	if f.Second < 0 || f.Second > 59 {
		return fmt.Errorf("%w: second %d", ErrInvalidField, f.Second)
	}
	if f.Nanosecond < 0 || f.Nanosecond > 999_999_999 {
		return fmt.Errorf("%w: nanosecond %d", ErrInvalidField, f.Nanosecond)
	}
	return nil
}

func (i Instant) IsZero() bool { return i.t.IsZero() }

// Time returns the underlying absolute time.
func (i Instant) Time() time.Time { return i.t }

func (i Instant) Calendar() Calendar {
	if i.cal == nil {
		return Gregorian
	}
	return i.cal
}

func (i Instant) Location() *time.Location { return i.t.Location() }

func (i Instant) Fields() Fields {
	y, m, d := i.Calendar().Date(i.t)
	return Fields{
		Year:       y,
		Month:      m,
		Day:        d,
		Hour:       i.t.Hour(),
		Minute:     i.t.Minute(),
		Second:     i.t.Second(),
		Nanosecond: i.t.Nanosecond(),
	}
}

func (i Instant) Year() int {
	y, _, _ := i.Calendar().Date(i.t)
	return y
}

func (i Instant) Month() int {
	_, m, _ := i.Calendar().Date(i.t)
	return m
}

func (i Instant) Day() int {
	_, _, d := i.Calendar().Date(i.t)
	return d
}

func (i Instant) Hour() int                 { return i.t.Hour() }
func (i Instant) Minute() int               { return i.t.Minute() }
func (i Instant) Second() int               { return i.t.Second() }
func (i Instant) Nanosecond() int           { return i.t.Nanosecond() }
func (i Instant) Weekday() time.Weekday     { return i.t.Weekday() }
func (i Instant) UnixMilli() int64          { return i.t.UnixMilli() }
func (i Instant) MonthsInYear() int         { return i.Calendar().MonthsInYear(i.Year()) }
func (i Instant) String() string            { return i.t.Format(time.RFC3339Nano) }
func (i Instant) Compare(other Instant) int { return i.t.Compare(other.t) }
func (i Instant) Before(other Instant) bool { return i.t.Before(other.t) }
func (i Instant) After(other Instant) bool  { return i.t.After(other.t) }

// Equal reports whether both instants denote the same point in time.
func (i Instant) Equal(other Instant) bool { return i.t.Equal(other.t) }

func (i Instant) DaysInMonth() int {
	y, m, _ := i.Calendar().Date(i.t)
	return i.Calendar().DaysInMonth(y, m)
}

// In re-expresses the instant in another calendar. The absolute time is unchanged.
func (i Instant) In(cal Calendar) Instant { return NewInstant(i.t, cal) }

// InLocation re-expresses the instant in another location.
func (i Instant) InLocation(loc *time.Location) Instant {
	if loc == nil {
		return i
	}
	return Instant{t: i.t.In(loc), cal: i.cal}
}

// WithFields returns a new instant with every field replaced.
func (i Instant) WithFields(f Fields) (Instant, error) {
	cal := i.Calendar()
	if err := validateFields(cal, f); err != nil {
		return Instant{}, err
	}
	t := cal.Time(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, i.t.Location())
	return Instant{t: t, cal: cal}, nil
}

// WithDate replaces year, month and day keeping the time of day.
func (i Instant) WithDate(year, month, day int) (Instant, error) {
	f := i.Fields()
	f.Year, f.Month, f.Day = year, month, day
	return i.WithFields(f)
}

// Add moves the instant by amount units. Years and months use calendar
// arithmetic and clamp the day to the target month; weeks and days keep the
// wall clock; smaller units are exact elapsed time.
func (i Instant) Add(unit Unit, amount int) Instant {
	if amount == 0 {
		return i
	}
	switch unit {
	case UnitYear:
		return i.addMonths(amount, true)
	case UnitMonth:
		return i.addMonths(amount, false)
	case UnitWeek:
		return Instant{t: i.t.AddDate(0, 0, 7*amount), cal: i.cal}
	case UnitDay:
		return Instant{t: i.t.AddDate(0, 0, amount), cal: i.cal}
	case UnitHour:
		return i.addSeconds(int64(amount) * 3600)
	case UnitMinute:
		return i.addSeconds(int64(amount) * 60)
	case UnitSecond:
		return i.addSeconds(int64(amount))
	case UnitMillisecond:
		return Instant{t: i.t.Add(time.Duration(amount) * time.Millisecond), cal: i.cal}
	default:
		return i
	}
}

func (i Instant) addSeconds(secs int64) Instant {
	t := time.Unix(i.t.Unix()+secs, int64(i.t.Nanosecond())).In(i.t.Location())
	return Instant{t: t, cal: i.cal}
}

func (i Instant) addMonths(amount int, years bool) Instant {
	cal := i.Calendar()
	f := i.Fields()

	if years {
		f.Year += amount
		if months := cal.MonthsInYear(f.Year); f.Month > months {
			f.Month = months
		}
	} else {
		per := cal.MonthsInYear(f.Year)
		total := f.Year*per + (f.Month - 1) + amount
		f.Year = floorDiv(total, per)
		f.Month = total - f.Year*per + 1
	}

	if days := cal.DaysInMonth(f.Year, f.Month); f.Day > days {
		f.Day = days
	}

	t := cal.Time(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second, f.Nanosecond, i.t.Location())
	return Instant{t: t, cal: cal}
}

func (i Instant) StartOfDay() Instant {
	f := i.Fields()
	return Instant{t: i.Calendar().Time(f.Year, f.Month, f.Day, 0, 0, 0, 0, i.t.Location()), cal: i.cal}
}

// EndOfDay is the last representable nanosecond of the day.
func (i Instant) EndOfDay() Instant {
	start := i.StartOfDay()
	return Instant{t: start.t.AddDate(0, 0, 1).Add(-time.Nanosecond), cal: i.cal}
}

// StartOfWeek returns midnight of the most recent day that is first.
func (i Instant) StartOfWeek(first time.Weekday) Instant {
	back := (int(i.t.Weekday()) - int(first) + 7) % 7
	start := i.StartOfDay()
	return Instant{t: start.t.AddDate(0, 0, -back), cal: i.cal}
}

func (i Instant) EndOfWeek(first time.Weekday) Instant {
	start := i.StartOfWeek(first)
	return Instant{t: start.t.AddDate(0, 0, 7).Add(-time.Nanosecond), cal: i.cal}
}

func (i Instant) StartOfMonth() Instant {
	f := i.Fields()
	return Instant{t: i.Calendar().Time(f.Year, f.Month, 1, 0, 0, 0, 0, i.t.Location()), cal: i.cal}
}

func (i Instant) EndOfMonth() Instant {
	next := i.StartOfMonth().Add(UnitMonth, 1)
	return Instant{t: next.t.Add(-time.Nanosecond), cal: i.cal}
}

func (i Instant) StartOfYear() Instant {
	y := i.Year()
	return Instant{t: i.Calendar().Time(y, 1, 1, 0, 0, 0, 0, i.t.Location()), cal: i.cal}
}

func (i Instant) EndOfYear() Instant {
	next := i.StartOfYear().Add(UnitYear, 1)
	return Instant{t: next.t.Add(-time.Nanosecond), cal: i.cal}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
