package datetime

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// CalendarID is the BCP 47 calendar identifier (the value of the -u-ca- extension).
type CalendarID string

const (
	CalendarGregorian CalendarID = "gregory"
	CalendarPersian   CalendarID = "persian"
)

// Calendar converts between absolute times and calendar fields.
// Implementations must be stateless and safe for concurrent use.
type Calendar interface {
	ID() CalendarID
	// Date returns year, month and day of t in this calendar.
	Date(t time.Time) (year, month, day int)
	// Time builds the absolute time for the given calendar fields. Fields are
	// expected to be valid, callers check them with MonthsInYear/DaysInMonth.
	Time(year, month, day, hour, minute, second, nsec int, loc *time.Location) time.Time
	MonthsInYear(year int) int
	DaysInMonth(year, month int) int
}

type gregorianCalendar struct{}

// Gregorian is the proleptic Gregorian calendar backed by package time.
var Gregorian Calendar = gregorianCalendar{}

func (gregorianCalendar) ID() CalendarID { return CalendarGregorian }

func (gregorianCalendar) Date(t time.Time) (int, int, int) {
	y, m, d := t.Date()
	return y, int(m), d
}

func (gregorianCalendar) Time(year, month, day, hour, minute, second, nsec int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, second, nsec, loc)
}

func (gregorianCalendar) MonthsInYear(int) int { return 12 }

func (gregorianCalendar) DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

var (
	calendarsMu sync.RWMutex
	calendars   = map[CalendarID]Calendar{
		CalendarGregorian: Gregorian,
		CalendarPersian:   Persian,
	}
	calendarAliases = map[string]CalendarID{
		"gregorian": CalendarGregorian,
		"iso8601":   CalendarGregorian,
		"jalali":    CalendarPersian,
		"solar":     CalendarPersian,
	}
)

// RegisterCalendar adds a calendar implementation. Existing identifiers are not replaced.
func RegisterCalendar(cal Calendar) {
	if cal == nil || cal.ID() == "" {
		return
	}

	calendarsMu.Lock()
	defer calendarsMu.Unlock()

	if _, exists := calendars[cal.ID()]; exists {
		return
	}
	calendars[cal.ID()] = cal
}

// CalendarByID resolves a calendar by identifier or a well known alias.
func CalendarByID(id string) (Calendar, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	if alias, ok := calendarAliases[key]; ok {
		key = string(alias)
	}

	calendarsMu.RLock()
	defer calendarsMu.RUnlock()

	cal, ok := calendars[CalendarID(key)]
	return cal, ok
}

// CalendarIDs returns the registered identifiers, sorted.
func CalendarIDs() []string {
	calendarsMu.RLock()
	defer calendarsMu.RUnlock()

	ids := make([]string, 0, len(calendars))
	for id := range calendars {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	return ids
}
