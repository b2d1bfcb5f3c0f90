package datetime

import (
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

type persianCalendar struct{}

// Persian is the Solar Hijri (Jalali) calendar.
var Persian Calendar = persianCalendar{}

func (persianCalendar) ID() CalendarID { return CalendarPersian }

func (persianCalendar) Date(t time.Time) (int, int, int) {
	pt := ptime.New(t)
	return pt.Year(), int(pt.Month()), pt.Day()
}

func (persianCalendar) Time(year, month, day, hour, minute, second, nsec int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return ptime.Date(year, ptime.Month(month), day, hour, minute, second, nsec, loc).Time()
}

func (persianCalendar) MonthsInYear(int) int { return 12 }

// DaysInMonth measures the distance between the first day of the month and the
// first day of the next one, so leap years come from the calendar library.
func (c persianCalendar) DaysInMonth(year, month int) int {
	nextYear, nextMonth := year, month+1
	if nextMonth > c.MonthsInYear(year) {
		nextYear, nextMonth = year+1, 1
	}
	start := ptime.Date(year, ptime.Month(month), 1, 12, 0, 0, 0, time.UTC).Time()
	end := ptime.Date(nextYear, ptime.Month(nextMonth), 1, 12, 0, 0, 0, time.UTC).Time()
	return int(end.Sub(start).Hours() / 24)
}
