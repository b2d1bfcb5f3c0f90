package datetime

import "strings"

// Unit is a canonical calendar or clock unit.
type Unit int

const (
	UnitYear Unit = iota
	UnitMonth
	UnitWeek
	UnitDay
	UnitHour
	UnitMinute
	UnitSecond
	UnitMillisecond
)

// Units lists every unit from largest to smallest.
var Units = []Unit{
	UnitYear,
	UnitMonth,
	UnitWeek,
	UnitDay,
	UnitHour,
	UnitMinute,
	UnitSecond,
	UnitMillisecond,
}

var unitNames = map[Unit]string{
	UnitYear:        "year",
	UnitMonth:       "month",
	UnitWeek:        "week",
	UnitDay:         "day",
	UnitHour:        "hour",
	UnitMinute:      "minute",
	UnitSecond:      "second",
	UnitMillisecond: "millisecond",
}

func (u Unit) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "unknown"
}

// ParseUnit resolves the canonical English unit name, singular or plural.
func ParseUnit(name string) (Unit, bool) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), "s")
	for unit, candidate := range unitNames {
		if candidate == name {
			return unit, true
		}
	}
	return 0, false
}
