package datetime

import (
	"fmt"
	"regexp"
	"strconv"
)

// localParser matches separator delimited dates with an optional time, in
// the locale's field order ("1/15/2020 13:05", "15.1.2020, 13:05:10").
// Fields absent from the input keep the reference value, so an hour alone
// keeps the reference minute and second; only nanoseconds reset.
type localParser struct {
	facts   *LocaleFacts
	pattern *regexp.Regexp
}

func newLocalParser(facts *LocaleFacts) (*localParser, error) {
	dateSep := regexp.QuoteMeta(facts.DateSeparator)
	date, err := localDateGroup(facts.DateOrder, dateSep)
	if err != nil {
		return nil, err
	}
	pattern, err := regexp.Compile("^" + date + localTimeGroup(dateSep, regexp.QuoteMeta(facts.TimeSeparator)) + "$")
	if err != nil {
		return nil, fmt.Errorf("datetime: compile local pattern: %w", err)
	}
	return &localParser{facts: facts, pattern: pattern}, nil
}

const (
	yearGroup  = `(?P<year>\d{4})`
	monthGroup = `(?P<month>\d{1,2})`
	dayGroup   = `(?P<day>\d{1,2})`
)

// localDateGroup builds the date part of the pattern. When the year leads,
// separators trail each field; when the day leads they precede it. Leading
// forms accept one dangling separator at the end of input ("15.1.").
func localDateGroup(order DateOrder, sep string) (string, error) {
	switch order {
	case OrderYMD:
		return `(?:` + yearGroup + sep + `)?` + monthGroup + sep + dayGroup, nil
	case OrderDMY:
		return dayGroup + sep + monthGroup + `(?:` + sep + yearGroup + `)?(?:` + sep + `$)?`, nil
	case OrderMDY:
		return monthGroup + sep + dayGroup + `(?:` + sep + yearGroup + `)?(?:` + sep + `$)?`, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFieldOrder, order)
	}
}

// localTimeGroup is an optional hour[:minute[:second]] group, joined to the
// date by at most one character that is neither a digit nor the date
// separator (",", "T", "،").
func localTimeGroup(dateSep, sep string) string {
	return `(?:[^\d` + dateSep + `]?(?P<hour>\d{1,2})(?:` + sep + `(?P<minute>\d{1,2})(?:` + sep + `(?P<second>\d{1,2}))?)?)?`
}

func (p *localParser) Parse(text string, ref Instant) (Instant, bool) {
	match := p.pattern.FindStringSubmatch(stripSpace(text))
	if match == nil {
		return Instant{}, false
	}

	group := func(name string) (int, bool) {
		idx := p.pattern.SubexpIndex(name)
		if idx < 0 || match[idx] == "" {
			return 0, false
		}
		n, err := strconv.Atoi(match[idx])
		return n, err == nil
	}

	f := ref.Fields()
	if year, ok := group("year"); ok {
		f.Year = year
	}
	f.Month, _ = group("month")
	f.Day, _ = group("day")
	if hour, ok := group("hour"); ok {
		f.Hour = hour
		f.Nanosecond = 0
	}
	if minute, ok := group("minute"); ok {
		f.Minute = minute
	}
	if second, ok := group("second"); ok {
		f.Second = second
	}

	result, err := ref.WithFields(f)
	if err != nil {
		return Instant{}, false
	}
	return result, true
}
