package datetime

import "strconv"

// shortcutParser resolves compact digit strings such as "15", "0203" or
// "030220" using the locale's field order.
type shortcutParser struct {
	facts *LocaleFacts
}

func newShortcutParser(facts *LocaleFacts) *shortcutParser {
	return &shortcutParser{facts: facts}
}

func (p *shortcutParser) Parse(text string, ref Instant) (Instant, bool) {
	s := stripSpace(text)
	if len(s) == 0 || len(s) > 8 || !allDigits(s) {
		return Instant{}, false
	}

	switch len(s) {
	case 1, 2:
		if day := atoi(s); day >= 1 && day <= ref.DaysInMonth() {
			return withDate(ref, ref.Year(), ref.Month(), day)
		}
		if len(s) == 2 {
			return p.dayMonth(ref, s[:1], s[1:])
		}
	case 3:
		if result, ok := p.dayMonth(ref, s[:2], s[2:]); ok {
			return result, true
		}
		return p.dayMonth(ref, s[:1], s[1:])
	case 4:
		return p.dayMonth(ref, s[:2], s[2:])
	case 6:
		century := floorDiv(ref.Year(), 100) * 100
		return p.full(ref, s[:2], s[2:4], s[4:], century)
	case 8:
		if p.facts.DateOrder.YearFirst() {
			return p.full(ref, s[:4], s[4:6], s[6:], 0)
		}
		return p.full(ref, s[:2], s[2:4], s[4:], 0)
	}
	return Instant{}, false
}

// dayMonth assigns two groups per the day-month order and keeps the reference year.
func (p *shortcutParser) dayMonth(ref Instant, first, second string) (Instant, bool) {
	var day, month int
	switch p.facts.DayMonthOrder {
	case OrderDM:
		day, month = atoi(first), atoi(second)
	case OrderMD:
		month, day = atoi(first), atoi(second)
	default:
		return Instant{}, false
	}
	return withDate(ref, ref.Year(), month, day)
}

// full assigns three groups per the date order. yearBase is added to the year
// group, expanding two digit years into the reference century.
func (p *shortcutParser) full(ref Instant, a, b, c string, yearBase int) (Instant, bool) {
	var year, month, day int
	switch p.facts.DateOrder {
	case OrderDMY:
		day, month, year = atoi(a), atoi(b), atoi(c)
	case OrderMDY:
		month, day, year = atoi(a), atoi(b), atoi(c)
	case OrderYMD:
		year, month, day = atoi(a), atoi(b), atoi(c)
	default:
		return Instant{}, false
	}
	return withDate(ref, year+yearBase, month, day)
}

// withDate replaces the date of ref, keeping its time of day. Invalid dates
// for the reference calendar do not match.
func withDate(ref Instant, year, month, day int) (Instant, bool) {
	result, err := ref.WithDate(year, month, day)
	if err != nil {
		return Instant{}, false
	}
	return result, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
