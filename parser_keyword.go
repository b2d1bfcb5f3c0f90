package datetime

import (
	"time"

	"golang.org/x/text/cases"
)

// keywordParser resolves single date keywords ("today", "adw") from the
// locale's keyword table.
type keywordParser struct {
	facts    *LocaleFacts
	keywords map[string]KeywordRule
}

func newKeywordParser(facts *LocaleFacts, table *KeywordTable) *keywordParser {
	return &keywordParser{
		facts:    facts,
		keywords: table.forLocales(keywordLocales(facts)...).Single,
	}
}

func (p *keywordParser) Parse(text string, ref Instant) (Instant, bool) {
	rule, ok := p.keywords[normalizeKeyword(cases.Lower(p.facts.Tag).String(text))]
	if !ok {
		return Instant{}, false
	}
	return applySingleRule(rule, ref, p.facts.FirstWeekday)
}

// applySingleRule evaluates rule over ref. Relative days keep the time of
// day; period boundaries land on the start of the boundary day.
func applySingleRule(rule KeywordRule, ref Instant, first time.Weekday) (Instant, bool) {
	switch rule {
	case RuleToday:
		return ref, true
	case RuleTomorrow:
		return ref.Add(UnitDay, 1), true
	case RuleYesterday:
		return ref.Add(UnitDay, -1), true
	case RuleStartOfWeek:
		return ref.StartOfWeek(first), true
	case RuleEndOfWeek:
		return ref.EndOfWeek(first).StartOfDay(), true
	case RuleStartOfMonth:
		return ref.StartOfMonth(), true
	case RuleEndOfMonth:
		return ref.EndOfMonth().StartOfDay(), true
	case RuleStartOfYear:
		return ref.StartOfYear(), true
	case RuleEndOfYear:
		return ref.EndOfYear().StartOfDay(), true
	default:
		return Instant{}, false
	}
}

// applyRangeRule evaluates a range keyword over ref. Ranges cover whole
// periods, ending on the last nanosecond.
func applyRangeRule(rule KeywordRule, ref Instant, first time.Weekday) (Range, bool) {
	day := func(offset int) Range {
		d := ref.Add(UnitDay, offset)
		return NewRange(d.StartOfDay(), d.EndOfDay())
	}
	week := func(offset int) Range {
		d := ref.Add(UnitWeek, offset)
		return NewRange(d.StartOfWeek(first), d.EndOfWeek(first))
	}
	month := func(offset int) Range {
		d := ref.StartOfMonth().Add(UnitMonth, offset)
		return NewRange(d.StartOfMonth(), d.EndOfMonth())
	}
	year := func(offset int) Range {
		d := ref.StartOfYear().Add(UnitYear, offset)
		return NewRange(d.StartOfYear(), d.EndOfYear())
	}

	switch rule {
	case RuleToday:
		return day(0), true
	case RuleYesterday:
		return day(-1), true
	case RuleTomorrow:
		return day(1), true
	case RuleThisWeek:
		return week(0), true
	case RuleLastWeek:
		return week(-1), true
	case RuleNextWeek:
		return week(1), true
	case RuleThisMonth:
		return month(0), true
	case RuleLastMonth:
		return month(-1), true
	case RuleNextMonth:
		return month(1), true
	case RuleThisYear:
		return year(0), true
	case RuleLastYear:
		return year(-1), true
	case RuleNextYear:
		return year(1), true
	default:
		return Range{}, false
	}
}
