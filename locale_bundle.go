package datetime

import (
	"sort"
	"time"
)

// relativePatterns are the CLDR relativeTime patterns for one field.
type relativePatterns struct {
	Future pluralPatterns
	Past   pluralPatterns
}

// unitPatterns are the CLDR unit patterns for one duration unit.
type unitPatterns struct {
	Long   pluralPatterns
	Short  pluralPatterns
	Narrow pluralPatterns
}

// localeBundle is the slice of CLDR a locale needs for parsing and display.
// Empty fields are inherited from Parent.
type localeBundle struct {
	Locale           string
	Parent           string
	Calendar         CalendarID
	FirstDay         string
	DatePattern      string
	DayMonthPattern  string
	TimePattern      string
	DateTimePattern  string
	IntervalFallback string
	Relative         map[Unit]relativePatterns
	Units            map[Unit]unitPatterns
}

var cldrWeekdays = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// firstWeekday decodes the CLDR firstDay code, defaulting to Monday.
func (b localeBundle) firstWeekday() time.Weekday {
	if day, ok := cldrWeekdays[b.FirstDay]; ok {
		return day
	}
	return time.Monday
}

// merge fills the empty fields of b from parent.
func (b localeBundle) merge(parent localeBundle) localeBundle {
	if b.Calendar == "" {
		b.Calendar = parent.Calendar
	}
	if b.FirstDay == "" {
		b.FirstDay = parent.FirstDay
	}
	if b.DatePattern == "" {
		b.DatePattern = parent.DatePattern
	}
	if b.DayMonthPattern == "" {
		b.DayMonthPattern = parent.DayMonthPattern
	}
	if b.TimePattern == "" {
		b.TimePattern = parent.TimePattern
	}
	if b.DateTimePattern == "" {
		b.DateTimePattern = parent.DateTimePattern
	}
	if b.IntervalFallback == "" {
		b.IntervalFallback = parent.IntervalFallback
	}

	relative := make(map[Unit]relativePatterns, len(parent.Relative))
	for unit, patterns := range parent.Relative {
		relative[unit] = relativePatterns{Future: patterns.Future.clone(), Past: patterns.Past.clone()}
	}
	for unit, patterns := range b.Relative {
		relative[unit] = patterns
	}
	b.Relative = relative

	units := make(map[Unit]unitPatterns, len(parent.Units))
	for unit, patterns := range parent.Units {
		units[unit] = patterns
	}
	for unit, patterns := range b.Units {
		units[unit] = patterns
	}
	b.Units = units

	return b
}

// resolvedBundles holds every generated bundle with its parent chain applied.
var resolvedBundles = resolveBundles(localeBundles)

func resolveBundles(source map[string]localeBundle) map[string]localeBundle {
	out := make(map[string]localeBundle, len(source))
	var resolve func(id string, depth int) localeBundle
	resolve = func(id string, depth int) localeBundle {
		if done, ok := out[id]; ok {
			return done
		}
		bundle := source[id]
		if bundle.Parent != "" && bundle.Parent != id && depth < len(source) {
			if _, ok := source[bundle.Parent]; ok {
				bundle = bundle.merge(resolve(bundle.Parent, depth+1))
			}
		}
		if bundle.FirstDay == "" {
			bundle.FirstDay = "mon"
		}
		if bundle.Calendar == "" {
			bundle.Calendar = CalendarGregorian
		}
		out[id] = bundle
		return bundle
	}
	for id := range source {
		resolve(id, 0)
	}
	return out
}

func lookupBundle(locale string) (localeBundle, bool) {
	bundle, ok := resolvedBundles[locale]
	return bundle, ok
}

// SupportedLocales returns the locales with bundled CLDR data, sorted.
func SupportedLocales() []string {
	locales := make([]string, 0, len(resolvedBundles))
	for locale := range resolvedBundles {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}
