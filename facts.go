package datetime

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"
)

// FieldKind is a numeric date field.
type FieldKind int

const (
	FieldYear FieldKind = iota
	FieldMonth
	FieldDay
)

func (k FieldKind) String() string {
	switch k {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	default:
		return "unknown"
	}
}

// DateOrder is the order of year, month and day in a short numeric date.
// Only the three orders used by real locales are representable.
type DateOrder int

const (
	OrderDMY DateOrder = iota
	OrderMDY
	OrderYMD
)

func (o DateOrder) String() string {
	switch o {
	case OrderDMY:
		return "DMY"
	case OrderMDY:
		return "MDY"
	case OrderYMD:
		return "YMD"
	default:
		return "unknown"
	}
}

// Fields returns the field kinds in order.
func (o DateOrder) Fields() []FieldKind {
	switch o {
	case OrderDMY:
		return []FieldKind{FieldDay, FieldMonth, FieldYear}
	case OrderMDY:
		return []FieldKind{FieldMonth, FieldDay, FieldYear}
	case OrderYMD:
		return []FieldKind{FieldYear, FieldMonth, FieldDay}
	default:
		return nil
	}
}

// YearFirst reports whether the year precedes the day.
func (o DateOrder) YearFirst() bool { return o == OrderYMD }

// DayMonthOrder is the order of day and month in a yearless date.
type DayMonthOrder int

const (
	OrderDM DayMonthOrder = iota
	OrderMD
)

func (o DayMonthOrder) String() string {
	if o == OrderMD {
		return "MD"
	}
	return "DM"
}

func (o DayMonthOrder) Fields() []FieldKind {
	if o == OrderMD {
		return []FieldKind{FieldMonth, FieldDay}
	}
	return []FieldKind{FieldDay, FieldMonth}
}

// LocaleFacts is everything the parsers and formatter know about a locale.
// Values are immutable once built and shared between parsers.
type LocaleFacts struct {
	Locale        string
	Tag           language.Tag
	DateOrder     DateOrder
	DayMonthOrder DayMonthOrder
	DateSeparator string
	TimeSeparator string
	Calendar      Calendar
	Location      *time.Location
	TimeZone      string
	FirstWeekday  time.Weekday
	Until         string

	bundle          localeBundle
	datePattern     compiledPattern
	dayMonthPattern compiledPattern
	timePattern     compiledPattern
	units           UnitSuffixTable
}

// Units returns the locale's unit suffix table.
func (f *LocaleFacts) Units() UnitSuffixTable { return f.units }

// Reference values used to probe locale patterns. Every field is distinct and
// unambiguous so the rendered parts identify their field.
var (
	factsProbe      = Fields{Year: 1999, Month: 11, Day: 22, Hour: 13, Minute: 44, Second: 55}
	untilProbeStart = Fields{Year: 2000, Month: 1, Day: 1}
	untilProbeEnd   = Fields{Year: 2020, Month: 1, Day: 1}
)

var factsCache = struct {
	mu      sync.RWMutex
	entries map[string]*LocaleFacts
	group   singleflight.Group
}{entries: make(map[string]*LocaleFacts)}

// NewFacts derives the facts for locale. Results are cached per resolved
// locale, calendar and time zone.
func NewFacts(locale string, opts ...Option) (*LocaleFacts, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return factsFor(locale, cfg)
}

func factsFor(locale string, cfg *config) (*LocaleFacts, error) {
	bundle, tag, err := resolveBundle(locale, cfg.resolver)
	if err != nil {
		return nil, err
	}

	cal, err := resolveCalendar(locale, tag, bundle, cfg.calendar)
	if err != nil {
		return nil, err
	}

	key := strings.Join([]string{bundle.Locale, tag.String(), string(cal.ID()), cfg.location.String()}, "|")

	factsCache.mu.RLock()
	cached, ok := factsCache.entries[key]
	factsCache.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := factsCache.group.Do(key, func() (any, error) {
		factsCache.mu.RLock()
		existing, ok := factsCache.entries[key]
		factsCache.mu.RUnlock()
		if ok {
			return existing, nil
		}

		facts, err := buildFacts(bundle, tag, cal, cfg.location)
		if err != nil {
			return nil, err
		}

		factsCache.mu.Lock()
		factsCache.entries[key] = facts
		factsCache.mu.Unlock()

		cfg.logger.Debug("datetime: locale facts built",
			"locale", facts.Locale,
			"calendar", string(cal.ID()),
			"zone", facts.TimeZone,
			"order", facts.DateOrder.String(),
		)
		return facts, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*LocaleFacts), nil
}

func resolveBundle(locale string, fallbacks FallbackResolver) (localeBundle, language.Tag, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		normalized = DefaultLocale
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return localeBundle{}, language.Und, configError(locale, errors.Join(ErrUnsupportedLocale, err), "parse tag")
	}

	for _, candidate := range localeCandidates(tag, fallbacks) {
		if bundle, ok := lookupBundle(candidate); ok {
			return bundle, tag, nil
		}
	}
	return localeBundle{}, tag, configError(locale, ErrUnsupportedLocale, "no bundle for %s", baseLocale(tag))
}

func resolveCalendar(locale string, tag language.Tag, bundle localeBundle, override Calendar) (Calendar, error) {
	if override != nil {
		return override, nil
	}
	if ca := tag.TypeForKey("ca"); ca != "" {
		cal, ok := CalendarByID(ca)
		if !ok {
			return nil, configError(locale, ErrUnsupportedCalendar, "calendar %q", ca)
		}
		return cal, nil
	}
	if bundle.Calendar != "" {
		cal, ok := CalendarByID(string(bundle.Calendar))
		if !ok {
			return nil, configError(locale, ErrUnsupportedCalendar, "calendar %q", bundle.Calendar)
		}
		return cal, nil
	}
	return Gregorian, nil
}

func buildFacts(bundle localeBundle, tag language.Tag, cal Calendar, loc *time.Location) (*LocaleFacts, error) {
	facts := &LocaleFacts{
		Locale:          bundle.Locale,
		Tag:             tag,
		Calendar:        cal,
		Location:        loc,
		TimeZone:        loc.String(),
		FirstWeekday:    bundle.firstWeekday(),
		bundle:          bundle,
		datePattern:     compilePattern(bundle.DatePattern),
		dayMonthPattern: compilePattern(bundle.DayMonthPattern),
		timePattern:     compilePattern(bundle.TimePattern),
	}

	dateParts := facts.datePattern.format(factsProbe)
	order, err := dateOrderOf(dateParts)
	if err != nil {
		return nil, configError(bundle.Locale, err, "date pattern %q", bundle.DatePattern)
	}
	facts.DateOrder = order

	dm, err := dayMonthOrderOf(facts.dayMonthPattern.format(factsProbe))
	if err != nil {
		return nil, configError(bundle.Locale, err, "day-month pattern %q", bundle.DayMonthPattern)
	}
	facts.DayMonthOrder = dm

	sep, err := separatorBetween(dateParts, PartDay, PartMonth, PartYear)
	if err != nil {
		return nil, configError(bundle.Locale, err, "date separator")
	}
	facts.DateSeparator = sep

	sep, err = separatorBetween(facts.timePattern.format(factsProbe), PartHour, PartMinute, PartSecond)
	if err != nil {
		return nil, configError(bundle.Locale, err, "time separator")
	}
	facts.TimeSeparator = sep

	facts.Until = deriveUntil(facts)
	if strings.TrimSpace(facts.Until) == "" {
		return nil, configError(bundle.Locale, nil, "interval pattern %q has no connector", bundle.IntervalFallback)
	}

	facts.units = buildUnitSuffixTable(bundle, tag)
	return facts, nil
}

func fieldKindsOf(parts []Part) []FieldKind {
	var kinds []FieldKind
	for _, p := range parts {
		switch p.Type {
		case PartYear:
			kinds = append(kinds, FieldYear)
		case PartMonth:
			kinds = append(kinds, FieldMonth)
		case PartDay:
			kinds = append(kinds, FieldDay)
		}
	}
	return kinds
}

func dateOrderOf(parts []Part) (DateOrder, error) {
	kinds := fieldKindsOf(parts)
	for _, order := range []DateOrder{OrderDMY, OrderMDY, OrderYMD} {
		if sameKinds(kinds, order.Fields()) {
			return order, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedFieldOrder, kinds)
}

func dayMonthOrderOf(parts []Part) (DayMonthOrder, error) {
	kinds := fieldKindsOf(parts)
	for _, order := range []DayMonthOrder{OrderDM, OrderMD} {
		if sameKinds(kinds, order.Fields()) {
			return order, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedFieldOrder, kinds)
}

func sameKinds(a, b []FieldKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// separatorBetween returns the literal between the first two of the given
// fields. It must be exactly one rune once spaces are trimmed.
func separatorBetween(parts []Part, kinds ...PartType) (string, error) {
	want := make(map[PartType]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}

	seenField := false
	var lit strings.Builder
	for _, p := range parts {
		if want[p.Type] {
			if seenField {
				sep := strings.TrimSpace(lit.String())
				if utf8.RuneCountInString(sep) != 1 {
					return "", fmt.Errorf("separator %q is not a single character", sep)
				}
				return sep, nil
			}
			seenField = true
			continue
		}
		if seenField && p.Type == PartLiteral {
			lit.WriteString(p.Value)
		}
	}
	return "", errors.New("pattern has fewer than two fields")
}

// deriveUntil formats a two decade reference range and keeps the shared
// literal text between the two dates.
func deriveUntil(f *LocaleFacts) string {
	start := f.datePattern.format(untilProbeStart)
	end := f.datePattern.format(untilProbeEnd)
	parts := rangeParts(f.bundle.IntervalFallback, start, end)

	var b strings.Builder
	for _, p := range parts {
		if p.Source == SourceShared {
			b.WriteString(p.Value)
		}
	}
	return b.String()
}

// rangeParts joins two formatted bounds with the interval pattern. Identical
// bounds collapse into a single shared rendering.
func rangeParts(interval string, start, end []Part) []Part {
	if JoinParts(start) == JoinParts(end) {
		return withSource(start, SourceShared)
	}
	return applyGlue(interval, withSource(start, SourceStartRange), withSource(end, SourceEndRange), SourceShared)
}
