package datetime

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Formatter renders instants, ranges and spans for one locale.
// It is safe for concurrent use.
type Formatter struct {
	facts   *LocaleFacts
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter builds a formatter over facts. Relative time phrases are
// compiled into an x/text catalog keyed by unit and direction.
func NewFormatter(facts *LocaleFacts) (*Formatter, error) {
	if facts == nil {
		return nil, errors.New("datetime: formatter requires locale facts")
	}

	tag, err := language.Parse(facts.bundle.Locale)
	if err != nil {
		return nil, configError(facts.Locale, err, "bundle tag")
	}

	builder := catalog.NewBuilder(catalog.Fallback(tag))
	for unit, patterns := range facts.bundle.Relative {
		if err := setRelative(builder, tag, relativeKey(unit, true), patterns.Future); err != nil {
			return nil, configError(facts.Locale, err, "relative pattern %s", unit)
		}
		if err := setRelative(builder, tag, relativeKey(unit, false), patterns.Past); err != nil {
			return nil, configError(facts.Locale, err, "relative pattern %s", unit)
		}
	}

	return &Formatter{
		facts:   facts,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

func relativeKey(unit Unit, future bool) string {
	if future {
		return "relative." + unit.String() + ".future"
	}
	return "relative." + unit.String() + ".past"
}

func setRelative(builder *catalog.Builder, tag language.Tag, key string, patterns pluralPatterns) error {
	categories := patterns.Categories()
	if len(categories) == 0 {
		return nil
	}

	cases := make([]any, 0, 2*len(categories))
	for _, category := range categories {
		pattern, _ := patterns.Pattern(category)
		cases = append(cases, string(category), toPrintf(pattern))
	}
	return builder.Set(tag, key, plural.Selectf(1, "%d", cases...))
}

// toPrintf turns a CLDR {0} pattern into a printf format.
func toPrintf(pattern string) string {
	return strings.ReplaceAll(strings.ReplaceAll(pattern, "%", "%%"), "{0}", "%[1]d")
}

// Facts returns the locale facts the formatter was built with.
func (f *Formatter) Facts() *LocaleFacts { return f.facts }

// Until is the locale's range connector, e.g. " – ".
func (f *Formatter) Until() string { return f.facts.Until }

// localize expresses i in the formatter's calendar and zone.
func (f *Formatter) localize(i Instant) Fields {
	return i.In(f.facts.Calendar).InLocation(f.facts.Location).Fields()
}

// FormatToParts renders date and time.
func (f *Formatter) FormatToParts(i Instant) []Part {
	fields := f.localize(i)
	return applyGlue(f.facts.bundle.DateTimePattern, f.facts.timePattern.format(fields), f.facts.datePattern.format(fields), SourceNone)
}

func (f *Formatter) Format(i Instant) string { return JoinParts(f.FormatToParts(i)) }

func (f *Formatter) FormatDate(i Instant) string {
	return JoinParts(f.facts.datePattern.format(f.localize(i)))
}

func (f *Formatter) FormatTime(i Instant) string {
	return JoinParts(f.facts.timePattern.format(f.localize(i)))
}

// FormatDayMonth renders the yearless short date.
func (f *Formatter) FormatDayMonth(i Instant) string {
	return JoinParts(f.facts.dayMonthPattern.format(f.localize(i)))
}

// FormatRangeToParts renders start and end joined by the interval pattern.
// Parts are tagged startRange, shared or endRange.
func (f *Formatter) FormatRangeToParts(start, end Instant) []Part {
	render := f.FormatToParts
	if atDayBoundary(start.In(f.facts.Calendar).InLocation(f.facts.Location), false) &&
		atDayBoundary(end.In(f.facts.Calendar).InLocation(f.facts.Location), true) {
		render = f.dateParts
	}
	return rangeParts(f.facts.bundle.IntervalFallback, render(start), render(end))
}

func (f *Formatter) FormatRange(start, end Instant) string {
	return JoinParts(f.FormatRangeToParts(start, end))
}

func (f *Formatter) dateParts(i Instant) []Part {
	return f.facts.datePattern.format(f.localize(i))
}

// formatBound renders a single range bound, dropping the time at day boundaries.
func (f *Formatter) formatBound(i Instant, end bool) string {
	if atDayBoundary(i.In(f.facts.Calendar).InLocation(f.facts.Location), end) {
		return f.FormatDate(i)
	}
	return f.Format(i)
}

// atDayBoundary reports whether i sits on midnight, or on the last instant
// of its day when end is set.
func atDayBoundary(i Instant, end bool) bool {
	if i.Equal(i.StartOfDay()) {
		return true
	}
	return end && i.Equal(i.EndOfDay())
}

// FormatRelative renders value units as a relative phrase ("in 3 days",
// "2 years ago"). Zero counts as future.
func (f *Formatter) FormatRelative(value int64, unit Unit) string {
	if value < 0 {
		return f.formatRelative(-value, unit, true)
	}
	return f.formatRelative(value, unit, false)
}

// formatRelative takes the direction separately so a magnitude truncated to
// zero keeps its sign ("0 seconds ago").
func (f *Formatter) formatRelative(magnitude int64, unit Unit, past bool) string {
	if _, ok := f.facts.bundle.Relative[unit]; !ok {
		if past {
			return fmt.Sprintf("-%d %s", magnitude, unit)
		}
		return fmt.Sprintf("%d %s", magnitude, unit)
	}
	return f.printer.Sprintf(relativeKey(unit, !past), magnitude)
}

// FormatSpan is a shorthand for span.Format(f).
func (f *Formatter) FormatSpan(span TimeSpan) string { return span.Format(f) }
