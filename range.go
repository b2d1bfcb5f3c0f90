package datetime

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// CanonicalSeparator joins the two sides of a canonical range string.
const CanonicalSeparator = "~"

// Range is an immutable pair of optional bounds with start <= end. A zero
// Instant marks an absent bound; with both absent the range is infinite.
type Range struct {
	start Instant
	end   Instant
}

// NewRange builds a range, swapping the bounds when end precedes start.
func NewRange(start, end Instant) Range {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		start, end = end, start
	}
	return Range{start: start, end: end}
}

func (r Range) Start() (Instant, bool) { return r.start, !r.start.IsZero() }
func (r Range) End() (Instant, bool)   { return r.end, !r.end.IsZero() }
func (r Range) IsInfinite() bool       { return r.start.IsZero() && r.end.IsZero() }

// Includes reports whether x lies within the range, bounds included.
func (r Range) Includes(x Instant) bool {
	if !r.start.IsZero() && x.Before(r.start) {
		return false
	}
	if !r.end.IsZero() && x.After(r.end) {
		return false
	}
	return true
}

// Equal compares both bounds; two absent bounds are equal.
func (r Range) Equal(other Range) bool {
	return boundEqual(r.start, other.start) && boundEqual(r.end, other.end)
}

func boundEqual(a, b Instant) bool {
	if a.IsZero() || b.IsZero() {
		return a.IsZero() == b.IsZero()
	}
	return a.Equal(b)
}

// Duration is end - start, false when a bound is absent.
func (r Range) Duration() (TimeSpan, bool) {
	if r.start.IsZero() || r.end.IsZero() {
		return TimeSpan{}, false
	}
	return Between(r.start, r.end), true
}

// Format renders the range for display. A half open range carries the
// locale's connector on its open side ("1/6/2020 –", "– 1/12/2020").
func (r Range) Format(f *Formatter) string {
	switch {
	case r.IsInfinite():
		return ""
	case r.end.IsZero():
		return f.formatBound(r.start, false) + strings.TrimRightFunc(f.Until(), unicode.IsSpace)
	case r.start.IsZero():
		return strings.TrimLeftFunc(f.Until(), unicode.IsSpace) + f.formatBound(r.end, true)
	default:
		return f.FormatRange(r.start, r.end)
	}
}

// CanonicalString is the locale independent form "start~end" with RFC 3339
// sides; absent bounds are empty.
func (r Range) CanonicalString() string {
	return canonicalBound(r.start) + CanonicalSeparator + canonicalBound(r.end)
}

func (r Range) String() string { return r.CanonicalString() }

func canonicalBound(i Instant) string {
	if i.IsZero() {
		return ""
	}
	return i.Time().Format(time.RFC3339Nano)
}

// ParseCanonicalRange decodes CanonicalString output. Bounds are bound to cal.
func ParseCanonicalRange(s string, cal Calendar) (Range, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), CanonicalSeparator)
	if !ok {
		return Range{}, fmt.Errorf("%w: missing %q in %q", ErrMalformedRange, CanonicalSeparator, s)
	}

	start, err := parseCanonicalBound(left, cal)
	if err != nil {
		return Range{}, err
	}
	end, err := parseCanonicalBound(right, cal)
	if err != nil {
		return Range{}, err
	}
	return NewRange(start, end), nil
}

func parseCanonicalBound(s string, cal Calendar) (Instant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Instant{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Instant{}, fmt.Errorf("%w: %v", ErrMalformedRange, err)
	}
	return NewInstant(t, cal), nil
}
