package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// testNow is the reference instant used across the tests: Wednesday 2020-01-15 10:30 UTC.
var testNow = time.Date(2020, time.January, 15, 10, 30, 0, 0, time.UTC)

func testRef() Instant { return NewInstant(testNow, Gregorian) }

func newTestParser(t *testing.T, locale string, opts ...Option) *Parser {
	t.Helper()
	base := []Option{
		WithLocation(time.UTC),
		WithClock(func() time.Time { return testNow }),
	}
	p, err := NewParser(locale, append(base, opts...)...)
	require.NoError(t, err)
	return p
}

func newTestFacts(t *testing.T, locale string, opts ...Option) *LocaleFacts {
	t.Helper()
	f, err := NewFacts(locale, append([]Option{WithLocation(time.UTC)}, opts...)...)
	require.NoError(t, err)
	return f
}

func gregorianUTC(year, month, day, hour, minute, second int) Instant {
	return MustDate(Gregorian, year, month, day, hour, minute, second, time.UTC)
}

func lastNanoBefore(i Instant) Instant {
	return NewInstant(i.Time().Add(-time.Nanosecond), i.Calendar())
}

func mustTag(s string) language.Tag { return language.MustParse(s) }
