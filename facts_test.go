package datetime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactsPerLocale(t *testing.T) {
	cases := []struct {
		locale   string
		bundle   string
		order    DateOrder
		dayMonth DayMonthOrder
		dateSep  string
		calendar CalendarID
		first    time.Weekday
		until    string
	}{
		{"en", "en", OrderMDY, OrderMD, "/", CalendarGregorian, time.Monday, " – "},
		{"en-US", "en", OrderMDY, OrderMD, "/", CalendarGregorian, time.Monday, " – "},
		{"en_GB", "en-GB", OrderDMY, OrderDM, "/", CalendarGregorian, time.Monday, " – "},
		{"de-AT", "de", OrderDMY, OrderDM, ".", CalendarGregorian, time.Monday, " – "},
		{"es", "es", OrderDMY, OrderDM, "/", CalendarGregorian, time.Monday, "–"},
		{"fa", "fa", OrderYMD, OrderMD, "/", CalendarPersian, time.Saturday, " تا "},
	}

	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			f := newTestFacts(t, tc.locale)
			assert.Equal(t, tc.bundle, f.Locale)
			assert.Equal(t, tc.order, f.DateOrder)
			assert.Equal(t, tc.dayMonth, f.DayMonthOrder)
			assert.Equal(t, tc.dateSep, f.DateSeparator)
			assert.Equal(t, ":", f.TimeSeparator)
			assert.Equal(t, tc.calendar, f.Calendar.ID())
			assert.Equal(t, tc.first, f.FirstWeekday)
			assert.Equal(t, tc.until, f.Until)
			assert.Equal(t, "UTC", f.TimeZone)
		})
	}
}

func TestNewFactsCalendarPrecedence(t *testing.T) {
	f := newTestFacts(t, "en-u-ca-persian")
	assert.Equal(t, CalendarPersian, f.Calendar.ID())
	assert.Equal(t, "en", f.Locale)

	f = newTestFacts(t, "fa", WithCalendar("gregory"))
	assert.Equal(t, CalendarGregorian, f.Calendar.ID())

	_, err := NewFacts("en", WithCalendar("hebrew"))
	assert.ErrorIs(t, err, ErrUnsupportedCalendar)

	_, err = NewFacts("en-u-ca-hebrew", WithLocation(time.UTC))
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.ErrorIs(t, err, ErrUnsupportedCalendar)
}

func TestNewFactsUnsupportedLocale(t *testing.T) {
	_, err := NewFacts("ja", WithLocation(time.UTC))
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	assert.Equal(t, "ja", cfgErr.Locale)
	assert.ErrorIs(t, err, ErrUnsupportedLocale)

	_, err = NewFacts("!!", WithLocation(time.UTC))
	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestNewFactsFallback(t *testing.T) {
	f := newTestFacts(t, "pt-BR", WithFallback("pt", "es"))
	assert.Equal(t, "es", f.Locale)
	assert.Equal(t, OrderDMY, f.DateOrder)
}

func TestNewFactsCached(t *testing.T) {
	a := newTestFacts(t, "de")
	b := newTestFacts(t, "de")
	assert.Same(t, a, b)

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	c := newTestFacts(t, "de", WithLocation(berlin))
	assert.NotSame(t, a, c)
	assert.Equal(t, "Europe/Berlin", c.TimeZone)
}

func TestBuildFactsRejectsUnsupportedOrder(t *testing.T) {
	bundle, ok := lookupBundle("en")
	require.True(t, ok)

	bundle.DatePattern = "y/d/M"
	_, err := buildFacts(bundle, mustTag("en"), Gregorian, time.UTC)
	assert.ErrorIs(t, err, ErrUnsupportedFieldOrder)

	bundle.DatePattern = "M//d//y"
	_, err = buildFacts(bundle, mustTag("en"), Gregorian, time.UTC)
	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr), "multi character separators are rejected")
}

func TestSupportedLocales(t *testing.T) {
	assert.Equal(t, []string{"de", "en", "en-GB", "es", "fa"}, SupportedLocales())

	gb, ok := lookupBundle("en-GB")
	require.True(t, ok)
	assert.Equal(t, "{1}, {0}", gb.DateTimePattern, "inherited from en")
	assert.NotEmpty(t, gb.Units)
}
