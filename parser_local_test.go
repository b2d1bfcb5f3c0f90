package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalParser(t *testing.T) {
	cases := []struct {
		locale string
		input  string
		want   Instant
		ok     bool
	}{
		{"en", "09/02/2020 12:30:45", gregorianUTC(2020, 9, 2, 12, 30, 45), true},
		{"en", "9/2/2020, 12:30:45", gregorianUTC(2020, 9, 2, 12, 30, 45), true},
		{"en", "1/20", gregorianUTC(2020, 1, 20, 10, 30, 0), true},
		{"en", "1/20/2021 8", gregorianUTC(2021, 1, 20, 8, 30, 0), true},
		{"en", "13/01/2020", Instant{}, false},
		{"en", "1/15/2020 25:00", Instant{}, false},
		{"en", "2/30/2020", Instant{}, false},
		{"en", "1/2/20", Instant{}, false},
		{"en", "1/2/2020 14", gregorianUTC(2020, 1, 2, 14, 30, 0), true},
		{"en-GB", "02/03/2020", gregorianUTC(2020, 3, 2, 10, 30, 0), true},
		{"de", "15.1.2020, 13:05:10", gregorianUTC(2020, 1, 15, 13, 5, 10), true},
		{"de", "3.2.", gregorianUTC(2020, 2, 3, 10, 30, 0), true},
		{"de", "3/2/2020", Instant{}, false},
		{"de", "15.1.13", Instant{}, false},
		{"de", "15.1.2020.13", Instant{}, false},
		{"es", "3/2/2020 9:15:00", gregorianUTC(2020, 2, 3, 9, 15, 0), true},
		{"fa", "1398/10/25", gregorianUTC(2020, 1, 15, 10, 30, 0), true},
		{"fa", "1399/6/12، 12:30:45", gregorianUTC(2020, 9, 2, 12, 30, 45), true},
		{"fa", "12/30", Instant{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.locale+"/"+tc.input, func(t *testing.T) {
			facts := newTestFacts(t, tc.locale)
			p, err := newLocalParser(facts)
			require.NoError(t, err)

			got, ok := p.Parse(tc.input, testRef().In(facts.Calendar))
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v (got %s)", tc.input, ok, tc.ok, got)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestLocalDateGroupPerOrder(t *testing.T) {
	ymd, err := localDateGroup(OrderYMD, "/")
	require.NoError(t, err)
	assert.Equal(t, `(?:(?P<year>\d{4})/)?(?P<month>\d{1,2})/(?P<day>\d{1,2})`, ymd)

	dmy, err := localDateGroup(OrderDMY, `\.`)
	require.NoError(t, err)
	assert.Equal(t, `(?P<day>\d{1,2})\.(?P<month>\d{1,2})(?:\.(?P<year>\d{4}))?(?:\.$)?`, dmy)

	_, err = localDateGroup(DateOrder(42), "/")
	assert.ErrorIs(t, err, ErrUnsupportedFieldOrder)
}

func TestLocalTimeGroupExcludesDateSeparator(t *testing.T) {
	assert.Equal(t, `(?:[^\d/]?(?P<hour>\d{1,2})(?::(?P<minute>\d{1,2})(?::(?P<second>\d{1,2}))?)?)?`, localTimeGroup("/", ":"))
}

func TestLocalParserHourKeepsReferenceMinute(t *testing.T) {
	p := newTestParser(t, "en")
	ref := NewInstant(time.Date(2020, 1, 15, 10, 30, 15, 500, time.UTC), Gregorian)

	got, ok := p.Parse("1/2/2020 14", ref)
	require.True(t, ok)
	assert.Equal(t, 14, got.Hour())
	assert.Equal(t, 30, got.Minute())
	assert.Equal(t, 15, got.Second())
	assert.Equal(t, 0, got.Nanosecond())
}

func TestLocalParserUsesReferenceZone(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	p := newTestParser(t, "de", WithLocation(berlin))
	got, ok := p.Parse("15.1.2020, 13:00", Instant{})
	require.True(t, ok)
	assert.Equal(t, "Europe/Berlin", got.Location().String())
	assert.True(t, got.Time().Equal(time.Date(2020, 1, 15, 12, 0, 0, 0, time.UTC)))
}
