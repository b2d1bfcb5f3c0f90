package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRangeKeywords(t *testing.T) {
	cases := []struct {
		locale     string
		input      string
		start, end Instant
	}{
		{"en", "lw", gregorianUTC(2020, 1, 6, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 13, 0, 0, 0))},
		{"en", "Last Week", gregorianUTC(2020, 1, 6, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 13, 0, 0, 0))},
		{"en", "this week", gregorianUTC(2020, 1, 13, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 20, 0, 0, 0))},
		{"en", "today", gregorianUTC(2020, 1, 15, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 16, 0, 0, 0))},
		{"en", "lm", gregorianUTC(2019, 12, 1, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 1, 0, 0, 0))},
		{"en", "next month", gregorianUTC(2020, 2, 1, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 3, 1, 0, 0, 0))},
		{"en", "ny", gregorianUTC(2021, 1, 1, 0, 0, 0), lastNanoBefore(gregorianUTC(2022, 1, 1, 0, 0, 0))},
		{"de", "letzte Woche", gregorianUTC(2020, 1, 6, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 13, 0, 0, 0))},
		{"de", "dj", gregorianUTC(2020, 1, 1, 0, 0, 0), lastNanoBefore(gregorianUTC(2021, 1, 1, 0, 0, 0))},
		{"es", "semana pasada", gregorianUTC(2020, 1, 6, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 13, 0, 0, 0))},
		{"fa", "این هفته", gregorianUTC(2020, 1, 11, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 18, 0, 0, 0))},
		{"fa", "این ماه", gregorianUTC(2019, 12, 22, 0, 0, 0), lastNanoBefore(gregorianUTC(2020, 1, 21, 0, 0, 0))},
	}

	for _, tc := range cases {
		t.Run(tc.locale+"/"+tc.input, func(t *testing.T) {
			p := newTestParser(t, tc.locale)
			got := p.ParseRange(tc.input, testRef())
			want := NewRange(tc.start, tc.end)
			if !got.Equal(want) {
				t.Fatalf("ParseRange(%q) = %s, want %s", tc.input, got, want)
			}
		})
	}
}

func TestParseRangeSplits(t *testing.T) {
	p := newTestParser(t, "en")
	ref := testRef()

	cases := []struct {
		input      string
		start, end Instant
	}{
		{"1/2/2020 – 1/5/2020", gregorianUTC(2020, 1, 2, 10, 30, 0), gregorianUTC(2020, 1, 5, 10, 30, 0)},
		{"1/2/2020 - 1/5/2020", gregorianUTC(2020, 1, 2, 10, 30, 0), gregorianUTC(2020, 1, 5, 10, 30, 0)},
		{"1/2/2020-1/5/2020", gregorianUTC(2020, 1, 2, 10, 30, 0), gregorianUTC(2020, 1, 5, 10, 30, 0)},
		{"1/5/2020~1/2/2020", gregorianUTC(2020, 1, 2, 10, 30, 0), gregorianUTC(2020, 1, 5, 10, 30, 0)},
		{"-1 +1", gregorianUTC(2020, 1, 14, 10, 30, 0), gregorianUTC(2020, 1, 16, 10, 30, 0)},
		{"-1-+1", gregorianUTC(2020, 1, 14, 10, 30, 0), gregorianUTC(2020, 1, 16, 10, 30, 0)},
		{"0203", gregorianUTC(2020, 2, 3, 10, 30, 0), Instant{}},
		{"– 20", Instant{}, gregorianUTC(2020, 1, 20, 10, 30, 0)},
		{"20 –", gregorianUTC(2020, 1, 20, 10, 30, 0), Instant{}},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := p.ParseRange(tc.input, ref)
			want := NewRange(tc.start, tc.end)
			if !got.Equal(want) {
				t.Fatalf("ParseRange(%q) = %s, want %s", tc.input, got, want)
			}
		})
	}

	assert.True(t, p.ParseRange("", ref).IsInfinite())
	assert.True(t, p.ParseRange("  ", ref).IsInfinite())
	assert.True(t, p.ParseRange("nonsense", ref).IsInfinite())
}

func TestParseRangeRoundTripsFormat(t *testing.T) {
	for _, locale := range []string{"en", "de", "es", "fa"} {
		t.Run(locale, func(t *testing.T) {
			p := newTestParser(t, locale)
			r := NewRange(gregorianUTC(2020, 1, 6, 9, 0, 0), gregorianUTC(2020, 2, 12, 17, 45, 30))
			text := r.Format(p.Formatter())
			got := p.ParseRange(text, testRef())
			require.True(t, got.Equal(r), "%q parsed as %s", text, got)
		})
	}
}

func TestParseRangeCanonical(t *testing.T) {
	p := newTestParser(t, "en")

	got := p.ParseRange("2020-01-15~2020-01-20", testRef())
	want := NewRange(gregorianUTC(2020, 1, 15, 0, 0, 0), gregorianUTC(2020, 1, 20, 0, 0, 0))
	require.True(t, got.Equal(want), "got %s", got)

	week := p.ParseRange("lw", testRef())
	back := p.ParseRange(week.CanonicalString(), testRef())
	require.True(t, back.Equal(week), "%s parsed as %s", week.CanonicalString(), back)

	open := p.ParseRange("2020-01-15T08:00:00Z~", testRef())
	start, ok := open.Start()
	require.True(t, ok)
	assert.True(t, start.Equal(gregorianUTC(2020, 1, 15, 8, 0, 0)))
	_, ok = open.End()
	assert.False(t, ok)

	// non ISO sides keep the regular separator handling
	assert.True(t, p.ParseRange("1/5/2020~1/2/2020", testRef()).Equal(
		NewRange(gregorianUTC(2020, 1, 2, 10, 30, 0), gregorianUTC(2020, 1, 5, 10, 30, 0))))
}
