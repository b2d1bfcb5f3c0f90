package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcutParser(t *testing.T) {
	cases := []struct {
		locale string
		input  string
		want   Instant
		ok     bool
	}{
		{"en", "15", gregorianUTC(2020, 1, 15, 10, 30, 0), true},
		{"en", "5", gregorianUTC(2020, 1, 5, 10, 30, 0), true},
		{"en", " 0 5 ", gregorianUTC(2020, 1, 5, 10, 30, 0), true},
		{"en", "32", gregorianUTC(2020, 3, 2, 10, 30, 0), true},
		{"de", "32", gregorianUTC(2020, 2, 3, 10, 30, 0), true},
		{"en", "0203", gregorianUTC(2020, 2, 3, 10, 30, 0), true},
		{"de", "0203", gregorianUTC(2020, 3, 2, 10, 30, 0), true},
		{"en", "123", gregorianUTC(2020, 12, 3, 10, 30, 0), true},
		{"en", "131", gregorianUTC(2020, 1, 31, 10, 30, 0), true},
		{"en", "021520", gregorianUTC(2020, 2, 15, 10, 30, 0), true},
		{"de", "150399", gregorianUTC(2099, 3, 15, 10, 30, 0), true},
		{"en", "02152021", gregorianUTC(2021, 2, 15, 10, 30, 0), true},
		{"de", "15032020", gregorianUTC(2020, 3, 15, 10, 30, 0), true},
		{"en", "0230", Instant{}, false},
		{"en", "99", gregorianUTC(2020, 9, 9, 10, 30, 0), true},
		{"en", "00", Instant{}, false},
		{"en", "1234567", Instant{}, false},
		{"en", "123456789", Instant{}, false},
		{"en", "12a", Instant{}, false},
		{"en", "", Instant{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.locale+"/"+tc.input, func(t *testing.T) {
			p := newShortcutParser(newTestFacts(t, tc.locale))
			got, ok := p.Parse(tc.input, testRef())
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v (got %s)", tc.input, ok, tc.ok, got)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestShortcutParserPersianMonthLengths(t *testing.T) {
	p := newShortcutParser(newTestFacts(t, "fa"))
	ref := testRef().In(Persian)

	got, ok := p.Parse("13991230", ref)
	require.True(t, ok, "Esfand 30 exists in 1399")
	assert.Equal(t, Fields{Year: 1399, Month: 12, Day: 30, Hour: 10, Minute: 30}, got.Fields())
	assert.True(t, got.Equal(gregorianUTC(2021, 3, 20, 10, 30, 0)))

	_, ok = p.Parse("13981230", ref)
	assert.False(t, ok, "Esfand 30 does not exist in 1398")

	_, ok = p.Parse("1231", ref)
	assert.False(t, ok, "month 12 has 29 days in 1398")

	_, ok = p.Parse("0731", ref)
	assert.False(t, ok, "Mehr has 30 days")

	got, ok = p.Parse("0131", ref)
	require.True(t, ok)
	assert.Equal(t, 1398, got.Year())
}

func TestShortcutParserDeterministic(t *testing.T) {
	p := newShortcutParser(newTestFacts(t, "en"))
	first, ok := p.Parse("032", testRef())
	require.True(t, ok)
	for i := 0; i < 10; i++ {
		again, ok := p.Parse("032", testRef())
		require.True(t, ok)
		assert.True(t, first.Equal(again))
	}
}
