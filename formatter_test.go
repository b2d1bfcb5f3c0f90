package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterFormat(t *testing.T) {
	x := gregorianUTC(2020, 9, 2, 12, 30, 45)

	cases := []struct {
		locale   string
		full     string
		date     string
		time     string
		dayMonth string
	}{
		{"en", "9/2/2020, 12:30:45", "9/2/2020", "12:30:45", "9/2"},
		{"en-GB", "02/09/2020, 12:30:45", "02/09/2020", "12:30:45", "02/09"},
		{"de", "2.9.2020, 12:30:45", "2.9.2020", "12:30:45", "2.9."},
		{"es", "2/9/2020, 12:30:45", "2/9/2020", "12:30:45", "2/9"},
		{"fa", "1399/6/12، 12:30:45", "1399/6/12", "12:30:45", "6/12"},
	}

	for _, tc := range cases {
		t.Run(tc.locale, func(t *testing.T) {
			f := newTestParser(t, tc.locale).Formatter()
			assert.Equal(t, tc.full, f.Format(x))
			assert.Equal(t, tc.date, f.FormatDate(x))
			assert.Equal(t, tc.time, f.FormatTime(x))
			assert.Equal(t, tc.dayMonth, f.FormatDayMonth(x))
		})
	}
}

func TestFormatterUsesFactsZone(t *testing.T) {
	f := newTestParser(t, "en", WithTimeZone("Asia/Tokyo")).Formatter()
	// 20:00 UTC is 05:00 the next day in Tokyo
	assert.Equal(t, "1/16/2020, 05:00:00", f.Format(gregorianUTC(2020, 1, 15, 20, 0, 0)))
}

func TestFormatterToParts(t *testing.T) {
	f := newTestParser(t, "de").Formatter()
	parts := f.FormatToParts(gregorianUTC(2020, 9, 2, 7, 5, 0))

	var types []PartType
	for _, p := range parts {
		types = append(types, p.Type)
		assert.Equal(t, SourceNone, p.Source)
	}
	assert.Equal(t, []PartType{
		PartDay, PartLiteral, PartMonth, PartLiteral, PartYear,
		PartLiteral,
		PartHour, PartLiteral, PartMinute, PartLiteral, PartSecond,
	}, types)
	assert.Equal(t, "2.9.2020, 07:05:00", JoinParts(parts))
}

func TestFormatterRangeParts(t *testing.T) {
	f := newTestParser(t, "en").Formatter()
	start := gregorianUTC(2020, 1, 6, 0, 0, 0)
	end := gregorianUTC(2020, 1, 12, 0, 0, 0).EndOfDay()

	parts := f.FormatRangeToParts(start, end)
	require.NotEmpty(t, parts)
	assert.Equal(t, "1/6/2020 – 1/12/2020", JoinParts(parts))
	assert.Equal(t, SourceStartRange, parts[0].Source)
	assert.Equal(t, SourceEndRange, parts[len(parts)-1].Source)

	var shared string
	for _, p := range parts {
		if p.Source == SourceShared {
			shared += p.Value
		}
	}
	assert.Equal(t, f.Until(), shared)

	same := f.FormatRangeToParts(start, start)
	for _, p := range same {
		assert.Equal(t, SourceShared, p.Source)
	}
	assert.Equal(t, "1/6/2020", JoinParts(same))

	withTime := f.FormatRange(gregorianUTC(2020, 1, 6, 9, 0, 0), gregorianUTC(2020, 1, 6, 17, 0, 0))
	assert.Equal(t, "1/6/2020, 09:00:00 – 1/6/2020, 17:00:00", withTime)
}

func TestFormatRelative(t *testing.T) {
	cases := []struct {
		locale string
		value  int64
		unit   Unit
		want   string
	}{
		{"en", 3, UnitDay, "in 3 days"},
		{"en", 1, UnitDay, "in 1 day"},
		{"en", -1, UnitYear, "1 year ago"},
		{"en", -2, UnitYear, "2 years ago"},
		{"en", 0, UnitSecond, "in 0 seconds"},
		{"en-GB", 2, UnitWeek, "in 2 weeks"},
		{"de", -2, UnitDay, "vor 2 Tagen"},
		{"de", 1, UnitMonth, "in 1 Monat"},
		{"es", 5, UnitMonth, "dentro de 5 meses"},
		{"es", -1, UnitDay, "hace 1 día"},
	}

	for _, tc := range cases {
		t.Run(tc.locale+"/"+tc.want, func(t *testing.T) {
			f := newTestParser(t, tc.locale).Formatter()
			assert.Equal(t, tc.want, f.FormatRelative(tc.value, tc.unit))
		})
	}
}

func TestFormatRelativeWithoutPhrase(t *testing.T) {
	f := newTestParser(t, "en").Formatter()
	assert.Equal(t, "250 millisecond", f.FormatRelative(250, UnitMillisecond))
}

func TestNewFormatterRequiresFacts(t *testing.T) {
	_, err := NewFormatter(nil)
	assert.Error(t, err)
}
