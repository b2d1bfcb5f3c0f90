package datetime

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValidation(t *testing.T) {
	cases := []struct {
		name                   string
		year, month, day, hour int
	}{
		{"month 13", 2020, 13, 1, 0},
		{"february 30", 2020, 2, 30, 0},
		{"day zero", 2020, 1, 0, 0},
		{"hour 24", 2020, 1, 1, 24},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Date(Gregorian, tc.year, tc.month, tc.day, tc.hour, 0, 0, time.UTC)
			if !errors.Is(err, ErrInvalidField) {
				t.Fatalf("expected ErrInvalidField, got %v", err)
			}
		})
	}
}

func TestInstantAdd(t *testing.T) {
	cases := []struct {
		name   string
		from   Instant
		unit   Unit
		amount int
		want   Instant
	}{
		{"days", testRef(), UnitDay, 7, gregorianUTC(2020, 1, 22, 10, 30, 0)},
		{"weeks back", testRef(), UnitWeek, -2, gregorianUTC(2020, 1, 1, 10, 30, 0)},
		{"month clamps", gregorianUTC(2020, 1, 31, 0, 0, 0), UnitMonth, 1, gregorianUTC(2020, 2, 29, 0, 0, 0)},
		{"months across years", testRef(), UnitMonth, -1, gregorianUTC(2019, 12, 15, 10, 30, 0)},
		{"many months", testRef(), UnitMonth, 25, gregorianUTC(2022, 2, 15, 10, 30, 0)},
		{"leap day year", gregorianUTC(2020, 2, 29, 0, 0, 0), UnitYear, 1, gregorianUTC(2021, 2, 28, 0, 0, 0)},
		{"hours", testRef(), UnitHour, 20, gregorianUTC(2020, 1, 16, 6, 30, 0)},
		{"minutes", testRef(), UnitMinute, -31, gregorianUTC(2020, 1, 15, 9, 59, 0)},
		{"seconds", testRef(), UnitSecond, 90, gregorianUTC(2020, 1, 15, 10, 31, 30)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.from.Add(tc.unit, tc.amount)
			if !got.Equal(tc.want) {
				t.Fatalf("Add(%s, %d) = %s, want %s", tc.unit, tc.amount, got, tc.want)
			}
		})
	}
}

func TestInstantBoundaries(t *testing.T) {
	ref := testRef()

	assert.True(t, ref.StartOfDay().Equal(gregorianUTC(2020, 1, 15, 0, 0, 0)))
	assert.True(t, ref.EndOfDay().Equal(lastNanoBefore(gregorianUTC(2020, 1, 16, 0, 0, 0))))
	assert.True(t, ref.StartOfWeek(time.Monday).Equal(gregorianUTC(2020, 1, 13, 0, 0, 0)))
	assert.True(t, ref.StartOfWeek(time.Sunday).Equal(gregorianUTC(2020, 1, 12, 0, 0, 0)))
	assert.True(t, ref.StartOfMonth().Equal(gregorianUTC(2020, 1, 1, 0, 0, 0)))
	assert.True(t, ref.EndOfMonth().Equal(lastNanoBefore(gregorianUTC(2020, 2, 1, 0, 0, 0))))
	assert.True(t, ref.EndOfYear().Equal(lastNanoBefore(gregorianUTC(2021, 1, 1, 0, 0, 0))))
}

func TestInstantInPersian(t *testing.T) {
	p := testRef().In(Persian)
	f := p.Fields()
	assert.Equal(t, 1398, f.Year)
	assert.Equal(t, 10, f.Month)
	assert.Equal(t, 25, f.Day)
	assert.Equal(t, 10, f.Hour)
	assert.True(t, p.Equal(testRef()), "changing calendar keeps the time point")

	start := p.StartOfMonth()
	assert.True(t, start.Equal(gregorianUTC(2019, 12, 22, 0, 0, 0)))

	esfand, err := Date(Persian, 1398, 12, 1, 0, 0, 0, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 29, esfand.DaysInMonth())

	_, err = Date(Persian, 1398, 12, 30, 0, 0, 0, time.UTC)
	assert.ErrorIs(t, err, ErrInvalidField)
}
