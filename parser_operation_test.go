package datetime

import (
	"testing"
)

func TestOperationParser(t *testing.T) {
	cases := []struct {
		locale string
		input  string
		want   Instant
		ok     bool
	}{
		{"en", "+7d", gregorianUTC(2020, 1, 22, 10, 30, 0), true},
		{"en", "+7", gregorianUTC(2020, 1, 22, 10, 30, 0), true},
		{"en", "-7", gregorianUTC(2020, 1, 8, 10, 30, 0), true},
		{"en", "-2w", gregorianUTC(2020, 1, 1, 10, 30, 0), true},
		{"en", "+1 year", gregorianUTC(2021, 1, 15, 10, 30, 0), true},
		{"en", "+2 Days", gregorianUTC(2020, 1, 17, 10, 30, 0), true},
		{"en", "+1m", gregorianUTC(2020, 2, 15, 10, 30, 0), true},
		{"en", "+5min", gregorianUTC(2020, 1, 15, 10, 35, 0), true},
		{"en", "-3h", gregorianUTC(2020, 1, 15, 7, 30, 0), true},
		{"en", "+30s", gregorianUTC(2020, 1, 15, 10, 30, 30), true},
		{"en", "+1yr", gregorianUTC(2021, 1, 15, 10, 30, 0), true},
		{"de", "+2woche", gregorianUTC(2020, 1, 29, 10, 30, 0), true},
		{"de", "+2 Wochen", gregorianUTC(2020, 1, 29, 10, 30, 0), true},
		{"de", "-1 Std.", gregorianUTC(2020, 1, 15, 9, 30, 0), true},
		{"de", "+3d", gregorianUTC(2020, 1, 18, 10, 30, 0), true},
		{"es", "+1 semana", gregorianUTC(2020, 1, 22, 10, 30, 0), true},
		{"es", "-2 meses", gregorianUTC(2019, 11, 15, 10, 30, 0), true},
		{"en", "7", Instant{}, false},
		{"en", "+", Instant{}, false},
		{"en", "-d", Instant{}, false},
		{"en", "+3xyz", Instant{}, false},
		{"en", "+99999999999", Instant{}, false},
		{"en", "+-3", Instant{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.locale+"/"+tc.input, func(t *testing.T) {
			p := newOperationParser(newTestFacts(t, tc.locale))
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

func TestOperationParserClampsMonths(t *testing.T) {
	p := newOperationParser(newTestFacts(t, "en"))
	got, ok := p.Parse("+1m", gregorianUTC(2020, 1, 31, 0, 0, 0))
	if !ok {
		t.Fatal("expected match")
	}
	if want := gregorianUTC(2020, 2, 29, 0, 0, 0); !got.Equal(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}
