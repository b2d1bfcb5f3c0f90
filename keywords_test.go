package datetime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeywordTableIsValid(t *testing.T) {
	table := DefaultKeywordTable()
	require.NotNil(t, table)
	assert.Equal(t, []string{"de", "en", "es", "fa"}, table.Locales())

	for _, locale := range table.Locales() {
		kw := table.forLocales(locale)
		assert.NotEmpty(t, kw.Single, locale)
		assert.NotEmpty(t, kw.Range, locale)
		for keyword, rule := range kw.Single {
			_, ok := applySingleRule(rule, testRef(), 1)
			assert.True(t, ok, "%s/%s", locale, keyword)
		}
		for keyword, rule := range kw.Range {
			r, ok := applyRangeRule(rule, testRef(), 1)
			assert.True(t, ok, "%s/%s", locale, keyword)
			start, hasStart := r.Start()
			end, hasEnd := r.End()
			assert.True(t, hasStart && hasEnd, "%s/%s", locale, keyword)
			assert.False(t, end.Before(start), "%s/%s", locale, keyword)
		}
	}
}

func TestParseKeywordTableValidation(t *testing.T) {
	cases := []struct {
		name string
		file string
		data string
	}{
		{"duplicate after normalization", "k.yaml", "en:\n  single:\n    Today: today\n    today: tomorrow\n"},
		{"unknown rule", "k.yaml", "en:\n  single:\n    soon: next_decade\n"},
		{"range rule in single table", "k.yaml", "en:\n  single:\n    lw: last_week\n"},
		{"empty keyword", "k.json", `{"en": {"range": {" ": "this_week"}}}`},
		{"empty table", "k.yaml", "{}\n"},
		{"broken json", "k.json", `{"en": `},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseKeywordTable(tc.file, []byte(tc.data))
			if err == nil {
				t.Fatalf("expected error")
			}
			assert.ErrorIs(t, err, ErrMalformedKeywords)
		})
	}

	_, err := ParseKeywordTable("k.toml", []byte("x"))
	assert.Error(t, err)
}

func TestLoadKeywordFileAndMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extra.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"en": {"single": {"Day  After": "tomorrow"}, "range": {"fortnight": "next_week"}}}`), 0o644))

	loaded, err := LoadKeywordFile(path)
	require.NoError(t, err)

	merged := DefaultKeywordTable().Merge(loaded)
	kw := merged.forLocales("en")
	assert.Equal(t, RuleTomorrow, kw.Single["day after"])
	assert.Equal(t, RuleToday, kw.Single["today"], "defaults survive a merge")
	assert.Equal(t, RuleNextWeek, kw.Range["fortnight"])

	_, err = LoadKeywordFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestKeywordParser(t *testing.T) {
	cases := []struct {
		locale string
		input  string
		want   Instant
	}{
		{"en", "today", gregorianUTC(2020, 1, 15, 10, 30, 0)},
		{"en", "Tomorrow", gregorianUTC(2020, 1, 16, 10, 30, 0)},
		{"en", "yesterday", gregorianUTC(2020, 1, 14, 10, 30, 0)},
		{"en", "sow", gregorianUTC(2020, 1, 13, 0, 0, 0)},
		{"en", "end of week", gregorianUTC(2020, 1, 19, 0, 0, 0)},
		{"en", "eom", gregorianUTC(2020, 1, 31, 0, 0, 0)},
		{"en", "soy", gregorianUTC(2020, 1, 1, 0, 0, 0)},
		{"en-GB", "eoy", gregorianUTC(2020, 12, 31, 0, 0, 0)},
		{"de", "adw", gregorianUTC(2020, 1, 13, 0, 0, 0)},
		{"de", "edm", gregorianUTC(2020, 1, 31, 0, 0, 0)},
		{"de", "Gestern", gregorianUTC(2020, 1, 14, 10, 30, 0)},
		{"es", "mañana", gregorianUTC(2020, 1, 16, 10, 30, 0)},
		{"fa", "اول هفته", gregorianUTC(2020, 1, 11, 0, 0, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.locale+"/"+tc.input, func(t *testing.T) {
			facts := newTestFacts(t, tc.locale)
			p := newKeywordParser(facts, DefaultKeywordTable())
			got, ok := p.Parse(tc.input, testRef().In(facts.Calendar))
			if !ok {
				t.Fatalf("Parse(%q) did not match", tc.input)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}

	p := newKeywordParser(newTestFacts(t, "en"), DefaultKeywordTable())
	_, ok := p.Parse("adw", testRef())
	assert.False(t, ok, "keywords are locale keyed")
}
