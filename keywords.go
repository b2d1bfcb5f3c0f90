package datetime

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// KeywordRule names a closed-form computation over the reference instant.
type KeywordRule string

const (
	RuleToday        KeywordRule = "today"
	RuleTomorrow     KeywordRule = "tomorrow"
	RuleYesterday    KeywordRule = "yesterday"
	RuleStartOfWeek  KeywordRule = "start_of_week"
	RuleEndOfWeek    KeywordRule = "end_of_week"
	RuleStartOfMonth KeywordRule = "start_of_month"
	RuleEndOfMonth   KeywordRule = "end_of_month"
	RuleStartOfYear  KeywordRule = "start_of_year"
	RuleEndOfYear    KeywordRule = "end_of_year"

	RuleThisWeek  KeywordRule = "this_week"
	RuleLastWeek  KeywordRule = "last_week"
	RuleNextWeek  KeywordRule = "next_week"
	RuleThisMonth KeywordRule = "this_month"
	RuleLastMonth KeywordRule = "last_month"
	RuleNextMonth KeywordRule = "next_month"
	RuleThisYear  KeywordRule = "this_year"
	RuleLastYear  KeywordRule = "last_year"
	RuleNextYear  KeywordRule = "next_year"
)

var singleRules = map[KeywordRule]struct{}{
	RuleToday: {}, RuleTomorrow: {}, RuleYesterday: {},
	RuleStartOfWeek: {}, RuleEndOfWeek: {},
	RuleStartOfMonth: {}, RuleEndOfMonth: {},
	RuleStartOfYear: {}, RuleEndOfYear: {},
}

var rangeRules = map[KeywordRule]struct{}{
	RuleToday: {}, RuleTomorrow: {}, RuleYesterday: {},
	RuleThisWeek: {}, RuleLastWeek: {}, RuleNextWeek: {},
	RuleThisMonth: {}, RuleLastMonth: {}, RuleNextMonth: {},
	RuleThisYear: {}, RuleLastYear: {}, RuleNextYear: {},
}

// LocaleKeywords holds the keywords of one locale, keyed by normalized text.
type LocaleKeywords struct {
	Single map[string]KeywordRule `json:"single" yaml:"single"`
	Range  map[string]KeywordRule `json:"range" yaml:"range"`
}

// KeywordTable is a locale keyed set of single-date and range keywords.
type KeywordTable struct {
	locales map[string]LocaleKeywords
}

// NewKeywordTable validates and normalizes raw locale keywords.
func NewKeywordTable(raw map[string]LocaleKeywords) (*KeywordTable, error) {
	table := &KeywordTable{locales: make(map[string]LocaleKeywords, len(raw))}
	for locale, kw := range raw {
		locale = normalizeLocale(locale)
		if locale == "" {
			return nil, fmt.Errorf("%w: empty locale", ErrMalformedKeywords)
		}
		single, err := normalizeKeywords(locale, "single", kw.Single, singleRules)
		if err != nil {
			return nil, err
		}
		ranges, err := normalizeKeywords(locale, "range", kw.Range, rangeRules)
		if err != nil {
			return nil, err
		}
		table.locales[locale] = LocaleKeywords{Single: single, Range: ranges}
	}
	return table, nil
}

func normalizeKeywords(locale, kind string, in map[string]KeywordRule, allowed map[KeywordRule]struct{}) (map[string]KeywordRule, error) {
	out := make(map[string]KeywordRule, len(in))
	for keyword, rule := range in {
		key := normalizeKeyword(keyword)
		if key == "" {
			return nil, fmt.Errorf("%w: %s/%s: empty keyword", ErrMalformedKeywords, locale, kind)
		}
		if _, ok := allowed[rule]; !ok {
			return nil, fmt.Errorf("%w: %s/%s: %q maps to unknown rule %q", ErrMalformedKeywords, locale, kind, keyword, rule)
		}
		if existing, dup := out[key]; dup {
			return nil, fmt.Errorf("%w: %s/%s: %q maps to %q and %q", ErrMalformedKeywords, locale, kind, key, existing, rule)
		}
		out[key] = rule
	}
	return out, nil
}

// normalizeKeyword lowercases and collapses inner whitespace.
func normalizeKeyword(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Locales returns the locales present, sorted.
func (t *KeywordTable) Locales() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.locales))
	for locale := range t.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Merge returns a new table with other's keywords layered over t's.
func (t *KeywordTable) Merge(other *KeywordTable) *KeywordTable {
	out := &KeywordTable{locales: make(map[string]LocaleKeywords)}
	for _, src := range []*KeywordTable{t, other} {
		if src == nil {
			continue
		}
		for locale, kw := range src.locales {
			dst := out.locales[locale]
			dst.Single = mergeKeywords(dst.Single, kw.Single)
			dst.Range = mergeKeywords(dst.Range, kw.Range)
			out.locales[locale] = dst
		}
	}
	return out
}

func mergeKeywords(dst, src map[string]KeywordRule) map[string]KeywordRule {
	out := make(map[string]KeywordRule, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		out[k] = v
	}
	return out
}

// forLocales flattens the keywords of the given locales, earlier locales winning.
func (t *KeywordTable) forLocales(locales ...string) LocaleKeywords {
	out := LocaleKeywords{Single: map[string]KeywordRule{}, Range: map[string]KeywordRule{}}
	if t == nil {
		return out
	}
	for i := len(locales) - 1; i >= 0; i-- {
		kw, ok := t.locales[locales[i]]
		if !ok {
			continue
		}
		out.Single = mergeKeywords(out.Single, kw.Single)
		out.Range = mergeKeywords(out.Range, kw.Range)
	}
	return out
}

//go:embed keywords.yaml
var embeddedKeywords []byte

var (
	defaultKeywordsOnce sync.Once
	defaultKeywords     *KeywordTable
)

// DefaultKeywordTable returns the embedded keyword table. A malformed
// embedded table is a build defect and panics.
func DefaultKeywordTable() *KeywordTable {
	defaultKeywordsOnce.Do(func() {
		table, err := ParseKeywordTable("keywords.yaml", embeddedKeywords)
		if err != nil {
			panic(err)
		}
		defaultKeywords = table
	})
	return defaultKeywords
}
