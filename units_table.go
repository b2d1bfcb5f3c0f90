package datetime

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// UnitSuffixTable maps a lowercase unit suffix ("d", "days", "woche") to its unit.
type UnitSuffixTable map[string]Unit

// Lookup normalizes suffix and resolves it. A trailing period is optional.
func (t UnitSuffixTable) Lookup(suffix string) (Unit, bool) {
	key := strings.ToLower(strings.TrimSpace(suffix))
	if key == "" {
		return 0, false
	}
	if unit, ok := t[key]; ok {
		return unit, true
	}
	unit, ok := t[strings.TrimSuffix(key, ".")]
	return unit, ok
}

var pluralForms = map[plural.Form]PluralCategory{
	plural.Zero:  PluralZero,
	plural.One:   PluralOne,
	plural.Two:   PluralTwo,
	plural.Few:   PluralFew,
	plural.Many:  PluralMany,
	plural.Other: PluralOther,
}

// pluralCategoryFor returns the cardinal plural category of integer n in tag.
func pluralCategoryFor(tag language.Tag, n int) PluralCategory {
	if n < 0 {
		n = -n
	}
	form := plural.Cardinal.MatchPlural(tag, n, 0, 0, 0, 0)
	if category, ok := pluralForms[form]; ok {
		return category
	}
	return PluralOther
}

// buildUnitSuffixTable renders 1 and 2 through every long, short and narrow
// unit pattern and records what is left after removing digits and spaces.
// Units are visited largest first and the first writer keeps a suffix, so an
// ambiguous "m" stays a month. English suffixes fill the gaps for other locales.
func buildUnitSuffixTable(bundle localeBundle, tag language.Tag) UnitSuffixTable {
	table := make(UnitSuffixTable)
	fillUnitSuffixes(table, bundle, tag)

	if base, _ := tag.Base(); base.String() != "en" {
		if en, ok := lookupBundle("en"); ok {
			fillUnitSuffixes(table, en, language.English)
		}
	}
	return table
}

func fillUnitSuffixes(table UnitSuffixTable, bundle localeBundle, tag language.Tag) {
	printer := message.NewPrinter(tag)
	lower := cases.Lower(tag)

	for _, unit := range Units {
		patterns, ok := bundle.Units[unit]
		if !ok {
			continue
		}
		for _, width := range []pluralPatterns{patterns.Long, patterns.Short, patterns.Narrow} {
			for _, n := range []int{1, 2} {
				pattern, ok := width.Pattern(pluralCategoryFor(tag, n))
				if !ok {
					continue
				}
				text := strings.ReplaceAll(pattern, "{0}", printer.Sprint(number.Decimal(n)))
				suffix := lower.String(stripDigitsAndSpace(text))
				if suffix == "" {
					continue
				}
				addSuffix(table, suffix, unit)
				if trimmed := strings.TrimSuffix(suffix, "."); trimmed != suffix {
					addSuffix(table, trimmed, unit)
				}
			}
		}
	}
}

func addSuffix(table UnitSuffixTable, suffix string, unit Unit) {
	if suffix == "" {
		return
	}
	if _, exists := table[suffix]; exists {
		return
	}
	table[suffix] = unit
}

func stripDigitsAndSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
