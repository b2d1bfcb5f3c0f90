package datetime

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when a parser is built for an empty locale.
const DefaultLocale = "en"

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

// localeParentChain returns the parents of locale, closest first.
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// baseLocale strips extensions and variants from tag, keeping
// language, script and region as written.
func baseLocale(tag language.Tag) string {
	base, script, region := tag.Raw()
	parts := []string{base.String()}
	if s := script.String(); s != "Zzzz" {
		parts = append(parts, s)
	}
	if r := region.String(); r != "ZZ" {
		parts = append(parts, r)
	}
	return strings.Join(parts, "-")
}

// localeCandidates lists the bundle ids to try for tag, most specific first.
func localeCandidates(tag language.Tag, fallbacks FallbackResolver) []string {
	primary := baseLocale(tag)
	base, _, _ := tag.Raw()

	seen := make(map[string]struct{}, 6)
	var out []string
	add := func(values ...string) {
		for _, v := range values {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	add(primary)
	if fallbacks != nil {
		add(fallbacks.Resolve(primary)...)
	}
	add(localeParentChain(primary)...)
	add(base.String())
	if fallbacks != nil {
		add(fallbacks.Resolve(base.String())...)
	}
	return out
}
