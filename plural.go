package datetime

// PluralCategory is a CLDR plural category used to key locale patterns.
type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// pluralOrder is the order selectors are handed to the plural matcher; other goes last.
var pluralOrder = []PluralCategory{
	PluralZero,
	PluralOne,
	PluralTwo,
	PluralFew,
	PluralMany,
	PluralOther,
}

// pluralPatterns maps a plural category to a CLDR pattern with a {0} placeholder.
type pluralPatterns map[PluralCategory]string

// Pattern returns the pattern for category, falling back to other.
func (p pluralPatterns) Pattern(category PluralCategory) (string, bool) {
	if len(p) == 0 {
		return "", false
	}
	if pattern, ok := p[category]; ok {
		return pattern, true
	}
	pattern, ok := p[PluralOther]
	return pattern, ok
}

// Categories returns the categories present, in selector order.
func (p pluralPatterns) Categories() []PluralCategory {
	if len(p) == 0 {
		return nil
	}
	categories := make([]PluralCategory, 0, len(p))
	for _, category := range pluralOrder {
		if _, ok := p[category]; ok {
			categories = append(categories, category)
		}
	}
	return categories
}

func (p pluralPatterns) clone() pluralPatterns {
	if p == nil {
		return nil
	}
	out := make(pluralPatterns, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
