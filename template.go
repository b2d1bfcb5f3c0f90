package datetime

import (
	"fmt"
	"time"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// LocaleKey is read from map template data to pick the locale. Defaults to "locale".
	LocaleKey string
}

func (c HelperConfig) localeKey() string {
	if c.LocaleKey == "" {
		return "locale"
	}
	return c.LocaleKey
}

// localeFrom resolves the locale a helper call asked for. ctx is a locale
// string, template data carrying LocaleKey, or nil for the bound locale.
func (c HelperConfig) localeFrom(ctx any, bound string) string {
	switch v := ctx.(type) {
	case string:
		if v != "" {
			return v
		}
	case map[string]any:
		if locale, ok := v[c.localeKey()].(string); ok && locale != "" {
			return locale
		}
	case map[string]string:
		if locale := v[c.localeKey()]; locale != "" {
			return locale
		}
	case interface{ Locale() string }:
		if locale := v.Locale(); locale != "" {
			return locale
		}
	}
	return bound
}

// TemplateHelpers returns the date helpers for locale, for html/template or
// text/template Funcs. Every helper takes the locale context first.
func TemplateHelpers(registry *HelperRegistry, locale string) (map[string]any, error) {
	return registry.FuncMap(locale)
}

func templateHelpers(r *HelperRegistry, bound string) map[string]any {
	parser := func(ctx any) *Parser {
		p, err := r.Parser(r.config.localeFrom(ctx, bound))
		if err != nil {
			p, _ = r.Parser(bound)
		}
		return p
	}

	render := func(fn func(*Formatter, Instant) string) func(ctx any, value any) string {
		return func(ctx any, value any) string {
			p := parser(ctx)
			if p == nil {
				return ""
			}
			i, ok := toInstant(p, value)
			if !ok {
				return ""
			}
			return fn(p.Formatter(), i)
		}
	}

	return map[string]any{
		"format_date":     render((*Formatter).FormatDate),
		"format_time":     render((*Formatter).FormatTime),
		"format_datetime": render((*Formatter).Format),
		"format_daymonth": render((*Formatter).FormatDayMonth),
		"time_ago": func(ctx any, value any) string {
			p := parser(ctx)
			if p == nil {
				return ""
			}
			i, ok := toInstant(p, value)
			if !ok {
				return ""
			}
			return Between(p.Now(), i).Format(p.Formatter())
		},
		"format_range": func(ctx any, start, end any) string {
			p := parser(ctx)
			if p == nil {
				return ""
			}
			a, _ := toInstant(p, start)
			b, _ := toInstant(p, end)
			return NewRange(a, b).Format(p.Formatter())
		},
		"parse_date": func(ctx any, text string) (Instant, error) {
			p := parser(ctx)
			if p == nil {
				return Instant{}, ErrUnsupportedLocale
			}
			i, ok := p.Parse(text, Instant{})
			if !ok {
				return Instant{}, fmt.Errorf("%w: %q (%s)", ErrNoMatch, text, p.Facts().Locale)
			}
			return i, nil
		},
		"parse_range": func(ctx any, text string) Range {
			p := parser(ctx)
			if p == nil {
				return Range{}
			}
			return p.ParseRange(text, Instant{})
		},
	}
}

// toInstant accepts the value shapes templates usually carry. Strings go
// through the parser against now.
func toInstant(p *Parser, value any) (Instant, bool) {
	switch v := value.(type) {
	case Instant:
		return v, !v.IsZero()
	case *Instant:
		if v == nil {
			return Instant{}, false
		}
		return *v, !v.IsZero()
	case time.Time:
		return NewInstant(v, p.Facts().Calendar), !v.IsZero()
	case *time.Time:
		if v == nil {
			return Instant{}, false
		}
		return NewInstant(*v, p.Facts().Calendar), !v.IsZero()
	case string:
		return p.Parse(v, Instant{})
	default:
		return Instant{}, false
	}
}
