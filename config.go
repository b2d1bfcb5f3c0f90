package datetime

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// config captures parser and facts setup
type config struct {
	calendar  Calendar
	location  *time.Location
	logger    *slog.Logger
	clock     func() time.Time
	keywords  *KeywordTable
	resolver  FallbackResolver
	disabled  map[string]struct{}
	keywordFS []string
}

// Option mutates config during construction
type Option func(*config) error

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.location == nil {
		cfg.location = time.Local
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	if cfg.clock == nil {
		cfg.clock = time.Now
	}
	if cfg.keywords == nil {
		cfg.keywords = DefaultKeywordTable()
	}
	for _, path := range cfg.keywordFS {
		loaded, err := LoadKeywordFile(path)
		if err != nil {
			return nil, err
		}
		cfg.keywords = cfg.keywords.Merge(loaded)
	}

	return cfg, nil
}

// WithCalendar overrides the locale's default calendar. Accepts BCP 47
// identifiers (gregory, persian) and common aliases (jalali).
func WithCalendar(id string) Option {
	return func(c *config) error {
		if strings.TrimSpace(id) == "" {
			return nil
		}
		cal, ok := CalendarByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedCalendar, id)
		}
		c.calendar = cal
		return nil
	}
}

// WithCalendarImpl sets the calendar directly.
func WithCalendarImpl(cal Calendar) Option {
	return func(c *config) error {
		c.calendar = cal
		return nil
	}
}

func WithLocation(loc *time.Location) Option {
	return func(c *config) error {
		c.location = loc
		return nil
	}
}

// WithTimeZone loads an IANA zone name.
func WithTimeZone(name string) Option {
	return func(c *config) error {
		if strings.TrimSpace(name) == "" {
			return nil
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("datetime: load time zone %q: %w", name, err)
		}
		c.location = loc
		return nil
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithClock replaces time.Now as the source of the default reference instant.
func WithClock(clock func() time.Time) Option {
	return func(c *config) error {
		c.clock = clock
		return nil
	}
}

// WithKeywordTable replaces the embedded keyword table.
func WithKeywordTable(table *KeywordTable) Option {
	return func(c *config) error {
		c.keywords = table
		return nil
	}
}

// WithKeywordFile merges a JSON or YAML keyword file over the active table.
func WithKeywordFile(path string) Option {
	return func(c *config) error {
		if path == "" {
			return nil
		}
		c.keywordFS = append(c.keywordFS, path)
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *config) error {
		c.resolver = resolver
		return nil
	}
}

// WithFallback registers bundle locales tried for locale before its CLDR parents.
// It fails when a custom FallbackResolver was configured earlier.
func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.resolver.(*StaticFallbackResolver)
		if !ok {
			if c.resolver != nil {
				return fmt.Errorf("datetime: WithFallback(%q) needs a *StaticFallbackResolver, have %T", locale, c.resolver)
			}
			resolver = NewStaticFallbackResolver()
			c.resolver = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithoutBuiltinParser removes built-in parsers from the chain by name.
func WithoutBuiltinParser(names ...string) Option {
	return func(c *config) error {
		for _, name := range names {
			if _, ok := builtinParsers[name]; !ok {
				return fmt.Errorf("datetime: unknown built-in parser %q", name)
			}
			if c.disabled == nil {
				c.disabled = make(map[string]struct{})
			}
			c.disabled[name] = struct{}{}
		}
		return nil
	}
}
