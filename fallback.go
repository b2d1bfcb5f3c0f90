package datetime

import "sync"

// FallbackResolver resolves fallback locale chains
type FallbackResolver interface {
	Resolve(locale string) []string
}

// StaticFallbackResolver maps a locale to an explicit list of bundle
// locales tried before the CLDR parent chain.
type StaticFallbackResolver struct {
	mu        sync.RWMutex
	fallbacks map[string][]string
}

func NewStaticFallbackResolver() *StaticFallbackResolver {
	return &StaticFallbackResolver{fallbacks: make(map[string][]string)}
}

// Set replaces the fallbacks for locale.
func (s *StaticFallbackResolver) Set(locale string, fallbacks ...string) {
	if s == nil {
		return
	}
	locale = normalizeLocale(locale)
	if locale == "" {
		return
	}

	seen := make(map[string]struct{}, len(fallbacks))
	normalized := make([]string, 0, len(fallbacks))
	for _, fb := range fallbacks {
		fb = normalizeLocale(fb)
		if fb == "" || fb == locale {
			continue
		}
		if _, dup := seen[fb]; dup {
			continue
		}
		seen[fb] = struct{}{}
		normalized = append(normalized, fb)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fallbacks == nil {
		s.fallbacks = make(map[string][]string)
	}
	s.fallbacks[locale] = normalized
}

func (s *StaticFallbackResolver) Resolve(locale string) []string {
	if s == nil {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.fallbacks[normalizeLocale(locale)]...)
}
