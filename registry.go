package datetime

import (
	"fmt"
	"maps"
	"sync"
)

// HelperRegistry hands out locale bound parsers and the template helpers built
// on them. Parsers and func maps are built once per locale and cached.
type HelperRegistry struct {
	mu        sync.RWMutex
	opts      []Option
	locales   []string
	config    HelperConfig
	parsers   map[string]*Parser
	globals   map[string]any
	overrides map[string]map[string]any
	funcCache map[string]map[string]any
}

// NewHelperRegistry builds parsers for locales up front so a bad locale fails
// at startup. The first locale is the default for helpers called without one.
func NewHelperRegistry(locales []string, cfg HelperConfig, opts ...Option) (*HelperRegistry, error) {
	r := &HelperRegistry{
		opts:    append([]Option(nil), opts...),
		config:  cfg,
		parsers: make(map[string]*Parser),
	}

	for _, locale := range locales {
		locale = normalizeLocale(locale)
		if locale == "" || containsLocale(r.locales, locale) {
			continue
		}
		if _, err := r.Parser(locale); err != nil {
			return nil, err
		}
		r.locales = append(r.locales, locale)
	}

	return r, nil
}

// Locales returns the locales the registry was seeded with.
func (r *HelperRegistry) Locales() []string {
	return append([]string(nil), r.locales...)
}

func (r *HelperRegistry) defaultLocale() string {
	if len(r.locales) > 0 {
		return r.locales[0]
	}
	return DefaultLocale
}

// Parser returns the cached parser for locale, building it on first use.
func (r *HelperRegistry) Parser(locale string) (*Parser, error) {
	locale = normalizeLocale(locale)
	if locale == "" {
		locale = r.defaultLocale()
	}

	r.mu.RLock()
	if p, ok := r.parsers[locale]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.parsers[locale]; ok {
		return p, nil
	}

	p, err := NewParser(locale, r.opts...)
	if err != nil {
		return nil, fmt.Errorf("datetime: helper parser for %q: %w", locale, err)
	}
	r.parsers[locale] = p
	return p, nil
}

// Register sets or replaces a helper for every locale.
func (r *HelperRegistry) Register(name string, fn any) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.globals == nil {
		r.globals = make(map[string]any)
	}
	r.globals[name] = fn
	r.funcCache = nil
}

// RegisterLocale registers a locale specific override for the <name> helper.
// Overrides apply to the locale and to locales that inherit from it.
func (r *HelperRegistry) RegisterLocale(locale, name string, fn any) {
	locale = normalizeLocale(locale)
	if locale == "" || name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.overrides == nil {
		r.overrides = make(map[string]map[string]any)
	}
	helpers := r.overrides[locale]
	if helpers == nil {
		helpers = make(map[string]any)
		r.overrides[locale] = helpers
	}
	helpers[name] = fn
	r.funcCache = nil
}

// FuncMap returns the helpers for locale, ready for template.Funcs.
func (r *HelperRegistry) FuncMap(locale string) (map[string]any, error) {
	funcs, err := r.funcMapForLocale(locale)
	if err != nil {
		return nil, err
	}
	return maps.Clone(funcs), nil
}

func (r *HelperRegistry) funcMapForLocale(locale string) (map[string]any, error) {
	key := normalizeLocale(locale)
	if key == "" {
		key = r.defaultLocale()
	}

	r.mu.RLock()
	if cached, ok := r.funcCache[key]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	if _, err := r.Parser(key); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.funcCache == nil {
		r.funcCache = make(map[string]map[string]any)
	} else if cached, ok := r.funcCache[key]; ok {
		return cached, nil
	}

	result := templateHelpers(r, key)

	// least specific first so the requested locale wins
	candidates := append([]string{key}, localeParentChain(key)...)
	for i := len(candidates) - 1; i >= 0; i-- {
		if helpers, ok := r.overrides[candidates[i]]; ok {
			maps.Copy(result, helpers)
		}
	}
	maps.Copy(result, r.globals)

	r.funcCache[key] = result
	return result, nil
}

func containsLocale(locales []string, target string) bool {
	for _, locale := range locales {
		if locale == target {
			return true
		}
	}
	return false
}
