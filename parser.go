package datetime

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"
)

// DateParser turns text into an instant relative to ref. The boolean is
// false when the text is not in a form the parser understands.
type DateParser interface {
	Parse(text string, ref Instant) (Instant, bool)
}

// ParserFunc adapts a function to DateParser.
type ParserFunc func(text string, ref Instant) (Instant, bool)

func (fn ParserFunc) Parse(text string, ref Instant) (Instant, bool) { return fn(text, ref) }

// ParserFactory builds a parser for one locale.
type ParserFactory func(facts *LocaleFacts) (DateParser, error)

const (
	ParserOperation = "operation"
	ParserKeyword   = "keyword"
	ParserShortcut  = "shortcut"
	ParserLocal     = "local"
	ParserISO       = "iso"
)

type builtinFactory func(facts *LocaleFacts, cfg *config) (DateParser, error)

// builtinOrder is the fixed priority of the built-in parsers.
var builtinOrder = []string{ParserOperation, ParserKeyword, ParserShortcut, ParserLocal, ParserISO}

var builtinParsers = map[string]builtinFactory{
	ParserOperation: func(f *LocaleFacts, _ *config) (DateParser, error) { return newOperationParser(f), nil },
	ParserKeyword: func(f *LocaleFacts, cfg *config) (DateParser, error) {
		return newKeywordParser(f, cfg.keywords), nil
	},
	ParserShortcut: func(f *LocaleFacts, _ *config) (DateParser, error) { return newShortcutParser(f), nil },
	ParserLocal:    func(f *LocaleFacts, _ *config) (DateParser, error) { return newLocalParser(f) },
	ParserISO:      func(f *LocaleFacts, _ *config) (DateParser, error) { return newISOParser(f), nil },
}

type registeredParser struct {
	name    string
	factory ParserFactory
}

var parserRegistry struct {
	mu      sync.RWMutex
	entries []registeredParser
}

// RegisterParser appends a parser factory to every chain built afterwards.
// Registration is process wide and cannot be undone.
func RegisterParser(name string, factory ParserFactory) {
	if factory == nil {
		return
	}
	parserRegistry.mu.Lock()
	defer parserRegistry.mu.Unlock()
	parserRegistry.entries = append(parserRegistry.entries, registeredParser{name: name, factory: factory})
}

func registeredParsers() []registeredParser {
	parserRegistry.mu.RLock()
	defer parserRegistry.mu.RUnlock()
	return append([]registeredParser(nil), parserRegistry.entries...)
}

type namedParser struct {
	name   string
	parser DateParser
}

// Parser is the locale bound parse chain. The first parser that matches wins.
// A Parser is immutable and safe for concurrent use.
type Parser struct {
	facts     *LocaleFacts
	formatter *Formatter
	keywords  LocaleKeywords
	chain     []namedParser
	logger    *slog.Logger
	clock     func() time.Time
}

// NewParser builds the chain for locale. It fails only when the locale or
// calendar cannot be resolved.
func NewParser(locale string, opts ...Option) (*Parser, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	facts, err := factsFor(locale, cfg)
	if err != nil {
		return nil, err
	}

	formatter, err := NewFormatter(facts)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		facts:     facts,
		formatter: formatter,
		keywords:  cfg.keywords.forLocales(keywordLocales(facts)...),
		logger:    cfg.logger,
		clock:     cfg.clock,
	}

	for _, name := range builtinOrder {
		if _, off := cfg.disabled[name]; off {
			continue
		}
		parser, err := builtinParsers[name](facts, cfg)
		if err != nil {
			return nil, configError(facts.Locale, err, "build %s parser", name)
		}
		p.chain = append(p.chain, namedParser{name: name, parser: parser})
	}

	for _, entry := range registeredParsers() {
		parser, err := entry.factory(facts)
		if err != nil {
			return nil, configError(facts.Locale, err, "build %s parser", entry.name)
		}
		if parser != nil {
			p.chain = append(p.chain, namedParser{name: entry.name, parser: parser})
		}
	}

	return p, nil
}

func keywordLocales(facts *LocaleFacts) []string {
	return append([]string{facts.Locale}, localeParentChain(facts.Locale)...)
}

func (p *Parser) Facts() *LocaleFacts      { return p.facts }
func (p *Parser) Formatter() *Formatter    { return p.formatter }
func (p *Parser) Now() Instant             { return p.reference(Instant{}) }
func (p *Parser) Keywords() LocaleKeywords { return p.keywords }

// reference resolves ref in the parser's calendar and zone. A zero ref is now.
func (p *Parser) reference(ref Instant) Instant {
	if ref.IsZero() {
		return NewInstant(p.clock().In(p.facts.Location), p.facts.Calendar)
	}
	return ref.In(p.facts.Calendar).InLocation(p.facts.Location)
}

// Parse resolves text against ref, or now when ref is the zero Instant.
func (p *Parser) Parse(text string, ref Instant) (Instant, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Instant{}, false
	}
	ref = p.reference(ref)

	for _, entry := range p.chain {
		if result, ok := entry.parser.Parse(text, ref); ok {
			p.logger.Debug("datetime: parsed", "parser", entry.name, "input", text, "result", result.String())
			return result, true
		}
	}
	p.logger.Debug("datetime: no match", "input", text, "locale", p.facts.Locale)
	return Instant{}, false
}

// MustParse is Parse for inputs known to be valid, mostly in tests.
func (p *Parser) MustParse(text string, ref Instant) Instant {
	result, ok := p.Parse(text, ref)
	if !ok {
		panic(fmt.Sprintf("datetime: cannot parse %q", text))
	}
	return result
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
