package datetime

import (
	"strings"

	"golang.org/x/text/cases"
)

// Connector leftovers stripped from a side after a split. The space is part
// of the match so a bare sign ("-7") survives.
var (
	rangeSidePrefixes = []string{"- ", "~ ", "– "}
	rangeSideSuffixes = []string{" -", " ~", " –"}
)

// ParseRange resolves text into a range. Canonical strings
// ("2020-01-15~2020-01-20") are read as such; range keywords ("lw",
// "this month") come next; otherwise the text is split on the first separator
// found and each side goes through Parse. Sides that do not parse become
// absent bounds.
func (p *Parser) ParseRange(text string, ref Instant) Range {
	ref = p.reference(ref)
	if r, ok := p.parseCanonical(strings.TrimSpace(text), ref); ok {
		return r
	}
	lowered := cases.Lower(p.facts.Tag).String(strings.TrimSpace(text))
	if lowered == "" {
		return Range{}
	}

	if rule, ok := p.keywords.Range[normalizeKeyword(lowered)]; ok {
		if r, ok := applyRangeRule(rule, ref, p.facts.FirstWeekday); ok {
			p.logger.Debug("datetime: range keyword", "input", text, "rule", string(rule))
			return r
		}
	}

	left, right := p.splitRange(lowered)
	start, _ := p.Parse(left, ref)
	end, _ := p.Parse(right, ref)
	return NewRange(start, end)
}

// parseCanonical splits on the canonical separator when every present side
// starts with an ISO date. ISO dates contain "-", so this runs before the
// locale separators.
func (p *Parser) parseCanonical(text string, ref Instant) (Range, bool) {
	left, right, found := strings.Cut(text, CanonicalSeparator)
	if !found || (left == "" && right == "") {
		return Range{}, false
	}
	var bounds [2]Instant
	for i, side := range []string{strings.TrimSpace(left), strings.TrimSpace(right)} {
		if side == "" {
			continue
		}
		if !isoLead.MatchString(side) {
			return Range{}, false
		}
		bound, ok := p.Parse(side, ref)
		if !ok {
			return Range{}, false
		}
		bounds[i] = bound
	}
	return NewRange(bounds[0], bounds[1]), true
}

// rangeSeparators lists split candidates in priority order.
func (p *Parser) rangeSeparators() []string {
	seps := make([]string, 0, 4)
	if until := strings.TrimSpace(p.facts.Until); until != "" {
		seps = append(seps, until)
	}
	return append(seps, " ", "-", CanonicalSeparator)
}

func (p *Parser) splitRange(text string) (string, string) {
	seps := p.rangeSeparators()
	for _, sep := range seps {
		idx := strings.Index(text, sep)
		if sep == "-" && idx == 0 {
			// a leading minus is an operation sign, not a split point
			if next := strings.Index(text[1:], sep); next >= 0 {
				idx = next + 1
			} else {
				idx = -1
			}
		}
		if idx < 0 {
			continue
		}
		return trimRangeSide(text[:idx]), trimRangeSide(text[idx+len(sep):])
	}

	text += seps[0]
	idx := strings.Index(text, seps[0])
	return trimRangeSide(text[:idx]), trimRangeSide(text[idx+len(seps[0]):])
}

func trimRangeSide(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range rangeSidePrefixes {
		s = strings.TrimPrefix(s, prefix)
	}
	for _, suffix := range rangeSideSuffixes {
		s = strings.TrimSuffix(s, suffix)
	}
	return strings.TrimSpace(s)
}
