package datetime

import (
	"regexp"

	"github.com/araddon/dateparse"
)

var isoLead = regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}`)

// isoParser accepts ISO 8601 and RFC 3339 style input. It only runs on a
// leading YYYY-M-D so it never reinterprets locale ordered dates.
type isoParser struct {
	facts *LocaleFacts
}

func newISOParser(facts *LocaleFacts) *isoParser {
	return &isoParser{facts: facts}
}

func (p *isoParser) Parse(text string, ref Instant) (Instant, bool) {
	if !isoLead.MatchString(text) {
		return Instant{}, false
	}
	loc := ref.Location()
	if loc == nil {
		loc = p.facts.Location
	}
	t, err := dateparse.ParseIn(text, loc)
	if err != nil {
		return Instant{}, false
	}
	return NewInstant(t, ref.Calendar()), true
}
