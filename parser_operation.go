package datetime

import (
	"regexp"
	"strconv"

	"golang.org/x/text/cases"
)

var operationPattern = regexp.MustCompile(`^([+-])(\d*)([^\d\s+-]*)$`)

// operationParser resolves signed offsets such as "+7", "-2w" or "+1 year".
type operationParser struct {
	facts *LocaleFacts
}

func newOperationParser(facts *LocaleFacts) *operationParser {
	return &operationParser{facts: facts}
}

func (p *operationParser) Parse(text string, ref Instant) (Instant, bool) {
	match := operationPattern.FindStringSubmatch(stripSpace(text))
	if match == nil || match[2] == "" {
		return Instant{}, false
	}

	magnitude, err := strconv.ParseInt(match[2], 10, 32)
	if err != nil {
		return Instant{}, false
	}
	if match[1] == "-" {
		magnitude = -magnitude
	}

	unit := UnitDay
	if suffix := match[3]; suffix != "" {
		var ok bool
		unit, ok = p.facts.units.Lookup(cases.Lower(p.facts.Tag).String(suffix))
		if !ok {
			return Instant{}, false
		}
	}

	return ref.Add(unit, int(magnitude)), true
}
