package datetime

import (
	"strconv"
	"strings"
)

// PartType classifies one piece of a formatted date.
type PartType string

const (
	PartYear      PartType = "year"
	PartMonth     PartType = "month"
	PartDay       PartType = "day"
	PartHour      PartType = "hour"
	PartMinute    PartType = "minute"
	PartSecond    PartType = "second"
	PartDayPeriod PartType = "dayPeriod"
	PartLiteral   PartType = "literal"
)

// PartSource tells which side of a range a part was produced for.
type PartSource string

const (
	SourceNone       PartSource = ""
	SourceStartRange PartSource = "startRange"
	SourceShared     PartSource = "shared"
	SourceEndRange   PartSource = "endRange"
)

// Part is a typed fragment of formatted output.
type Part struct {
	Type   PartType
	Value  string
	Source PartSource
}

// JoinParts concatenates the values of parts.
func JoinParts(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p.Value)
	}
	return b.String()
}

type patternToken struct {
	field   byte
	width   int
	literal string
}

// compiledPattern is a tokenized CLDR date pattern.
type compiledPattern []patternToken

// compilePattern tokenizes a CLDR pattern. Letters are fields, text in single
// quotes is literal and '' is a quote.
func compilePattern(pattern string) compiledPattern {
	var tokens compiledPattern
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, patternToken{literal: lit.String()})
			lit.Reset()
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				lit.WriteRune('\'')
				i++
				continue
			}
			for i++; i < len(runes); i++ {
				if runes[i] == '\'' {
					if i+1 < len(runes) && runes[i+1] == '\'' {
						lit.WriteRune('\'')
						i++
						continue
					}
					break
				}
				lit.WriteRune(runes[i])
			}
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			flush()
			width := 1
			for i+1 < len(runes) && runes[i+1] == r {
				width++
				i++
			}
			tokens = append(tokens, patternToken{field: byte(r), width: width})
		default:
			lit.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// fieldKinds lists the date and time fields in the order the pattern renders them.
func (p compiledPattern) fieldKinds() []PartType {
	var kinds []PartType
	for _, tok := range p {
		if tok.field == 0 {
			continue
		}
		if kind, ok := fieldPartType(tok.field); ok {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

func fieldPartType(field byte) (PartType, bool) {
	switch field {
	case 'y', 'u':
		return PartYear, true
	case 'M', 'L':
		return PartMonth, true
	case 'd':
		return PartDay, true
	case 'H', 'h', 'k', 'K':
		return PartHour, true
	case 'm':
		return PartMinute, true
	case 's':
		return PartSecond, true
	case 'a':
		return PartDayPeriod, true
	default:
		return "", false
	}
}

// format renders f to parts. Unsupported fields are dropped.
func (p compiledPattern) format(f Fields) []Part {
	parts := make([]Part, 0, len(p))
	for _, tok := range p {
		if tok.field == 0 {
			parts = append(parts, Part{Type: PartLiteral, Value: tok.literal})
			continue
		}
		kind, ok := fieldPartType(tok.field)
		if !ok {
			continue
		}
		parts = append(parts, Part{Type: kind, Value: formatField(tok, f)})
	}
	return parts
}

func formatField(tok patternToken, f Fields) string {
	switch tok.field {
	case 'y', 'u':
		if tok.width == 2 {
			return pad(((f.Year%100)+100)%100, 2)
		}
		return pad(f.Year, tok.width)
	case 'M', 'L':
		return pad(f.Month, min(tok.width, 2))
	case 'd':
		return pad(f.Day, tok.width)
	case 'H':
		return pad(f.Hour, tok.width)
	case 'k':
		h := f.Hour
		if h == 0 {
			h = 24
		}
		return pad(h, tok.width)
	case 'h':
		h := f.Hour % 12
		if h == 0 {
			h = 12
		}
		return pad(h, tok.width)
	case 'K':
		return pad(f.Hour%12, tok.width)
	case 'm':
		return pad(f.Minute, tok.width)
	case 's':
		return pad(f.Second, tok.width)
	case 'a':
		if f.Hour < 12 {
			return "AM"
		}
		return "PM"
	}
	return ""
}

func pad(v, width int) string {
	s := strconv.Itoa(v)
	if v < 0 {
		return s
	}
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// applyGlue substitutes {0} and {1} in a CLDR glue pattern with the given parts.
// Literal glue text becomes literal parts tagged with src.
func applyGlue(glue string, zero, one []Part, src PartSource) []Part {
	var parts []Part
	for glue != "" {
		idx := strings.IndexByte(glue, '{')
		if idx < 0 || idx+2 >= len(glue) || glue[idx+2] != '}' || (glue[idx+1] != '0' && glue[idx+1] != '1') {
			if idx < 0 {
				parts = appendLiteral(parts, glue, src)
				break
			}
			parts = appendLiteral(parts, glue[:idx+1], src)
			glue = glue[idx+1:]
			continue
		}
		parts = appendLiteral(parts, glue[:idx], src)
		if glue[idx+1] == '0' {
			parts = append(parts, zero...)
		} else {
			parts = append(parts, one...)
		}
		glue = glue[idx+3:]
	}
	return parts
}

func appendLiteral(parts []Part, text string, src PartSource) []Part {
	if text == "" {
		return parts
	}
	return append(parts, Part{Type: PartLiteral, Value: text, Source: src})
}

func withSource(parts []Part, src PartSource) []Part {
	out := make([]Part, len(parts))
	for i, p := range parts {
		p.Source = src
		out[i] = p
	}
	return out
}
