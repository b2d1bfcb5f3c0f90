package datetime

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLocale indicates that no locale bundle could be resolved for a tag.
	ErrUnsupportedLocale = errors.New("datetime: unsupported locale")
	// ErrUnsupportedCalendar indicates an unknown calendar identifier.
	ErrUnsupportedCalendar = errors.New("datetime: unsupported calendar")
	// ErrUnsupportedFieldOrder indicates a locale whose numeric date order is not DMY, MDY or YMD.
	ErrUnsupportedFieldOrder = errors.New("datetime: unsupported date field order")
	// ErrInvalidField marks out of range date or time fields.
	ErrInvalidField = errors.New("datetime: invalid field")
	// ErrMalformedKeywords marks keyword tables that map a keyword to more than one rule.
	ErrMalformedKeywords = errors.New("datetime: malformed keyword table")
	// ErrNoMatch is returned by helpers that surface a failed parse as an error.
	ErrNoMatch = errors.New("datetime: no match")
	// ErrMalformedRange marks canonical range strings that cannot be decoded.
	ErrMalformedRange = errors.New("datetime: malformed range")
)

// ConfigurationError is returned when locale or calendar facts cannot be derived
// while constructing a parser. It is an environment problem, never a data problem.
type ConfigurationError struct {
	Locale string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("datetime: configure locale %q", e.Locale)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func configError(locale string, err error, format string, args ...any) error {
	return &ConfigurationError{
		Locale: locale,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}
