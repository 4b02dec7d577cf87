// Package validation provides an aggregated validation error type.
// Validators collect every violation before failing so that clients see the
// full set of problems in a single response, not just the first.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Error carries all violations found while validating a request payload.
type Error struct {
	Violations []string
}

func (e *Error) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Collector accumulates violations during validation.
type Collector struct {
	violations []string
}

// Add records a violation message.
func (c *Collector) Add(format string, args ...any) {
	c.violations = append(c.violations, fmt.Sprintf(format, args...))
}

// Err returns an *Error holding the collected violations, or nil if none
// were recorded.
func (c *Collector) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &Error{Violations: c.violations}
}

// Is reports whether err is (or wraps) a validation Error.
func Is(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
