// Package validation checks inbound request bodies against per-form field
// constraints before any handler logic runs. A failed check produces a list
// of field-level violations that the error handler renders as a 400 with
// details.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	clockRe  = regexp.MustCompile(`^([0-1][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Violation is a single field-level constraint failure.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the full set of failures for a request body. It implements
// error so handlers can return it directly up the echo pipeline.
type Violations []Violation

func (v Violations) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", v[0].Field, v[0].Message)
}

// Add appends a violation.
func (v *Violations) Add(field, message string) {
	*v = append(*v, Violation{Field: field, Message: message})
}

// AsError returns v as an error, or nil when there are no violations.
func (v Violations) AsError() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *Violations) Required(field, value string) bool {
	if value == "" {
		v.Add(field, field+" is required")
		return false
	}
	return true
}

func (v *Violations) Email(field, value string) {
	if !v.Required(field, value) {
		return
	}
	if !emailRe.MatchString(value) {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Violations) MinLen(field, value string, min int) {
	if len(value) < min {
		v.Add(field, fmt.Sprintf("must be at least %d characters", min))
	}
}

func (v *Violations) MaxLen(field, value string, max int) {
	if len(value) > max {
		v.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func (v *Violations) LengthBetween(field, value string, min, max int) {
	if len(value) < min || len(value) > max {
		v.Add(field, fmt.Sprintf("must be between %d and %d characters", min, max))
	}
}

// Digits checks that value consists only of digits with a length in [min, max].
func (v *Violations) Digits(field, value string, min, max int) {
	if !v.Required(field, value) {
		return
	}
	if !digitsRe.MatchString(value) || len(value) < min || len(value) > max {
		v.Add(field, fmt.Sprintf("must be %d to %d digits", min, max))
	}
}

func (v *Violations) OneOf(field, value string, allowed ...string) {
	if !v.Required(field, value) {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, "must be one of: "+joinWithOr(allowed))
}

func (v *Violations) UUID(field, value string) {
	if !v.Required(field, value) {
		return
	}
	if _, err := uuid.Parse(value); err != nil {
		v.Add(field, "must be a valid identifier")
	}
}

// ClockHHMM checks a 24-hour HH:MM time of day.
func (v *Violations) ClockHHMM(field, value string) {
	if !v.Required(field, value) {
		return
	}
	if !clockRe.MatchString(value) {
		v.Add(field, "must be a valid time in HH:MM format")
	}
}

// DateNotFuture parses a YYYY-MM-DD date that must not be after today.
func (v *Violations) DateNotFuture(field, value string) {
	d, ok := v.date(field, value)
	if !ok {
		return
	}
	if d.After(today()) {
		v.Add(field, "must not be in the future")
	}
}

// DateNotPast parses a YYYY-MM-DD date that must not be before today.
func (v *Violations) DateNotPast(field, value string) {
	d, ok := v.date(field, value)
	if !ok {
		return
	}
	if d.Before(today()) {
		v.Add(field, "must not be in the past")
	}
}

func (v *Violations) date(field, value string) (time.Time, bool) {
	if !v.Required(field, value) {
		return time.Time{}, false
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return time.Time{}, false
	}
	return d, true
}

func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func joinWithOr(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	}
	out := values[0]
	for _, s := range values[1 : len(values)-1] {
		out += ", " + s
	}
	return out + " or " + values[len(values)-1]
}
