package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FieldError is a single violation reported back to the client verbatim.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Predicate reports whether a field value is acceptable.
type Predicate func(value string) bool

// Check pairs a predicate with the message returned on failure.
type Check struct {
	Predicate Predicate
	Message   string
}

type fieldRule struct {
	field    string
	required bool
	checks   []Check
}

// RuleSet is an ordered table of per-field rules. Validate evaluates every
// rule independently and collects all violations; it never short-circuits.
type RuleSet struct {
	rules []fieldRule
}

// Field registers a required field: all checks run even when the value is
// empty so the caller sees the full list of problems at once.
func (rs RuleSet) Field(name string, checks ...Check) RuleSet {
	rs.rules = append(rs.rules, fieldRule{field: name, required: true, checks: checks})
	return rs
}

// Optional registers a field whose checks only run when a value is supplied.
func (rs RuleSet) Optional(name string, checks ...Check) RuleSet {
	rs.rules = append(rs.rules, fieldRule{field: name, checks: checks})
	return rs
}

// Validate runs the rule table against the supplied fields. An empty result
// means the input is valid.
func (rs RuleSet) Validate(fields map[string]string) []FieldError {
	var violations []FieldError
	for _, rule := range rs.rules {
		value, present := fields[rule.field]
		// Optional rules are skipped only when the field is absent; a
		// supplied empty string still has to pass its checks.
		if !rule.required && !present {
			continue
		}
		for _, check := range rule.checks {
			if !check.Predicate(value) {
				violations = append(violations, FieldError{
					Field:   rule.field,
					Message: check.Message,
				})
			}
		}
	}
	return violations
}

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func NonEmpty(message string) Check {
	return Check{
		Predicate: func(v string) bool { return strings.TrimSpace(v) != "" },
		Message:   message,
	}
}

func MinLen(n int, message string) Check {
	return Check{
		Predicate: func(v string) bool { return len(v) >= n },
		Message:   message,
	}
}

func Email(message string) Check {
	return Check{
		Predicate: func(v string) bool { return emailRe.MatchString(v) },
		Message:   message,
	}
}

func Numeric(message string) Check {
	return Check{
		Predicate: func(v string) bool {
			_, err := strconv.ParseFloat(v, 64)
			return err == nil
		},
		Message: message,
	}
}

func ISODate(message string) Check {
	return Check{
		Predicate: func(v string) bool {
			_, err := ParseISODate(v)
			return err == nil
		},
		Message: message,
	}
}

// ParseISODate accepts a calendar date or a full RFC 3339 timestamp.
func ParseISODate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid ISO date: %q", v)
}

// SignupRules validates new account input.
func SignupRules() RuleSet {
	return RuleSet{}.
		Field("username",
			NonEmpty("Username is required"),
			MinLen(3, "Username must be at least 3 characters long")).
		Field("email",
			Email("Invalid email format")).
		Field("password",
			MinLen(6, "Password must be at least 6 characters long"))
}

// LoginRules validates sign-in input; presence of username or email is
// checked by the handler since either one is enough.
func LoginRules() RuleSet {
	return RuleSet{}.
		Field("password", NonEmpty("Password is required")).
		Optional("email", Email("Provide a valid email"))
}

// EmployeeCreateRules validates a new employee record.
func EmployeeCreateRules() RuleSet {
	return RuleSet{}.
		Field("first_name", NonEmpty("First name is required")).
		Field("last_name", NonEmpty("Last name is required")).
		Field("email", Email("Valid email is required")).
		Optional("salary", Numeric("Salary must be a number")).
		Optional("date_of_joining", ISODate("Date of joining must be an ISO date"))
}

// EmployeeUpdateRules validates a partial update; every field is optional.
func EmployeeUpdateRules() RuleSet {
	return RuleSet{}.
		Optional("first_name", NonEmpty("First name must not be empty")).
		Optional("last_name", NonEmpty("Last name must not be empty")).
		Optional("email", Email("Email must be valid")).
		Optional("salary", Numeric("Salary must be a number")).
		Optional("date_of_joining", ISODate("Date of joining must be an ISO date"))
}
