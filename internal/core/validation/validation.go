// Package validation implements the declarative field-rule evaluator used by
// the account registry and session flows. Rules are a tagged variant type
// dispatched by kind; per field the first failing rule wins and stops that
// field, while evaluation continues across fields so messages accumulate in
// field declaration order.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/acmebank/acmebank/internal/apperrors"
)

// RuleKind discriminates the rule variants.
type RuleKind int

const (
	KindRequired RuleKind = iota
	KindMinLength
	KindEmail
	KindPhone
	KindPassword
	KindCustom
)

const minPasswordLength = 6

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// Rule is one check applied to a field value. Message, when set, overrides
// the default text for the rule kind.
type Rule struct {
	Kind    RuleKind
	Min     int
	Check   func(value string) error
	Message string
}

// Required fails on values that are empty after trimming.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

// MinLength fails on values shorter than n characters.
func MinLength(n int, message string) Rule {
	return Rule{Kind: KindMinLength, Min: n, Message: message}
}

// Email fails on values that do not look like an email address.
func Email(message string) Rule {
	return Rule{Kind: KindEmail, Message: message}
}

// Phone fails unless the value is exactly ten digits after stripping spaces.
func Phone(message string) Rule {
	return Rule{Kind: KindPhone, Message: message}
}

// Password fails on values shorter than the minimum password length.
func Password(message string) Rule {
	return Rule{Kind: KindPassword, Message: message}
}

// Custom wraps an arbitrary check; the returned error's text is the message.
func Custom(check func(value string) error) Rule {
	return Rule{Kind: KindCustom, Check: check}
}

// Field pairs a named input value with its ordered rule set.
type Field struct {
	Name  string
	Value string
	Rules []Rule
}

// Result holds the accumulated messages of one Validate call.
type Result struct {
	Messages []string
}

// OK reports whether no field produced an error.
func (r Result) OK() bool {
	return len(r.Messages) == 0
}

// Err returns a *apperrors.ValidationError carrying the messages, or nil when
// validation passed.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &apperrors.ValidationError{Messages: r.Messages}
}

// Validate evaluates every field in declaration order. A required-but-empty
// field records its message and skips the remaining rules; an optional empty
// field is skipped entirely. Otherwise rules run in declared order until the
// first failure for that field.
func Validate(fields ...Field) Result {
	var res Result
	for _, f := range fields {
		if msg := evaluate(f); msg != "" {
			res.Messages = append(res.Messages, msg)
		}
	}
	return res
}

func evaluate(f Field) string {
	trimmed := strings.TrimSpace(f.Value)
	if trimmed == "" {
		for _, r := range f.Rules {
			if r.Kind == KindRequired {
				return message(f, r)
			}
		}
		return ""
	}
	for _, r := range f.Rules {
		if failed := apply(f.Value, r); failed != "" {
			if r.Message != "" {
				return r.Message
			}
			return failed
		}
	}
	return ""
}

func apply(value string, r Rule) string {
	switch r.Kind {
	case KindRequired:
		// Non-empty by the time apply runs.
		return ""
	case KindMinLength:
		if len(value) < r.Min {
			return fmt.Sprintf("must be at least %d characters", r.Min)
		}
	case KindEmail:
		if !emailPattern.MatchString(value) {
			return "enter a valid email address"
		}
	case KindPhone:
		if !phonePattern.MatchString(strings.ReplaceAll(value, " ", "")) {
			return "enter a valid phone number (10 digits)"
		}
	case KindPassword:
		if len(value) < minPasswordLength {
			return fmt.Sprintf("password must be at least %d characters", minPasswordLength)
		}
	case KindCustom:
		if r.Check != nil {
			if err := r.Check(value); err != nil {
				return err.Error()
			}
		}
	}
	return ""
}

func message(f Field, r Rule) string {
	if r.Message != "" {
		return r.Message
	}
	return fmt.Sprintf("the %s field is required", f.Name)
}
