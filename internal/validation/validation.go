// Package validation checks candidate users and stores against declarative
// rule tables and reports every violated rule at once.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors lists human-readable messages for every violated rule. A nil or
// empty Errors means the candidate is valid.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// Err returns e as an error, or nil when there are no violations.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Check is a single constraint expressed as a validator tag.
type Check struct {
	Tag     string
	Message string
}

// Field binds a list of checks to one field of T.
type Field[T any] struct {
	Name   string
	Value  func(T) string
	When   func(T) bool // nil means always
	Checks []Check
}

// Rules is an ordered rule table for T.
type Rules[T any] []Field[T]

var engine = validator.New(validator.WithRequiredStructEnabled())

// Validate evaluates every field of the table against v in order.
func (r Rules[T]) Validate(v T) Errors {
	var errs Errors
	for _, f := range r {
		if f.When != nil && !f.When(v) {
			continue
		}
		value := f.Value(v)
		for _, c := range f.Checks {
			if err := engine.Var(value, c.Tag); err != nil {
				errs = append(errs, c.Message)
			}
		}
	}
	return errs
}
