package validation

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// validate backs the format predicates
var validate = validator.New()

// Rule is a single declarative field rule: a predicate plus the
// human-readable message emitted when the predicate fails.
type Rule struct {
	Field   string
	Message string
	Check   func(ctx context.Context) (bool, error)
}

// RuleSet is an ordered list of rules. Rules are evaluated in declaration
// order and every rule runs regardless of earlier failures, so the caller
// receives one message per violated rule.
type RuleSet []Rule

// Evaluate runs all rules and returns the ordered messages of the violated
// ones. A non-nil error means a predicate could not be evaluated (e.g. a
// uniqueness lookup failed) and the result is unusable.
func (rs RuleSet) Evaluate(ctx context.Context) ([]string, error) {
	var messages []string
	for _, rule := range rs {
		ok, err := rule.Check(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			messages = append(messages, rule.Message)
		}
	}
	return messages, nil
}

// NotEmpty builds a predicate that fails for the empty string.
func NotEmpty(value string) func(context.Context) (bool, error) {
	return func(context.Context) (bool, error) {
		return value != "", nil
	}
}

// Present builds a predicate that checks a field was supplied at all.
// Presence only: an empty value passes.
func Present[T any](value *T) func(context.Context) (bool, error) {
	return func(context.Context) (bool, error) {
		return value != nil, nil
	}
}

// IsEmail builds a predicate that checks email syntax.
func IsEmail(value string) func(context.Context) (bool, error) {
	return func(context.Context) (bool, error) {
		return validate.Var(value, "email") == nil, nil
	}
}

// Unique builds a predicate from an existence lookup: it fails when the
// lookup reports the value as already taken.
func Unique(exists func(ctx context.Context) (bool, error)) func(context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		taken, err := exists(ctx)
		if err != nil {
			return false, err
		}
		return !taken, nil
	}
}
