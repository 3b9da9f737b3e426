// Package form implements the linked-record form flow shared by every
// create/edit screen in the back office: declarative field validation, a
// debounced existence checker for foreign-key fields, and a controller
// that gates submission on both.
package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Draft is an in-progress create or edit of a domain entity, keyed by
// field name. Values are kept as strings the way the dashboard sends them.
type Draft map[string]string

// Clone returns an independent copy of the draft.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// sumTolerance is the absolute float drift accepted by EqualsSum before a
// mismatch is flagged.
const sumTolerance = 0.01

type ruleKind int

const (
	ruleRequired ruleKind = iota
	rulePositiveInteger
	rulePositiveNumber
	ruleNonNegativeNumber
	ruleEqualsSum
)

// Rule is a single declarative validation applied to one field.
type Rule struct {
	kind    ruleKind
	sumA    string
	sumB    string
	message string
}

// Required flags empty values.
func Required() Rule {
	return Rule{kind: ruleRequired}
}

// PositiveInteger flags values that do not parse as an integer greater
// than zero.
func PositiveInteger() Rule {
	return Rule{kind: rulePositiveInteger}
}

// PositiveNumber flags values that do not parse as a number greater than
// zero.
func PositiveNumber() Rule {
	return Rule{kind: rulePositiveNumber}
}

// NonNegativeNumber flags values that do not parse as a number of zero or
// more. Used for amounts where zero is a legitimate entry, like tax.
func NonNegativeNumber() Rule {
	return Rule{kind: ruleNonNegativeNumber}
}

// EqualsSum flags the field when it does not equal fieldA + fieldB within
// the shared tolerance.
func EqualsSum(fieldA, fieldB string) Rule {
	return Rule{kind: ruleEqualsSum, sumA: fieldA, sumB: fieldB}
}

// WithMessage overrides the default violation message.
func (r Rule) WithMessage(msg string) Rule {
	r.message = msg
	return r
}

// Rules maps field names to the validations applied to them.
type Rules map[string][]Rule

// Validate evaluates every rule on every field so all violations surface
// at once; the first violated rule per field supplies its message.
func Validate(draft Draft, rules Rules) map[string]string {
	errs := make(map[string]string)
	for field, fieldRules := range rules {
		for _, rule := range fieldRules {
			if _, taken := errs[field]; taken {
				continue
			}
			if msg, ok := rule.check(field, draft); !ok {
				errs[field] = msg
			}
		}
	}
	return errs
}

func (r Rule) check(field string, draft Draft) (string, bool) {
	value := strings.TrimSpace(draft[field])
	switch r.kind {
	case ruleRequired:
		if value == "" {
			return r.violation("This field is required"), false
		}
	case rulePositiveInteger:
		if value == "" {
			return "", true
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n <= 0 {
			return r.violation("must be a positive number"), false
		}
	case rulePositiveNumber:
		if value == "" {
			return "", true
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return r.violation("must be a positive number"), false
		}
	case ruleNonNegativeNumber:
		if value == "" {
			return "", true
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n < 0 {
			return r.violation("must not be negative"), false
		}
	case ruleEqualsSum:
		total, errT := strconv.ParseFloat(value, 64)
		a, errA := strconv.ParseFloat(strings.TrimSpace(draft[r.sumA]), 64)
		b, errB := strconv.ParseFloat(strings.TrimSpace(draft[r.sumB]), 64)
		if errT != nil || errA != nil || errB != nil {
			// Unparsable operands are reported by the numeric rules.
			return "", true
		}
		if math.Abs(total-(a+b)) > sumTolerance {
			return r.violation(fmt.Sprintf("must equal %s plus %s", r.sumA, r.sumB)), false
		}
	}
	return "", true
}

func (r Rule) violation(fallback string) string {
	if r.message != "" {
		return r.message
	}
	return fallback
}

// StripNonDigits keeps only ASCII digits, the storage policy for
// numeric-only fields.
func StripNonDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
