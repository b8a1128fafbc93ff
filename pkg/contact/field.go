package contact

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

// Field identifies one of the contact form inputs.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists every field in display order.
var Fields = []Field{FieldName, FieldEmail, FieldMessage}

func (f Field) String() string { return string(f) }

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	switch f {
	case FieldName, FieldEmail, FieldMessage:
		return true
	}
	return false
}

// FieldRule bundles the constraints of a field. Zero lengths and a nil Pattern
// mean the constraint is unset. Validate runs the complete ordered check
// sequence and is the only member consulted when validating.
type FieldRule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   *regexp.Regexp
	Validate  func(value string) string
}

var rules = map[Field]FieldRule{
	FieldName: {
		Required:  true,
		MinLength: nameMinLength,
		MaxLength: nameMaxLength,
		Pattern:   namePattern,
		Validate:  ValidateName,
	},
	FieldEmail: {
		Required: true,
		Pattern:  emailPattern,
		Validate: ValidateEmail,
	},
	FieldMessage: {
		Required:  true,
		MinLength: messageMinLength,
		MaxLength: MaxMessageLength,
		Validate:  ValidateMessage,
	},
}

// Rules returns the rule set for every field. The returned map is a copy.
func Rules() map[Field]FieldRule {
	out := make(map[Field]FieldRule, len(rules))
	for f, r := range rules {
		out[f] = r
	}
	return out
}

// Validate returns the rejection message for value, or "" when it is accepted.
// Unknown fields are always accepted.
func Validate(field Field, value string) string {
	rule, ok := rules[field]
	if !ok || rule.Validate == nil {
		return ""
	}
	return rule.Validate(value)
}

// Error is Validate for callers that want an error. It returns nil when value
// is accepted, otherwise a validator.ValidationErrors with a single entry.
func Error(field Field, value string) error {
	msg := Validate(field, value)
	if msg == "" {
		return nil
	}
	return validator.ValidationErrors{{Field: field.String(), Message: msg}}
}

// Normalize returns value the way the field's validator reads it: trimmed,
// and lower-cased for email.
func Normalize(field Field, value string) string {
	if field == FieldEmail {
		return NormalizeEmail(value)
	}
	return trim(value)
}

// trim strips leading and trailing Unicode whitespace and byte order marks.
func trim(value string) string {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
}
