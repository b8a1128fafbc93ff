package validator

import (
	"fmt"
	"regexp"
)

// Matches validates that value matches re. Patterns are compiled by the caller
// so hot paths never recompile.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
		},
	}
}

// NotMatches validates that no pattern in res matches value.
func NotMatches(field, value string, description string, res ...*regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			for _, re := range res {
				if re.MatchString(value) {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not match %s pattern", description),
			TranslationKey: "validation.regex_not_pattern",
		},
	}
}
