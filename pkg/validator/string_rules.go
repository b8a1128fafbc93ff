package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}
}

// MinLen validates the length of value in characters, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
		},
	}
}

// MaxLen validates the length of value in characters, not bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
		},
	}
}

// MinWords validates that words holds at least min entries.
// Splitting is left to the caller so each field can define what a word is.
func MinWords(field string, words []string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(words) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at least %d words", min),
			TranslationKey: "validation.min_words",
		},
	}
}

func MaxWords(field string, words []string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(words) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must contain at most %d words", max),
			TranslationKey: "validation.max_words",
		},
	}
}

// MaxRun validates that no character repeats more than max times in a row.
// Runes for which ignore returns true break a run and are never counted.
func MaxRun(field, value string, max int, ignore func(rune) bool) Rule {
	return Rule{
		Check: func() bool {
			return longestRun(value, ignore) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must not repeat a character more than %d times", max),
			TranslationKey: "validation.max_run",
		},
	}
}

// NotOneOf validates that value is not in the denied set.
func NotOneOf(field, value string, denied []string) Rule {
	return Rule{
		Check: func() bool {
			return !slices.Contains(denied, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "value is not allowed",
			TranslationKey: "validation.not_one_of",
		},
	}
}

// Check adapts an arbitrary predicate into a Rule.
func Check(field, message string, fn func() bool) Rule {
	return Rule{
		Check: fn,
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: "validation.custom",
		},
	}
}

func longestRun(value string, ignore func(rune) bool) int {
	var (
		longest, run int
		prev         rune
	)
	for _, r := range value {
		if ignore != nil && ignore(r) {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		prev = r
		longest = max(longest, run)
	}
	return longest
}
