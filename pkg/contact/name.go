package contact

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

const (
	nameMinLength = 2
	nameMaxLength = 50
	nameMaxWords  = 5
)

var (
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	nameExtraSpaces = regexp.MustCompile(`\s{2,}`)
)

// ValidateName checks a person's name. It returns "" when the name is accepted.
func ValidateName(value string) string {
	v, f := trim(value), FieldName.String()
	return validator.Message(validator.First(
		validator.Required(f, v).
			WithMessage("Name is required"),
		validator.MinLen(f, v, nameMinLength).
			WithMessage("Name must be at least 2 characters long"),
		validator.MaxLen(f, v, nameMaxLength).
			WithMessage("Name must not exceed 50 characters"),
		validator.Matches(f, v, namePattern, "name").
			WithMessage("Name can only contain letters, spaces, hyphens, and apostrophes"),
		// Pieces between single spaces, so consecutive spaces yield empty pieces.
		validator.MaxWords(f, strings.Split(v, " "), nameMaxWords).
			WithMessage("Please enter a valid name (too many words)"),
		validator.NotMatches(f, v, "extra spaces", nameExtraSpaces).
			WithMessage("Please remove extra spaces from your name"),
	))
}
