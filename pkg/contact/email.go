package contact

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

const (
	emailMaxLength     = 254
	emailMaxLocalPart  = 64
	emailMinDomainPart = 2
)

var emailPattern = regexp.MustCompile(
	"^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// DeniedEmailDomains are rejected even when the address is well formed.
var DeniedEmailDomains = []string{"test.com", "example.com", "temp.com"}

// NormalizeEmail trims and lower-cases an address the way ValidateEmail sees it.
func NormalizeEmail(value string) string {
	return cases.Lower(language.Und).String(trim(value))
}

// ValidateEmail checks an email address. It returns "" when the address is accepted.
func ValidateEmail(value string) string {
	v, f := NormalizeEmail(value), FieldEmail.String()
	local, domain, _ := strings.Cut(v, "@")

	return validator.Message(validator.First(
		validator.Required(f, v).
			WithMessage("Email address is required"),
		validator.Matches(f, v, emailPattern, "email").
			WithMessage("Please enter a valid email address"),
		validator.MaxLen(f, v, emailMaxLength).
			WithMessage("Email address is too long"),
		validator.MaxLen(f, local, emailMaxLocalPart).
			WithMessage("Email address local part is too long"),
		validator.MinLen(f, domain, emailMinDomainPart).
			WithMessage("Please enter a valid domain name"),
		validator.Check(f, "Domain name cannot start or end with a dot", func() bool {
			return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
		}),
		validator.Check(f, "Domain name cannot contain consecutive dots", func() bool {
			return !strings.Contains(domain, "..")
		}),
		validator.NotOneOf(f, domain, DeniedEmailDomains).
			WithMessage("Please enter a real email address"),
	))
}
