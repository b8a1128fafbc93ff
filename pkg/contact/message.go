package contact

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

const (
	// MaxMessageLength is the message limit in characters, shared with the counter.
	MaxMessageLength = 1000

	messageMinLength = 10
	messageMinWords  = 3
	messageMaxWords  = 200
	messageMaxRun    = 4
)

var spamPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(buy now|click here|free money|guaranteed|no risk)\b`),
	regexp.MustCompile(`\$+\d+`),
	regexp.MustCompile(`[A-Z]{10,}`),
	regexp.MustCompile(`!{3,}`),
}

// ValidateMessage checks the message body. It returns "" when the message is accepted.
func ValidateMessage(value string) string {
	v, f := trim(value), FieldMessage.String()
	words := strings.Fields(v)

	return validator.Message(validator.First(
		validator.Required(f, v).
			WithMessage("Message is required"),
		validator.MinLen(f, v, messageMinLength).
			WithMessage("Message must be at least 10 characters long"),
		validator.MaxLen(f, v, MaxMessageLength).
			WithMessage("Message must not exceed 1000 characters"),
		validator.MaxRun(f, v, messageMaxRun, isLineTerminator).
			WithMessage("Please avoid excessive repetition of characters"),
		validator.MinWords(f, words, messageMinWords).
			WithMessage("Message should contain at least 3 words"),
		validator.MaxWords(f, words, messageMaxWords).
			WithMessage("Message is too long (maximum 200 words)"),
		validator.NotMatches(f, v, "spam", spamPatterns...).
			WithMessage("Message appears to contain spam-like content"),
	))
}

func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}
