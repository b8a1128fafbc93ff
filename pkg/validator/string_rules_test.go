package validator_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/pkg/validator"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"non-empty", "John", true},
		{"empty", "", false},
		{"whitespace only", "  \t ", false},
		{"padded content", "  John  ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.Required("name", tt.value).Check())
		})
	}
}

func TestLengthRules_CountCharacters(t *testing.T) {
	// "Zoë" is 3 characters but 4 bytes.
	assert.True(t, validator.MaxLen("name", "Zoë", 3).Check())
	assert.True(t, validator.MinLen("name", "Zoë", 3).Check())
	assert.False(t, validator.MinLen("name", "Zoë", 4).Check())
	assert.False(t, validator.MaxLen("name", "Zoë", 2).Check())
}

func TestWordRules(t *testing.T) {
	words := strings.Fields("one two three")

	assert.True(t, validator.MinWords("message", words, 3).Check())
	assert.False(t, validator.MinWords("message", words, 4).Check())
	assert.True(t, validator.MaxWords("message", words, 3).Check())
	assert.False(t, validator.MaxWords("message", words, 2).Check())
}

func TestMaxRun(t *testing.T) {
	newline := func(r rune) bool { return r == '\n' }

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"no repetition", "abcdef", true},
		{"run of four", "aaaab", true},
		{"run of five", "xaaaaay", false},
		{"runs of different characters", "aaaabbbb", true},
		{"ignored runes break runs", "aa\naa\naa", true},
		{"ignored runes are not counted", "\n\n\n\n\n\n", true},
		{"multibyte runes", "ééééé", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.MaxRun("message", tt.value, 4, newline).Check())
		})
	}
}

func TestNotOneOf(t *testing.T) {
	denied := []string{"test.com", "example.com"}

	assert.False(t, validator.NotOneOf("email", "example.com", denied).Check())
	assert.True(t, validator.NotOneOf("email", "gmail.com", denied).Check())
}

func TestPatternRules(t *testing.T) {
	letters := regexp.MustCompile(`^[a-z]+$`)
	digits := regexp.MustCompile(`\d`)
	bangs := regexp.MustCompile(`!{3,}`)

	assert.True(t, validator.Matches("name", "abc", letters, "letters").Check())
	assert.False(t, validator.Matches("name", "ab1", letters, "letters").Check())

	assert.True(t, validator.NotMatches("message", "hello!", "spam", digits, bangs).Check())
	assert.False(t, validator.NotMatches("message", "hello!!!", "spam", digits, bangs).Check())
	assert.False(t, validator.NotMatches("message", "win 100", "spam", digits, bangs).Check())
}
