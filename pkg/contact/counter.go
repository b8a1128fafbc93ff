package contact

import (
	"fmt"
	"unicode/utf8"
)

// CounterBand classifies how close the message is to MaxMessageLength.
type CounterBand int

const (
	CounterNormal CounterBand = iota
	CounterWarning
	CounterDanger
)

// Class returns the CSS class for the band, "" for CounterNormal.
func (b CounterBand) Class() string {
	switch b {
	case CounterWarning:
		return "warning"
	case CounterDanger:
		return "danger"
	}
	return ""
}

// Counter is the derived state of the character counter.
type Counter struct {
	Length int
	Max    int
	Band   CounterBand
}

// Text renders the counter label, e.g. "12 / 1000 characters".
func (c Counter) Text() string {
	return fmt.Sprintf("%d / %d characters", c.Length, c.Max)
}

// CountMessage computes the counter for the raw, untrimmed message.
// Warning starts above 80% of the limit, danger above 95%.
func CountMessage(value string) Counter {
	n := utf8.RuneCountInString(value)
	c := Counter{Length: n, Max: MaxMessageLength}
	switch {
	case n*100 > MaxMessageLength*95:
		c.Band = CounterDanger
	case n*100 > MaxMessageLength*80:
		c.Band = CounterWarning
	}
	return c
}
