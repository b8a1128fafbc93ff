package form

import "time"

// Config holds the controller timings.
type Config struct {
	NameDebounce     time.Duration `env:"FORM_NAME_DEBOUNCE" envDefault:"500ms"`
	EmailDebounce    time.Duration `env:"FORM_EMAIL_DEBOUNCE" envDefault:"800ms"`
	SendDelay        time.Duration `env:"FORM_SEND_DELAY" envDefault:"2s"`
	SummaryHideDelay time.Duration `env:"FORM_SUMMARY_HIDE_DELAY" envDefault:"3s"`
	ResetDelay       time.Duration `env:"FORM_RESET_DELAY" envDefault:"5s"`
	ShakeDuration    time.Duration `env:"FORM_SHAKE_DURATION" envDefault:"500ms"`
}

// DefaultConfig returns the timings the page ships with.
func DefaultConfig() Config {
	return Config{
		NameDebounce:     500 * time.Millisecond,
		EmailDebounce:    800 * time.Millisecond,
		SendDelay:        2 * time.Second,
		SummaryHideDelay: 3 * time.Second,
		ResetDelay:       5 * time.Second,
		ShakeDuration:    500 * time.Millisecond,
	}
}

// withDefaults fills zero durations from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.NameDebounce <= 0 {
		c.NameDebounce = d.NameDebounce
	}
	if c.EmailDebounce <= 0 {
		c.EmailDebounce = d.EmailDebounce
	}
	if c.SendDelay <= 0 {
		c.SendDelay = d.SendDelay
	}
	if c.SummaryHideDelay <= 0 {
		c.SummaryHideDelay = d.SummaryHideDelay
	}
	if c.ResetDelay <= 0 {
		c.ResetDelay = d.ResetDelay
	}
	if c.ShakeDuration <= 0 {
		c.ShakeDuration = d.ShakeDuration
	}
	return c
}
