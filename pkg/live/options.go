package live

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/contactform/pkg/form"
)

// Config holds the host settings.
type Config struct {
	CookieName      string        `env:"LIVE_COOKIE_NAME" envDefault:"contactform_session"`
	SessionTTL      time.Duration `env:"LIVE_SESSION_TTL" envDefault:"30m"`
	JanitorInterval time.Duration `env:"LIVE_JANITOR_INTERVAL" envDefault:"1m"`
	SecureCookie    bool          `env:"LIVE_SECURE_COOKIE" envDefault:"false"`
	// StreamBuffer is the number of pending changes kept per stream.
	StreamBuffer int `env:"LIVE_STREAM_BUFFER" envDefault:"256"`
}

func defaultConfig() Config {
	return Config{
		CookieName:      "contactform_session",
		SessionTTL:      30 * time.Minute,
		JanitorInterval: time.Minute,
		StreamBuffer:    256,
	}
}

// Option configures a Host.
type Option func(*Host)

// WithConfig sets the host settings. Zero values keep their defaults.
func WithConfig(cfg Config) Option {
	return func(h *Host) {
		d := defaultConfig()
		if cfg.CookieName == "" {
			cfg.CookieName = d.CookieName
		}
		if cfg.SessionTTL <= 0 {
			cfg.SessionTTL = d.SessionTTL
		}
		if cfg.JanitorInterval <= 0 {
			cfg.JanitorInterval = d.JanitorInterval
		}
		if cfg.StreamBuffer <= 0 {
			cfg.StreamBuffer = d.StreamBuffer
		}
		h.cfg = cfg
	}
}

// WithFormConfig sets the controller timings used by new sessions.
func WithFormConfig(cfg form.Config) Option {
	return func(h *Host) { h.formCfg = cfg }
}

// WithSender makes every session send through s instead of the simulated sender.
func WithSender(s form.Sender) Option {
	return func(h *Host) { h.sender = s }
}

func WithLogger(l *slog.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}
