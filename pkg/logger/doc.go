// Package logger builds log/slog loggers with environment presets and
// context-derived attributes.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "contactform"),
//	    logger.WithContextValue("session_id", sessionKey),
//	)
//	log.Info("served page", logger.SessionID(id))
//
// Attribute helpers (Error, Field, SessionID, Component, Event, Group) keep
// key names consistent across packages.
package logger
