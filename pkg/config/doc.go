// Package config loads application configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing into structs with `env` tags.
// Parsed values are cached per type, so packages can call Load for their own
// config struct without parsing the environment again.
//
//	var cfg form.Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// ResetCache and ForceReload exist for tests that change the environment.
package config
