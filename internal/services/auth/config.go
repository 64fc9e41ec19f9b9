package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultTokenTTL is how long issued tokens stay valid
const DefaultTokenTTL = 2 * time.Hour

// configEnv holds raw env values before post-parse validation
type configEnv struct {
	Key      string `env:"GAMELEDGER_JWT_KEY"`
	Issuer   string `env:"GAMELEDGER_JWT_ISSUER"`
	Audience string `env:"GAMELEDGER_JWT_AUDIENCE"`
}

// Config holds token signing configuration.
// All three values must be present before the login route may be served.
type Config struct {
	Key      string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

// LoadConfigFromEnv reads and validates signing configuration.
// A missing or blank value is a startup failure, not a per-request one.
func LoadConfigFromEnv() (Config, error) {
	var raw configEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse auth env: %w", err)
	}

	cfg := Config{
		Key:      strings.TrimSpace(raw.Key),
		Issuer:   strings.TrimSpace(raw.Issuer),
		Audience: strings.TrimSpace(raw.Audience),
		TokenTTL: DefaultTokenTTL,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing signing configuration
func (c Config) Validate() error {
	if strings.TrimSpace(c.Key) == "" {
		return errors.New("missing configuration GAMELEDGER_JWT_KEY")
	}
	if strings.TrimSpace(c.Issuer) == "" {
		return errors.New("missing configuration GAMELEDGER_JWT_ISSUER")
	}
	if strings.TrimSpace(c.Audience) == "" {
		return errors.New("missing configuration GAMELEDGER_JWT_AUDIENCE")
	}
	if c.TokenTTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	return nil
}
