package mail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// configEnv holds raw env values before post-parse validation
type configEnv struct {
	SMTPHost    string `env:"GAMELEDGER_SMTP_HOST"`
	SMTPPort    int    `env:"GAMELEDGER_SMTP_PORT" envDefault:"587"`
	SenderName  string `env:"GAMELEDGER_SMTP_SENDER_NAME"`
	SenderEmail string `env:"GAMELEDGER_SMTP_SENDER_EMAIL"`
	Password    string `env:"GAMELEDGER_SMTP_PASSWORD"`
}

// Config holds SMTP sender settings.
// A blank password disables authentication (open relay / local test server).
type Config struct {
	SMTPHost    string
	SMTPPort    int
	SenderName  string
	SenderEmail string
	Password    string
}

// LoadConfigFromEnv reads and validates SMTP configuration
func LoadConfigFromEnv() (Config, error) {
	var raw configEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("parse mail env: %w", err)
	}

	cfg := Config{
		SMTPHost:    strings.TrimSpace(raw.SMTPHost),
		SMTPPort:    raw.SMTPPort,
		SenderName:  strings.TrimSpace(raw.SenderName),
		SenderEmail: strings.TrimSpace(raw.SenderEmail),
		Password:    raw.Password,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing sender configuration
func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return errors.New("missing configuration GAMELEDGER_SMTP_HOST")
	}
	if c.SMTPPort <= 0 {
		return errors.New("GAMELEDGER_SMTP_PORT must be positive")
	}
	if c.SenderEmail == "" {
		return errors.New("missing configuration GAMELEDGER_SMTP_SENDER_EMAIL")
	}
	return nil
}
