package config

import (
	"fmt"
	"strings"

	"github.com/lanchonete/backend/internal/domain/partner"
	"github.com/lanchonete/backend/internal/domain/shared/valueobject"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App AppConfig
	Log LogConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name           string
	Env            string
	MaxNameLength  int
	AnonymousEmail string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with LANCHONETE_ prefix (e.g., LANCHONETE_APP_ENV)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("LANCHONETE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name:           v.GetString("app.name"),
			Env:            v.GetString("app.env"),
			MaxNameLength:  v.GetInt("app.max_name_length"),
			AnonymousEmail: v.GetString("app.anonymous_email"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "lanchonete-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.MaxNameLength == 0 {
		cfg.App.MaxNameLength = valueobject.DefaultMaxNameLength
	}
	if cfg.App.AnonymousEmail == "" {
		cfg.App.AnonymousEmail = partner.DefaultAnonymousEmail
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.App.MaxNameLength < 1 {
		return fmt.Errorf("app.max_name_length must be positive")
	}
	if _, err := valueobject.NewEmail(c.App.AnonymousEmail); err != nil {
		return fmt.Errorf("app.anonymous_email is invalid: %w", err)
	}
	if c.App.AnonymousEmail == "" {
		return fmt.Errorf("app.anonymous_email cannot be empty")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console")
	}

	return nil
}

// ApplyDomainSettings pushes configured limits into the domain packages. Call
// once at startup before any value object is constructed.
func (c *Config) ApplyDomainSettings() {
	valueobject.SetMaxNameLength(c.App.MaxNameLength)
	partner.SetAnonymousEmail(c.App.AnonymousEmail)
}
