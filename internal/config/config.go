// Package config loads service configuration from an optional YAML
// file with environment variable expansion, then applies
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig holds server address and timeout configuration.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"-"`
	IdleTimeout       time.Duration `yaml:"-"`
	ShutdownTimeout   time.Duration `yaml:"-"`

	// Raw string values for YAML unmarshaling.
	ReadHeaderTimeoutRaw string `yaml:"read_header_timeout"`
	IdleTimeoutRaw       string `yaml:"idle_timeout"`
	ShutdownTimeoutRaw   string `yaml:"shutdown_timeout"`
}

// DatabaseConfig holds document store configuration.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig holds token and password hashing configuration.
type AuthConfig struct {
	TokenSecret string `yaml:"token_secret"`
	BcryptCost  int    `yaml:"bcrypt_cost"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load returns the configuration assembled from defaults, the YAML
// file at path (optional; pass "" to skip), and environment variable
// overrides, in that order of precedence. Values in the YAML file in
// the format ${VAR_NAME} are expanded from the environment.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		expanded := envVarPattern.ReplaceAllStringFunc(string(data), func(match string) string {
			return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
		})
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.parseDurations(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:                 ":3000",
			ReadHeaderTimeoutRaw: "10s",
			IdleTimeoutRaw:       "120s",
			ShutdownTimeoutRaw:   "5s",
		},
		Database: DatabaseConfig{Path: "preferensi.db"},
		Auth:     AuthConfig{BcryptCost: 12},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if path := os.Getenv("DATABASE_PATH"); path != "" {
		c.Database.Path = path
	}
	if secret := os.Getenv("TOKEN_KEY"); secret != "" {
		c.Auth.TokenSecret = secret
	}
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		parsed, err := strconv.Atoi(cost)
		if err != nil {
			return fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		c.Auth.BcryptCost = parsed
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}
	return nil
}

func (c *Config) parseDurations() error {
	for _, d := range []struct {
		raw string
		dst *time.Duration
	}{
		{c.Server.ReadHeaderTimeoutRaw, &c.Server.ReadHeaderTimeout},
		{c.Server.IdleTimeoutRaw, &c.Server.IdleTimeout},
		{c.Server.ShutdownTimeoutRaw, &c.Server.ShutdownTimeout},
	} {
		parsed, err := time.ParseDuration(d.raw)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", d.raw, err)
		}
		*d.dst = parsed
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Auth.TokenSecret == "" {
		return fmt.Errorf("auth.token_secret (or TOKEN_KEY) is required")
	}
	if len(c.Auth.TokenSecret) < 32 {
		return fmt.Errorf("auth.token_secret must be at least 32 characters for HMAC-SHA256 security")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 14 {
		return fmt.Errorf("auth.bcrypt_cost must be between 4 and 14, got %d", c.Auth.BcryptCost)
	}
	return nil
}
