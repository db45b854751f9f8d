// Package config loads the server configuration from a TOML file and
// UPCYCLE_* environment variables. Environment values win over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "UPCYCLE_"

// Config holds server and model settings.
type Config struct {
	ServerAddr     string    `toml:"server_addr" env:"SERVER_ADDR"`
	RequestTimeout Duration  `toml:"request_timeout" env:"REQUEST_TIMEOUT"`
	SessionTTL     Duration  `toml:"session_ttl" env:"SESSION_TTL"`
	LLM            LLMConfig `toml:"llm" envPrefix:"LLM_"`
}

// LLMConfig 生成模块的模型配置。
type LLMConfig struct {
	Provider    string `toml:"provider" env:"PROVIDER"`
	Model       string `toml:"model" env:"MODEL"`
	BaseURL     string `toml:"base_url" env:"BASE_URL"`
	ValidateKey bool   `toml:"validate_key" env:"VALIDATE_KEY"`
}

// Duration is a time.Duration that reads "90s" style strings from TOML and env.
type Duration time.Duration

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerAddr:     ":8080",
		RequestTimeout: Duration(60 * time.Second),
		SessionTTL:     Duration(30 * time.Minute),
		LLM: LLMConfig{
			Provider:    "gemini",
			ValidateKey: true,
		},
	}
}

// LoadConfig reads the TOML file at path (skipped when path is empty) on top
// of Default, then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values LoadConfig cannot default.
func (c Config) Validate() error {
	if c.ServerAddr == "" {
		return errors.New("server_addr must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout must be positive")
	}
	if c.SessionTTL <= 0 {
		return errors.New("session_ttl must be positive")
	}
	switch c.LLM.Provider {
	case "gemini", "openai", "deepseek", "mock":
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	return nil
}
