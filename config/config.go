package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/asifkhanbk/price-calculator/pricing"
)

// EnvPrefix namespaces the environment variables read by Load.
const EnvPrefix = "PRICECALC_"

// Config holds the calculator settings for the CLI.
type Config struct {
	PointsRate int64  `yaml:"points_rate"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PointsRate: pricing.DefaultPointsRate,
		LogLevel:   "info",
		LogFormat:  "console",
	}
}

// Load builds the configuration from defaults, an optional YAML file at path,
// and PRICECALC_* environment variables (optionally from a .env file), in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	_ = godotenv.Load()

	k := koanf.New(".")
	provider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	if raw := strings.TrimSpace(k.String("points_rate")); raw != "" {
		rate, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %sPOINTS_RATE: %w", EnvPrefix, err)
		}
		cfg.PointsRate = rate
	}
	cfg.LogLevel = valueOrDefault(k.String("log_level"), cfg.LogLevel)
	cfg.LogFormat = valueOrDefault(k.String("log_format"), cfg.LogFormat)

	if cfg.PointsRate <= 0 {
		return nil, errors.New("points rate must be positive")
	}
	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
