package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Dataset DatasetConfig `yaml:"dataset"`
	Events  EventsConfig  `yaml:"events"`
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port               int      `yaml:"port"`
	MetricsPort        int      `yaml:"metrics_port"`
	AllowedOrigins     []string `yaml:"allowed_origins"`
	RateLimitPerMinute int      `yaml:"rate_limit_per_minute"`
}

type DatasetConfig struct {
	Path string `yaml:"path"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type EngineConfig struct {
	MaxResults   int     `yaml:"max_results"`
	FallbackLow  float64 `yaml:"fallback_low"`
	FallbackHigh float64 `yaml:"fallback_high"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:               8080,
			MetricsPort:        8081,
			AllowedOrigins:     []string{"*"},
			RateLimitPerMinute: 120,
		},
		Dataset: DatasetConfig{
			Path: "data/phones.csv",
		},
		Engine: EngineConfig{
			MaxResults:   3,
			FallbackLow:  3.5,
			FallbackHigh: 4.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PHONEFINDER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PHONEFINDER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PHONEFINDER_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		if len(origins) > 0 {
			cfg.Server.AllowedOrigins = origins
		}
	}
	if v := os.Getenv("PHONEFINDER_RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RateLimitPerMinute = n
		}
	}
	if v := os.Getenv("PHONEFINDER_DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}
	if v := os.Getenv("PHONEFINDER_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("PHONEFINDER_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MaxResults = n
		}
	}
	if v := os.Getenv("PHONEFINDER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
