// Package config handles application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alienxp03/splitdecision/internal/history"
	"github.com/alienxp03/splitdecision/internal/prompt"
)

// Config represents the application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	History   HistoryConfig   `yaml:"history"`
}

// ServerConfig holds server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// OpenAIConfig holds the shared API credential and model default.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// RedisConfig holds Redis connection settings. An empty Addr disables Redis;
// rate limiting is skipped and history falls back to SQLite.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// RateLimitConfig holds free tier quota settings.
type RateLimitConfig struct {
	DailyFreeLimit int `yaml:"daily_free_limit"`
}

// HistoryConfig holds comparison history settings.
type HistoryConfig struct {
	DBPath string `yaml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		OpenAI: OpenAIConfig{
			Model: prompt.DefaultModel,
		},
		RateLimit: RateLimitConfig{
			DailyFreeLimit: 50,
		},
		History: HistoryConfig{
			DBPath: history.DefaultDBPath(),
		},
	}
}

// Load loads configuration from the default path.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from a specific path, layering a .env file
// and process environment variables over the file's values. A missing config
// file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file, proceed with defaults
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env values do not clobber variables already in the environment.
	godotenv.Load()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides updates the configuration from environment variables.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.Server.Port = port
		}
	}
	if val := os.Getenv("OPENAI_API_KEY"); val != "" {
		cfg.OpenAI.APIKey = val
	}
	if val := os.Getenv("DEFAULT_MODEL"); val != "" {
		cfg.OpenAI.Model = val
	}
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		cfg.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		cfg.Redis.Password = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		if db, err := strconv.Atoi(val); err == nil {
			cfg.Redis.DB = db
		}
	}
	if val := os.Getenv("DAILY_FREE_LIMIT"); val != "" {
		if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
			cfg.RateLimit.DailyFreeLimit = limit
		}
	}
	if val := os.Getenv("HISTORY_DB_PATH"); val != "" {
		cfg.History.DBPath = val
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "splitdecision.yaml"
	}
	return filepath.Join(home, ".splitdecision", "config.yaml")
}
