package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from app.env under the config path or from environment variables.
type Config struct {
	DBSource            string `mapstructure:"DB_SOURCE"`
	ServerAddress       string `mapstructure:"SERVER_ADDRESS"`
	LogLevel            string `mapstructure:"LOG_LEVEL"`
	LogFormat           string `mapstructure:"LOG_FORMAT"`
	ValidateCoordinates bool   `mapstructure:"VALIDATE_COORDINATES"`
	NearbyLimit         int    `mapstructure:"NEARBY_LIMIT"`
}

var keys = []string{
	"DB_SOURCE",
	"SERVER_ADDRESS",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"VALIDATE_COORDINATES",
	"NEARBY_LIMIT",
}

// LoadConfig reads configuration from path/app.env, overridden by environment variables.
// A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("VALIDATE_COORDINATES", true)
	v.SetDefault("NEARBY_LIMIT", 50)

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()
	// Unmarshal only sees keys viper knows about; env-only keys must be bound.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required fields are present and sane.
func (c Config) Validate() error {
	var errs []string

	if c.DBSource == "" {
		errs = append(errs, "DB_SOURCE is required")
	}
	if c.ServerAddress == "" {
		errs = append(errs, "SERVER_ADDRESS is required")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("LOG_FORMAT must be json or console, got %q", c.LogFormat))
	}
	if c.NearbyLimit <= 0 {
		errs = append(errs, fmt.Sprintf("NEARBY_LIMIT must be positive, got %d", c.NearbyLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
