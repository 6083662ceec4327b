package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL        string
	DBMaxConns         int32
	MigrateOnStart     bool
	Port               string
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	DefaultPhoneRegion string
	RequestTimeout     time.Duration
	RateLimitContact   RateLimitConfig
}

var defaults = map[string]any{
	"port":                 "8080",
	"database_url":         "",
	"db_max_conns":         10,
	"migrate_on_start":     false,
	"log_level":            "info",
	"log_format":           "json",
	"cors_allowed_origins": "*",
	"default_phone_region": "TM",
	"request_timeout":      "10s",
	"rate_limit_contact":   "5/min",
}

// Load reads configuration from an optional config.yaml and environment
// variables, falling back to defaults. Environment variables win.
func Load() (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getEnv("CONFIG_PATH", "."))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:        v.GetString("database_url"),
		DBMaxConns:         v.GetInt32("db_max_conns"),
		MigrateOnStart:     v.GetBool("migrate_on_start"),
		Port:               v.GetString("port"),
		LogLevel:           strings.ToLower(v.GetString("log_level")),
		LogFormat:          strings.ToLower(v.GetString("log_format")),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
		DefaultPhoneRegion: strings.ToUpper(v.GetString("default_phone_region")),
		RequestTimeout:     parseDuration(v.GetString("request_timeout")),
	}

	rl, err := parseRateLimit(v.GetString("rate_limit_contact"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_CONTACT value: %w", err)
	}
	cfg.RateLimitContact = rl

	return cfg, nil
}

func parseRateLimit(value string) (RateLimitConfig, error) {
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		return RateLimitConfig{}, fmt.Errorf("expected format <requests>/<interval>, got %q", value)
	}

	requests, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || requests <= 0 {
		return RateLimitConfig{}, fmt.Errorf("invalid request count: %v", parts[0])
	}

	unit := strings.ToLower(strings.TrimSpace(parts[1]))
	var interval time.Duration
	switch unit {
	case "s", "sec", "second", "seconds":
		interval = time.Second
	case "m", "min", "minute", "minutes":
		interval = time.Minute
	case "h", "hr", "hour", "hours":
		interval = time.Hour
	default:
		return RateLimitConfig{}, fmt.Errorf("unsupported interval unit: %s", unit)
	}

	return RateLimitConfig{Requests: requests, Interval: interval}, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
