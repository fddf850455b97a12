package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig indicates how many requests are allowed within a given interval.
type RateLimitConfig struct {
	Requests int
	Interval time.Duration
}

// SearchDefaults are applied to restaurant searches when the caller omits a value.
type SearchDefaults struct {
	Location string
	Term     string
	Limit    int
	SortBy   string
}

// Config aggregates application-wide configuration values.
type Config struct {
	Env          string
	Port         string
	APIPrefix    string
	CORSOrigins  []string
	YelpAPIKey   string
	YelpBaseURL  string
	YelpDumpPath string
	OpenAIAPIKey string
	OpenAIModel  string
	Defaults     SearchDefaults
	RateLimit    RateLimitConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Env:          getEnv("APP_ENV", "production"),
		Port:         getEnv("PORT", "8000"),
		APIPrefix:    normalizePrefix(getEnv("API_PREFIX", "/api")),
		CORSOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		YelpAPIKey:   strings.TrimSpace(os.Getenv("YELP_API_KEY")),
		YelpBaseURL:  strings.TrimRight(getEnv("YELP_API_URL", "https://api.yelp.com/v3"), "/"),
		YelpDumpPath: strings.TrimSpace(os.Getenv("YELP_DEBUG_DUMP")),
		OpenAIAPIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		Defaults: SearchDefaults{
			Location: getEnv("DEFAULT_LOCATION", "Toronto"),
			Term:     getEnv("DEFAULT_TERM", "restaurant"),
			SortBy:   getEnv("DEFAULT_SORT_BY", "best_match"),
		},
	}

	if cfg.YelpAPIKey == "" {
		return nil, errors.New("YELP_API_KEY environment variable must be set")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.New("OPENAI_API_KEY environment variable must be set")
	}

	limit, err := strconv.Atoi(getEnv("DEFAULT_LIMIT", "20"))
	if err != nil || limit < 1 || limit > 50 {
		return nil, fmt.Errorf("invalid DEFAULT_LIMIT value: must be an integer between 1 and 50")
	}
	cfg.Defaults.Limit = limit

	switch cfg.Defaults.SortBy {
	case "best_match", "rating", "review_count", "distance":
	default:
		return nil, fmt.Errorf("invalid DEFAULT_SORT_BY value: %s", cfg.Defaults.SortBy)
	}

	rl, err := parseRateLimit(getEnv("RATE_LIMIT_PROFILE", "10/min"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PROFILE value: %w", err)
	}
	cfg.RateLimit = rl

	return cfg, nil
}

// IsDevelopment reports whether the service runs in a local development setup.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
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

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		return strings.TrimSpace(val)
	}
	return fallback
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

func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
