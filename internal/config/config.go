// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds configuration shared by the binaries.
type Config struct {
	Port        string
	Environment string
	LogLevel    zerolog.Level
	LogFormat   string

	OTPBaseURL         string
	OTPRouter          string
	OTPStatusTimeout   time.Duration
	OTPPlanTimeout     time.Duration
	OTPNumItineraries  int
	OTPMaxWalkDistance int

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	MemoryFile    string
	RedisAddress  string
	PlanCacheTTL  time.Duration
	GTFSStopsFile string

	WarmInterval time.Duration

	OTelEnabled     bool
	OTLPEndpoint    string
	OTelSampleRatio float64
	RequireTLS      bool
}

// NERenabled reports whether the language model fallback is configured.
func (c Config) NERenabled() bool {
	return c.GeminiAPIKey != ""
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads an optional .env file and then the environment. Every invalid
// value is reported in one joined error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	p := &parser{}
	cfg := Config{
		Port:        getEnvOrDefault("APP_PORT", "8080"),
		Environment: getEnvOrDefault("APP_ENV", "development"),
		LogLevel:    p.level("LOG_LEVEL", zerolog.InfoLevel),
		LogFormat:   getEnvOrDefault("LOG_FORMAT", "json"),

		OTPBaseURL:         strings.TrimRight(getEnvOrDefault("OTP_BASE_URL", "http://localhost:8080"), "/"),
		OTPRouter:          getEnvOrDefault("OTP_ROUTER", "default"),
		OTPStatusTimeout:   p.duration("OTP_STATUS_TIMEOUT", 5*time.Second),
		OTPPlanTimeout:     p.duration("OTP_PLAN_TIMEOUT", 20*time.Second),
		OTPNumItineraries:  p.positiveInt("OTP_NUM_ITINERARIES", 3),
		OTPMaxWalkDistance: p.positiveInt("OTP_MAX_WALK_DISTANCE", 2000),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		GeminiTimeout: p.duration("GEMINI_TIMEOUT", 10*time.Second),

		MemoryFile:    getEnvOrDefault("MEMORY_FILE", "user_memory.json"),
		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		PlanCacheTTL:  p.duration("PLAN_CACHE_TTL", 5*time.Minute),
		GTFSStopsFile: os.Getenv("GTFS_STOPS_FILE"),

		WarmInterval: p.duration("WARM_INTERVAL", 10*time.Minute),

		OTelEnabled:     p.boolean("OTEL_ENABLED", false),
		OTLPEndpoint:    getEnvOrDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		OTelSampleRatio: p.ratio("OTEL_SAMPLE_RATIO", 1),
		RequireTLS:      p.boolean("REQUIRE_TLS", false),
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		p.fail("LOG_FORMAT", cfg.LogFormat, "must be json or console")
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the root logger for a binary.
func (c Config) NewLogger(service, version string) zerolog.Logger {
	var log zerolog.Logger
	if c.LogFormat == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stdout)
	}
	return log.Level(c.LogLevel).
		With().
		Timestamp().
		Str("service", service).
		Str("version", version).
		Logger()
}

type parser struct {
	errs []error
}

func (p *parser) fail(key, value, reason string) {
	p.errs = append(p.errs, fmt.Errorf("%s=%q: %s", key, value, reason))
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.fail(key, v, "must be a positive duration")
		return def
	}
	return d
}

func (p *parser) positiveInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		p.fail(key, v, "must be a positive integer")
		return def
	}
	return n
}

func (p *parser) ratio(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 || f > 1 {
		p.fail(key, v, "must be a number in (0, 1]")
		return def
	}
	return f
}

func (p *parser) boolean(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, "must be a boolean")
		return def
	}
	return b
}

func (p *parser) level(key string, def zerolog.Level) zerolog.Level {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	l, err := zerolog.ParseLevel(strings.ToLower(v))
	if err != nil {
		p.fail(key, v, "must be a zerolog level")
		return def
	}
	return l
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
