package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidLevel = errors.New("invalid log level")
	ErrInvalidValue = errors.New("invalid config value")
)

const (
	DefaultTeaserCap   = 6
	DefaultPlaceholder = "https://placehold.co/600x400?text=image"
	DefaultURLTTL      = 15 * time.Minute
)

type Config struct {
	TeaserCap    int `validate:"gte=0"`
	LogLevel     slog.Level
	SecretScheme string `validate:"oneof=plaintext argon2id"`
	Images       ImageConfig
}

type ImageConfig struct {
	BaseURL     string `validate:"omitempty,url"`
	Placeholder string `validate:"required,url"`
	S3          S3Config
}

type S3Config struct {
	Endpoint  string `validate:"omitempty,hostname_port"`
	Region    string
	Bucket    string `validate:"required_with=Endpoint"`
	AccessKey string
	SecretKey string
	UseSSL    bool
	URLTTL    time.Duration `validate:"gt=0"`
}

func (c S3Config) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// Load reads FOLIO_* variables, after merging an optional .env file from
// the working directory. Variables already set in the environment win.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}
	return FromLookup(os.LookupEnv)
}

func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return strings.TrimSpace(v)
	}

	cfg := &Config{
		TeaserCap:    DefaultTeaserCap,
		SecretScheme: firstNonEmpty(get("FOLIO_SECRET_SCHEME"), "plaintext"),
		Images: ImageConfig{
			BaseURL:     get("FOLIO_IMAGE_BASE_URL"),
			Placeholder: firstNonEmpty(get("FOLIO_IMAGE_PLACEHOLDER"), DefaultPlaceholder),
			S3: S3Config{
				Endpoint:  get("FOLIO_S3_ENDPOINT"),
				Region:    firstNonEmpty(get("FOLIO_S3_REGION"), "us-east-1"),
				Bucket:    get("FOLIO_S3_BUCKET"),
				AccessKey: get("FOLIO_S3_ACCESS_KEY"),
				SecretKey: get("FOLIO_S3_SECRET_KEY"),
				UseSSL:    true,
				URLTTL:    DefaultURLTTL,
			},
		},
	}

	if raw := get("FOLIO_TEASER_CAP"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: FOLIO_TEASER_CAP=%q", ErrInvalidValue, raw)
		}
		cfg.TeaserCap = n
	}

	level, err := ParseLevel(get("FOLIO_LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if raw := get("FOLIO_S3_USE_SSL"); raw != "" {
		useSSL, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: FOLIO_S3_USE_SSL=%q", ErrInvalidValue, raw)
		}
		cfg.Images.S3.UseSSL = useSSL
	}

	if raw := get("FOLIO_S3_URL_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return nil, fmt.Errorf("%w: FOLIO_S3_URL_TTL=%q", ErrInvalidValue, raw)
		}
		cfg.Images.S3.URLTTL = ttl
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return cfg, nil
}

func ParseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, raw)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
