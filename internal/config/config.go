package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "8080"
	defaultDatabaseURL     = "studiorent.db"
	defaultScrapingTimeout = "30s"
	defaultAuthRateRPS     = "1"
	defaultAuthRateBurst   = "5"
	defaultLogLevel        = "info"
	defaultLogFormat       = "console"
)

type Config struct {
	Port               string
	DatabaseURL        string
	JWTSecret          string
	JWTTTL             time.Duration
	ScrapingWebhookURL string
	ScrapingTimeout    time.Duration
	CORSOrigins        []string
	AuthRateRPS        float64
	AuthRateBurst      int
	LogLevel           string
	LogFormat          string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", defaultPort),
		DatabaseURL:        getEnv("DATABASE_URL", defaultDatabaseURL),
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET")),
		JWTTTL:             24 * time.Hour,
		ScrapingWebhookURL: strings.TrimSpace(os.Getenv("SCRAPING_WEBHOOK_URL")),
		LogLevel:           getEnv("LOG_LEVEL", defaultLogLevel),
		LogFormat:          getEnv("LOG_FORMAT", defaultLogFormat),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is empty")
	}

	var err error
	cfg.ScrapingTimeout, err = parseDurationEnv("SCRAPING_TIMEOUT", defaultScrapingTimeout)
	if err != nil {
		return nil, err
	}

	rps, err := strconv.ParseFloat(getEnv("AUTH_RATE_RPS", defaultAuthRateRPS), 64)
	if err != nil {
		return nil, fmt.Errorf("AUTH_RATE_RPS: %w", err)
	}
	cfg.AuthRateRPS = rps

	burst, err := strconv.Atoi(getEnv("AUTH_RATE_BURST", defaultAuthRateBurst))
	if err != nil {
		return nil, fmt.Errorf("AUTH_RATE_BURST: %w", err)
	}
	cfg.AuthRateBurst = burst

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, raw)
	}
	return d, nil
}
