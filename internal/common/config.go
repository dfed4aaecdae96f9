package common

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	HTTPPort           int
	MetricsPort        int
	OTLPEndpoint       string
	ServiceName        string
	RecaptchaSecret    string
	RecaptchaVerifyURL string
	MailRelayURL       string
	MailRelayAPIKey    string
	FromEmail          string
	FromName           string
	OwnerEmail         string
	BusinessPhone      string
	LogoPath           string
	GeocodeBaseURL     string
	GeocodeUserAgent   string
}

func LoadConfig(service string) (*Config, error) {
	cfg := &Config{ServiceName: service}

	httpPort, err := getEnvInt("HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.HTTPPort = httpPort

	metricsPort, err := getEnvInt("METRICS_PORT", httpPort+1000)
	if err != nil {
		return nil, err
	}
	cfg.MetricsPort = metricsPort

	cfg.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")

	cfg.RecaptchaSecret = os.Getenv("RECAPTCHA_SECRET_KEY")
	cfg.RecaptchaVerifyURL = getEnv("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")

	cfg.MailRelayURL = getEnv("MAIL_RELAY_URL", "")
	cfg.MailRelayAPIKey = os.Getenv("MAIL_RELAY_API_KEY")
	cfg.FromEmail = getEnv("FROM_EMAIL", "inquiries@memoriza-events.com")
	cfg.FromName = getEnv("FROM_NAME", "Memoriza Events Management")
	cfg.OwnerEmail = getEnv("OWNER_EMAIL", cfg.FromEmail)
	cfg.BusinessPhone = getEnv("BUSINESS_PHONE", "+63 912 345 6789")
	cfg.LogoPath = getEnv("LOGO_PATH", "public/logo.png")

	cfg.GeocodeBaseURL = getEnv("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org")
	cfg.GeocodeUserAgent = getEnv("GEOCODE_USER_AGENT", "Memoriza Events Website (inquiries@memoriza-events.com)")

	return cfg, nil
}

// ValidateOutbound checks the credentials the inquiry path cannot run without.
func (c *Config) ValidateOutbound() error {
	if c.RecaptchaSecret == "" {
		return errors.New("RECAPTCHA_SECRET_KEY must be provided")
	}
	if c.MailRelayURL == "" {
		return errors.New("MAIL_RELAY_URL must be provided")
	}
	if c.MailRelayAPIKey == "" {
		return errors.New("MAIL_RELAY_API_KEY must be provided")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid value for %s: %w", key, err)
		}
		return parsed, nil
	}
	return fallback, nil
}
