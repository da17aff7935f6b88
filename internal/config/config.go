package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CORSAllowedOrigins []string

	// Calendly (calendar provider) configuration
	CalendlyAPIKey     string
	CalendlyEventSlug  string
	CalendlyTimezone   string
	CalendlyBaseURL    string
	CalendlyBookingURL string

	// Square (point-of-sale provider) configuration
	SquareAccessToken        string
	SquareLocationID         string
	SquareServiceVariationID string
	SquareTeamMemberID       string
	SquareBaseURL            string
	SquareTimezoneOffset     string
	SquareSearchLimit        int

	// Provider directory cache
	DirectoryCacheTTL time.Duration
	RedisAddr         string
	RedisPassword     string

	// Contact form email relay
	EmailProvider         string
	SendGridAPIKey        string
	SendGridFromEmail     string
	SendGridFromName      string
	AWSRegion             string
	ContactFromEmail      string
	ContactFromName       string
	ContactRecipientEmail string
	ContactRateLimit      float64
	ContactRateBurst      int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		CalendlyAPIKey:     getEnv("CALENDLY_API_KEY", ""),
		CalendlyEventSlug:  getEnv("CALENDLY_EVENT_SLUG", ""),
		CalendlyTimezone:   getEnv("CALENDLY_TIMEZONE", "America/New_York"),
		CalendlyBaseURL:    getEnv("CALENDLY_BASE_URL", ""),
		CalendlyBookingURL: getEnv("CALENDLY_BOOKING_URL", "https://calendly.com/zboobraids"),

		SquareAccessToken:        getEnv("SQUARE_ACCESS_TOKEN", ""),
		SquareLocationID:         getEnv("SQUARE_LOCATION_ID", ""),
		SquareServiceVariationID: getEnv("SQUARE_SERVICE_VARIATION_ID", ""),
		SquareTeamMemberID:       getEnv("SQUARE_TEAM_MEMBER_ID", ""),
		SquareBaseURL:            getEnv("SQUARE_BASE_URL", ""),
		SquareTimezoneOffset:     getEnv("SQUARE_TIMEZONE_OFFSET", "-04:00"),
		SquareSearchLimit:        getEnvAsInt("SQUARE_SEARCH_LIMIT", 100),

		DirectoryCacheTTL: getEnvAsDuration("DIRECTORY_CACHE_TTL", 0),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),

		EmailProvider:         strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "stub"))),
		SendGridAPIKey:        getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail:     getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:      getEnv("SENDGRID_FROM_NAME", "ZBoo Braids"),
		AWSRegion:             getEnv("AWS_REGION", "us-east-1"),
		ContactFromEmail:      getEnv("CONTACT_FROM_EMAIL", "no-reply@zboobraids.com"),
		ContactFromName:       getEnv("CONTACT_FROM_NAME", "ZBoo Braids Contact Form"),
		ContactRecipientEmail: getEnv("CONTACT_RECIPIENT_EMAIL", ""),
		ContactRateLimit:      getEnvAsFloat("CONTACT_RATE_LIMIT", 1),
		ContactRateBurst:      getEnvAsInt("CONTACT_RATE_BURST", 5),
	}
}

// SquareConfigured reports whether the real point-of-sale path is enabled.
// All three of access token, location id, and service variation id must be set.
func (c *Config) SquareConfigured() bool {
	return c.SquareAccessToken != "" && c.SquareLocationID != "" && c.SquareServiceVariationID != ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
