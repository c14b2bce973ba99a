package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./rentlink.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)

	// Token verification. Tokens are issued by the identity provider; this
	// service only verifies them.
	JWTSecret   string // Required: HS256 shared secret
	JWTIssuer   string // Optional: expected issuer claim
	JWTAudience string // Optional: expected audience claim

	// Invitation email delivery. MailerSend wins if an API key is set,
	// then SMTP if a host is set, otherwise emails are logged.
	MailerSendAPIKey string
	MailFromName     string
	MailFromEmail    string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	FrontendURL      string // Base URL for invitation acceptance links
}

func LoadConfig() Config {
	cfg := Config{
		DatabaseFile:         getEnvOrDefault("RENTLINK_DATABASE_FILE", "rentlink.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),

		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),

		MailerSendAPIKey: os.Getenv("MAILERSEND_API_KEY"),
		MailFromName:     getEnvOrDefault("MAIL_FROM_NAME", "RentLink"),
		MailFromEmail:    getEnvOrDefault("MAIL_FROM_EMAIL", "no-reply@rentlink.app"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvIntOrDefault("SMTP_PORT", 587),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		FrontendURL:      getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
