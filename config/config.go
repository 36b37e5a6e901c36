package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	StaticDir   string
	// Mail provider: "smtp" (default) or "resend"
	MailProvider string
	// SMTP Configuration (Brevo or Gmail app password)
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	// Resend Configuration
	ResendAPIKey string
	// Sender identity and owner inbox
	MailFromEmail string
	MailFromName  string
	OwnerEmail    string
	// Rate Limiting Configuration (form endpoints are public)
	RateLimitPerMinute int
	RateLimitBurst     int
	// Optional log file with rotation; empty means stdout only
	LogFile string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		FrontendURL:  strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		StaticDir:    getEnv("STATIC_DIR", "web/public"),
		MailProvider: strings.ToLower(getEnv("MAIL_PROVIDER", "smtp")),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		// Resend Configuration
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		// Sender identity
		MailFromEmail: getEnv("MAIL_FROM_EMAIL", "contact@soabango.com"),
		MailFromName:  getEnv("MAIL_FROM_NAME", "Soa Bango"),
		OwnerEmail:    getEnv("OWNER_EMAIL", "contact@soabango.com"),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 10), // 10 form submissions per minute per IP
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 5),
		LogFile:            getEnv("LOG_FILE", ""),
	}

	// Surface misconfiguration at startup instead of on the first form
	// submission. Missing credentials are a warning only: dispatch degrades
	// to a per-call failure.
	switch cfg.MailProvider {
	case "smtp":
		if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			log.Println("WARNING: SMTP credentials missing. Mail dispatch will fail at call time.")
		}
	case "resend":
		if cfg.ResendAPIKey == "" {
			log.Println("WARNING: RESEND_API_KEY missing. Mail dispatch will fail at call time.")
		}
	default:
		log.Printf("WARNING: unknown MAIL_PROVIDER %q, falling back to smtp", cfg.MailProvider)
		cfg.MailProvider = "smtp"
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
