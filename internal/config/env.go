package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret          string
	JWTExpiresHours    int
	ResetPassSecret    string
	ResetPassExpiresMn int
	ResetPassLink      string

	StripeSecretKey string

	PayPalBaseURL   string
	PayPalClientID  string
	PayPalSecret    string
	PayPalReturnURL string
	PayPalCancelURL string

	SpaceEndpoint  string
	SpaceAccessKey string
	SpaceSecretKey string
	SpaceBucket    string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// LoadEnv reads configuration from the environment, with an optional .env
// file for local development.
func LoadEnv() Env {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getEnv("DB_USER", "root"),
		DBPass: os.Getenv("DB_PASS"),
		DBHost: getEnv("DB_HOST", "127.0.0.1:3306"),
		DBName: getEnv("DB_NAME", "eventhub"),

		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-me"),
		JWTExpiresHours:    getEnvInt("JWT_EXPIRES_HOURS", 24),
		ResetPassSecret:    getEnv("RESET_PASS_SECRET", "reset-secret-change-me"),
		ResetPassExpiresMn: getEnvInt("RESET_PASS_EXPIRES_MINUTES", 15),
		ResetPassLink:      getEnv("RESET_PASS_LINK", "http://localhost:3000/reset-password"),

		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),

		PayPalBaseURL:   getEnv("PAYPAL_BASE_URL", "https://api-m.sandbox.paypal.com"),
		PayPalClientID:  os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalSecret:    os.Getenv("PAYPAL_SECRET"),
		PayPalReturnURL: getEnv("PAYPAL_RETURN_URL", "http://localhost:3000/payment/payment-success"),
		PayPalCancelURL: getEnv("PAYPAL_CANCEL_URL", "http://localhost:3000/payment/payment-cancel"),

		SpaceEndpoint:  os.Getenv("DO_SPACE_ENDPOINT"),
		SpaceAccessKey: os.Getenv("DO_SPACE_ACCESS_KEY"),
		SpaceSecretKey: os.Getenv("DO_SPACE_SECRET_KEY"),
		SpaceBucket:    os.Getenv("DO_SPACE_BUCKET"),

		SMTPHost: getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort: getEnvInt("SMTP_PORT", 587),
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getEnv("MAIL_FROM", "no-reply@eventhub.app"),
	}
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
