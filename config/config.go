package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string
	PostgresTimeZone string

	// Merchant identity shared with the payment gateway. All signatures are
	// keyed by MerchantSecret; an absent secret is a startup failure, never
	// an empty-string fallback.
	MerchantLogin  string
	MerchantDomain string
	MerchantSecret string

	// PublicBaseURL is the only source for return/callback URLs. Deriving
	// them from client-supplied Origin/Referer headers is an open-redirect
	// and callback-hijack risk.
	PublicBaseURL string

	TelegramBotToken string
	TelegramChatID   string

	SMTPHost string
	SMTPPort string
	SMTPUser string
	SMTPPass string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8090"),
		PostgresUser:     os.Getenv("POSTGRES_USER"),
		PostgresPassword: os.Getenv("POSTGRES_PASSWORD"),
		PostgresDB:       os.Getenv("POSTGRES_DB"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		PostgresTimeZone: getEnv("POSTGRES_TIMEZONE", "Europe/Kyiv"),
		MerchantLogin:    os.Getenv("WAYFORPAY_MERCHANT_LOGIN"),
		MerchantDomain:   os.Getenv("WAYFORPAY_MERCHANT_DOMAIN"),
		MerchantSecret:   os.Getenv("WAYFORPAY_MERCHANT_SECRET"),
		PublicBaseURL:    strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
	}

	if cfg.PostgresUser == "" || cfg.PostgresPassword == "" || cfg.PostgresDB == "" {
		return nil, fmt.Errorf("missing required database environment variables")
	}
	if cfg.MerchantLogin == "" || cfg.MerchantDomain == "" || cfg.MerchantSecret == "" || cfg.PublicBaseURL == "" {
		return nil, fmt.Errorf("missing required merchant environment variables")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
