package config_test

import (
	"bytes"
	"log"
	"os"
	"testing"

	"course-payment-service/config"

	"github.com/stretchr/testify/assert"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "app")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "course")
	t.Setenv("WAYFORPAY_MERCHANT_LOGIN", "test_merch_n1")
	t.Setenv("WAYFORPAY_MERCHANT_DOMAIN", "www.market.ua")
	t.Setenv("WAYFORPAY_MERCHANT_SECRET", "flk3409refn54t54t*FNJRET")
	t.Setenv("PUBLIC_BASE_URL", "https://course.example.com/")
}

func TestLoadConfig_Success(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, "test_merch_n1", cfg.MerchantLogin)
	// trailing slash is stripped so URL concatenation stays clean
	assert.Equal(t, "https://course.example.com", cfg.PublicBaseURL)
	assert.Equal(t, "8090", cfg.Port)
}

func TestLoadConfig_LogsWhenDotenvMissing(t *testing.T) {
	setRequiredEnv(t)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	_, err := config.LoadConfig()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No .env file found, using system environment variables")
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("WAYFORPAY_MERCHANT_SECRET", "")

	cfg, err := config.LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_MissingBaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PUBLIC_BASE_URL", "")

	cfg, err := config.LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
