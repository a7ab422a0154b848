package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"APP_ADDR", "OPERATOR_PASSWORD", "SMTP_PORT", "METRICS_ENABLED", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, int64(20<<20), cfg.MaxUploadBytes)
	assert.False(t, cfg.AuthEnabled())
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9000")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_USE_TLS", "false")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	cfg := FromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.False(t, cfg.SMTPUseTLS)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
}

func TestValidate(t *testing.T) {
	base := Config{MaxBodyBytes: 2048, MaxUploadBytes: 4096, RateLimitPerMinute: 10, SMTPPort: 25, TokenTTL: time.Hour}
	require.NoError(t, base.Validate())

	withPassword := base
	withPassword.OperatorPassword = "pw"
	assert.Error(t, withPassword.Validate())
	withPassword.JWTSecret = "secret"
	assert.NoError(t, withPassword.Validate())

	prod := base
	prod.Environment = "production"
	assert.Error(t, prod.Validate())

	small := base
	small.MaxUploadBytes = 1024
	assert.Error(t, small.Validate())

	badPort := base
	badPort.SMTPPort = 0
	assert.Error(t, badPort.Validate())
}
