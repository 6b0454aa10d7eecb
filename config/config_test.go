package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.AppPort)
	assert.Equal(t, "doctors_portal", cfg.DatabaseName)
	assert.Equal(t, time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 5*time.Minute, cfg.RoleCacheTTL)
	assert.Equal(t, "Dec 4, 2022", cfg.DefaultAvailabilityDate)
	assert.False(t, cfg.EmailQueueEnabled)
	assert.False(t, IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("EMAIL_QUEUE_ENABLED", "true")
	t.Setenv("DEFAULT_AVAILABILITY_DATE", "Jan 1, 2023")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
	assert.True(t, cfg.EmailQueueEnabled)
	assert.Equal(t, "Jan 1, 2023", cfg.DefaultAvailabilityDate)
	assert.True(t, IsProduction())
}
