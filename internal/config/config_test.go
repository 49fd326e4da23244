package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Empty env values are treated as unset by viper, so this shields the
	// test from whatever the host environment defines.
	for _, key := range []string{"DB_HOST", "DB_PORT", "PORT", "JWT_ACCESS_EXPIRY", "NOTIFY_URLS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTAccessExpiry)
	assert.Empty(t, cfg.NotifyURLs)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("NOTIFY_URLS", "smtp://mail.internal:25/?from=noreply@x.com&to=ops@x.com, discord://token@channel")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	require.Len(t, cfg.NotifyURLs, 2)
	assert.Equal(t, "discord://token@channel", cfg.NotifyURLs[1])
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "pw", DBName: "platewatch", DBSSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost user=postgres password=pw dbname=platewatch port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Hour, parseDuration("garbage"))
	assert.Equal(t, 15*time.Minute, parseDuration("15m"))
}
