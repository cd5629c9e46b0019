package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := InitConfig("")

	require.NoError(t, err)
	assert.Equal(t, "parkspot", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15, cfg.Reservation.DefaultTimeoutMinutes)
	assert.True(t, decimal.RequireFromString("10").Equal(cfg.Reservation.LateCancellationPenalty))
	assert.Equal(t, 60*time.Second, cfg.Reservation.SweepInterval)
	assert.Equal(t, 3, cfg.Notification.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Notification.RetryBackoff)
	assert.Empty(t, cfg.APIKeys)
}

func TestInitConfig_LoadsLocalEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "parking.env")
	content := "WALLET_INITIAL_BALANCE=250.50\nSCHEDULER_API_KEY=secret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv writes straight into the process environment
	t.Cleanup(func() {
		os.Unsetenv("WALLET_INITIAL_BALANCE")
		os.Unsetenv("SCHEDULER_API_KEY")
	})

	cfg, err := InitConfig(path)

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("250.50").Equal(cfg.Wallet.InitialBalance))
	assert.Equal(t, "secret", cfg.APIKeys["scheduler"])
}

func TestInitConfig_RejectsOutOfRangeTimeout(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("RESERVATION_DEFAULT_TIMEOUT_MINUTES", "90")

	cfg, err := InitConfig("")

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestInitConfig_RejectsInvalidDecimal(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("RESERVATION_LATE_PENALTY", "ten")

	_, err := InitConfig("")

	assert.ErrorContains(t, err, "RESERVATION_LATE_PENALTY")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PARKSPOT_SOME_KEY", "value")

	assert.Equal(t, "value", GetEnv("PARKSPOT_SOME_KEY", "default"))
	assert.Equal(t, "default", GetEnv("PARKSPOT_MISSING_KEY", "default"))
}
