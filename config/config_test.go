package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults from flags", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(flags)
		require.NoError(t, flags.Parse(nil))

		cfg, err := Load(flags)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Throttle.SupportPollInterval)
		assert.Equal(t, 10*time.Second, cfg.Throttle.StatsPollInterval)
		assert.True(t, decimal.NewFromInt(5).Equal(cfg.Payments.MinWithdrawal))
	})

	t.Run("flags override defaults", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(flags)
		require.NoError(t, flags.Parse([]string{"-a", ":9000", "--api-url", "http://api:5000"}))

		cfg, err := Load(flags)
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.Server.Addr)
		assert.Equal(t, "http://api:5000", cfg.Backend.BaseURL)
	})

	t.Run("env overrides flags", func(t *testing.T) {
		t.Setenv("SERVER_ADDRESS", ":7000")
		t.Setenv("MIN_WITHDRAWAL", "12.5")
		t.Setenv("SUPPORT_POLL_INTERVAL", "5s")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		RegisterFlags(flags)
		require.NoError(t, flags.Parse([]string{"-a", ":9000"}))

		cfg, err := Load(flags)
		require.NoError(t, err)

		assert.Equal(t, ":7000", cfg.Server.Addr)
		assert.Equal(t, "12.5", cfg.Payments.MinWithdrawal.String())
		assert.Equal(t, 5*time.Second, cfg.Throttle.SupportPollInterval)
	})

	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("MIN_WITHDRAWAL", "lots")

		_, err := Load(nil)
		assert.Error(t, err)
	})
}
