package types

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
rpc: http://localhost:8899
ws_rpc: ws://localhost:8900
commitment: finalized
confirm_timeout: 15s
`), 0o600))

	t.Setenv("NFT_COLLECTION_SKIP_PREFLIGHT", "true")
	t.Setenv("NFT_COLLECTION_CACHE_TTL", "2s")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8899", cfg.RPC)
	assert.Equal(t, "ws://localhost:8900", cfg.WSRPC)
	assert.Equal(t, "finalized", cfg.Commitment)
	assert.Equal(t, 15*time.Second, cfg.ConfirmTimeout)
	assert.True(t, cfg.SkipPreflight)
	assert.Equal(t, 2*time.Second, cfg.CacheTTL)
	assert.Equal(t, DefaultConfig.LogLevel, cfg.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig.RPC, cfg.RPC)
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty rpc", func(c *Config) { c.RPC = "" }},
		{"bad commitment", func(c *Config) { c.Commitment = "max" }},
		{"zero timeout", func(c *Config) { c.ConfirmTimeout = 0 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
