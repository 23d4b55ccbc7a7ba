package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/socialharmony/backend/config"
	"github.com/stretchr/testify/require"
)

func Test_loadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("", filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, int32(18), cfg.Chain.Decimals)
	require.Equal(t, int64(1666700000), cfg.Chain.ChainID)
	require.Equal(t, 1, cfg.Store.SchemaVersion)
	require.Equal(t, 2*time.Minute, cfg.Chain.ReceiptTimeout)
	require.Equal(t, config.StoreBackendNone, cfg.Store.Backend)
	require.False(t, cfg.Kafka.Enabled())
}

func Test_loadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
log_level = "debug"

[chain]
name = "harmony-mainnet"
chain_id = 1666600000
registry_address = "0x0000000000000000000000000000000000000001"

[store]
backend = "redis"
schema_version = 3
`), 0600))

	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_UNUSED=1\n"), 0600))

	t.Setenv("CHAIN_RPCS", "https://a.example, https://b.example,")
	t.Setenv("KAFKA_ADDRESS", "localhost:9092")

	cfg, err := loadConfig(configFile, envFile)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "harmony-mainnet", cfg.Chain.Name)
	require.Equal(t, int64(1666600000), cfg.Chain.ChainID)
	require.Equal(t, "0x0000000000000000000000000000000000000001", cfg.Chain.RegistryAddress)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Chain.Rpcs)
	require.Equal(t, config.StoreBackendRedis, cfg.Store.Backend)
	require.Equal(t, 3, cfg.Store.SchemaVersion)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, "1", os.Getenv("TEST_UNUSED"))
}
