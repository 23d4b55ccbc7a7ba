package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/socialharmony/backend/config"
)

const (
	defaultDecimals       = 18
	defaultSchemaVersion  = 1
	defaultReceiptTimeout = 2 * time.Minute
)

// loadConfig reads the optional env file, then the optional TOML file. Environment variables
// override both.
func loadConfig(configFile, envFile string) (config.Configs, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return config.Configs{}, err
		}
	}

	cfg := config.Configs{
		Env:      "local",
		LogLevel: "info",
		ApiServer: config.APIServerConfigs{
			ServerConfigs:  config.ServerConfigs{Port: "8080"},
			AllowedOrigins: []string{"*"},
		},
		PrometheusServer: config.ServerConfigs{Port: "9090"},
		Kafka: config.KafkaConfigs{
			ClientID: "socialharmony",
			Topic:    "game_activity",
		},
		Chain: config.ChainConfigs{
			Name:    "harmony-testnet",
			ChainID: 1666700000,
			Rpcs:    []string{"https://api.s0.b.hmny.io"},
		},
		Metadata: config.MetadataConfigs{
			Gateways: []string{"https://ipfs.io"},
		},
	}

	if configFile != "" {
		if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
			return config.Configs{}, err
		}
	}

	cfg.Env = getEnv("ENV", cfg.Env)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.ApiServer.Host = getEnv("API_HOST", cfg.ApiServer.Host)
	cfg.ApiServer.Port = getEnv("API_PORT", cfg.ApiServer.Port)
	cfg.ApiServer.AllowedOrigins = getEnvList("API_ALLOWED_ORIGINS", cfg.ApiServer.AllowedOrigins)
	cfg.PrometheusServer.Port = getEnv("PROMETHEUS_PORT", cfg.PrometheusServer.Port)

	cfg.Database.Host = getEnv("MYSQL_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnv("MYSQL_PORT", cfg.Database.Port)
	cfg.Database.Database = getEnv("MYSQL_DATABASE", cfg.Database.Database)
	cfg.Database.User = getEnv("MYSQL_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("MYSQL_PASSWORD", cfg.Database.Password)

	cfg.Redis.Addr = getEnv("REDIS_ADDRESS", cfg.Redis.Addr)
	cfg.Kafka.Addr = getEnv("KAFKA_ADDRESS", cfg.Kafka.Addr)
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", cfg.Kafka.Topic)

	cfg.Chain.Name = getEnv("CHAIN_NAME", cfg.Chain.Name)
	cfg.Chain.ChainID = getEnvInt64("CHAIN_ID", cfg.Chain.ChainID)
	cfg.Chain.Rpcs = getEnvList("CHAIN_RPCS", cfg.Chain.Rpcs)
	cfg.Chain.TokenAddress = getEnv("TOKEN_ADDRESS", cfg.Chain.TokenAddress)
	cfg.Chain.RegistryAddress = getEnv("REGISTRY_ADDRESS", cfg.Chain.RegistryAddress)
	cfg.Chain.UseExternalRPC = getEnvBool("USE_EXTERNAL_RPC", cfg.Chain.UseExternalRPC)
	cfg.Chain.ReceiptTimeout = getEnvDuration("RECEIPT_TIMEOUT", cfg.Chain.ReceiptTimeout)

	cfg.Wallet.KeystoreDir = getEnv("WALLET_KEYSTORE_DIR", cfg.Wallet.KeystoreDir)
	cfg.Wallet.Account = getEnv("WALLET_ACCOUNT", cfg.Wallet.Account)
	cfg.Wallet.Passphrase = getEnv("WALLET_PASSPHRASE", cfg.Wallet.Passphrase)
	cfg.Wallet.PrivateKey = getEnv("WALLET_PRIVATE_KEY", cfg.Wallet.PrivateKey)
	cfg.Wallet.Secret = getEnv("WALLET_SECRET", cfg.Wallet.Secret)
	cfg.Wallet.Nonce = getEnv("WALLET_NONCE", cfg.Wallet.Nonce)

	cfg.Store.Backend = config.StoreBackend(getEnv("STORE_BACKEND", string(cfg.Store.Backend)))
	cfg.Metadata.Gateways = getEnvList("METADATA_GATEWAYS", cfg.Metadata.Gateways)

	if cfg.Chain.Decimals == 0 {
		cfg.Chain.Decimals = defaultDecimals
	}

	if cfg.Chain.ReceiptTimeout == 0 {
		cfg.Chain.ReceiptTimeout = defaultReceiptTimeout
	}

	if cfg.Store.SchemaVersion == 0 {
		cfg.Store.SchemaVersion = defaultSchemaVersion
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	result := []string{}
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}

func getEnvInt64(key string, fallback int64) int64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(err)
	}

	return i
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(err)
	}

	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}

	return d
}
