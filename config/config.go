package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Database         DatabaseConfigs  `toml:"database"`
	ApiServer        APIServerConfigs `toml:"api_server"`
	PrometheusServer ServerConfigs    `toml:"prometheus_server"`
	Redis            RedisConfigs     `toml:"redis"`
	Kafka            KafkaConfigs     `toml:"kafka"`
	Chain            ChainConfigs     `toml:"chain"`
	Wallet           WalletConfigs    `toml:"wallet"`
	Store            StoreConfigs     `toml:"store"`
	Metadata         MetadataConfigs  `toml:"metadata"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	LogLevel string `toml:"log_level"`
}

func (d DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type APIServerConfigs struct {
	ServerConfigs
	AllowedOrigins []string `toml:"allowed_origins"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type KafkaConfigs struct {
	Addr     string `toml:"addr"`
	ClientID string `toml:"client_id"`
	Topic    string `toml:"topic"`
}

func (c KafkaConfigs) Enabled() bool {
	return c.Addr != ""
}

type ChainConfigs struct {
	Name    string   `toml:"name"`
	ChainID int64    `toml:"chain_id"`
	Rpcs    []string `toml:"rpcs"`

	// Native token decimals, used to convert on-chain fixed point amounts.
	Decimals int32 `toml:"decimals"`

	TokenAddress    string `toml:"token_address"`
	RegistryAddress string `toml:"registry_address"`

	UseExternalRPC             bool          `toml:"use_external_rpc"`
	RefreshConnectionFrequency time.Duration `toml:"refresh_connection_frequency"`
	ReceiptTimeout             time.Duration `toml:"receipt_timeout"`
}

type WalletConfigs struct {
	KeystoreDir string `toml:"keystore_dir"`
	Account     string `toml:"account"`
	Passphrase  string `toml:"passphrase"`

	// Used when no keystore is configured. The signing key is derived from the secret and nonce.
	PrivateKey string `toml:"private_key"`
	Secret     string `toml:"secret"`
	Nonce      string `toml:"nonce"`
}

type StoreBackend string

const (
	StoreBackendNone     StoreBackend = ""
	StoreBackendDatabase StoreBackend = "database"
	StoreBackendRedis    StoreBackend = "redis"
)

type StoreConfigs struct {
	Backend       StoreBackend `toml:"backend"`
	SchemaVersion int          `toml:"schema_version"`
}

type MetadataConfigs struct {
	Gateways []string `toml:"gateways"`
}
