package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/socialharmony/backend/config"
	"github.com/socialharmony/backend/internal/domain"
	"github.com/socialharmony/backend/internal/domain/blockchain"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/migration"
	"github.com/socialharmony/backend/pkg/api"
	"github.com/socialharmony/backend/pkg/blockchain/eth"
	"github.com/socialharmony/backend/pkg/kafka"
	"github.com/socialharmony/backend/pkg/logger"
	"github.com/socialharmony/backend/pkg/pubsub"
	"github.com/socialharmony/backend/pkg/router"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/socialharmony/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	server *http.Server
	router *router.Router

	ethClient   eth.EthClient
	accessor    blockchain.Accessor
	redisClient xredis.Client
	publisher   pubsub.Publisher
	provider    wallet.Provider

	viewStore    repository.ViewStore
	snapshotRepo repository.ReportingSnapshotRepository

	walletDomain       domain.WalletDomain
	gameDomain         domain.GameDomain
	organisationDomain domain.OrganisationDomain
	reportingDomain    domain.ReportingDomain
	snapshotDomain     domain.SnapshotDomain
}

func (s *srv) before(cctx *cli.Context) error {
	cfg, err := loadConfig(cctx.String("config"), cctx.String("env"))
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithConfigs(cctx.Context, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(logger.ParseLevel(cfg.LogLevel)))
	s.ctx = xcontext.WithHTTPClient(s.ctx, &http.Client{Timeout: 30 * time.Second})
	return nil
}

func (s *srv) after(*cli.Context) error {
	if s.ethClient != nil {
		s.ethClient.Close()
	}

	if s.publisher != nil {
		if err := s.publisher.Stop(s.ctx); err != nil {
			xcontext.Logger(s.ctx).Warnf("Cannot stop publisher: %v", err)
		}
	}

	return nil
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	}

	var dialector gorm.Dialector
	if cfg.Host != "" {
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.ConnectionString(),
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		})
	} else {
		name := cfg.Database
		if name == "" {
			name = "socialharmony.db"
		}
		dialector = sqlite.Open(name)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		panic(err)
	}

	return db
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Silent
	}
}

func (s *srv) migrateDB() {
	if err := migration.Migrate(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadDatabase() {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

// loadStore selects the view store and the reporting history backend. Both stay nil interfaces
// when no backend is configured.
func (s *srv) loadStore() {
	switch xcontext.Configs(s.ctx).Store.Backend {
	case config.StoreBackendDatabase:
		s.loadDatabase()
		s.viewStore = repository.NewViewStore()
		s.snapshotRepo = repository.NewReportingSnapshotRepository()

	case config.StoreBackendRedis:
		s.loadRedisClient()
		s.viewStore = repository.NewRedisViewStore(s.redisClient)
		s.snapshotRepo = repository.NewRedisReportingSnapshotRepository(s.redisClient)

	case config.StoreBackendNone:

	default:
		panic(errors.New("unknown store backend " + string(xcontext.Configs(s.ctx).Store.Backend)))
	}
}

func (s *srv) loadPublisher() {
	cfg := xcontext.Configs(s.ctx).Kafka
	if !cfg.Enabled() {
		return
	}

	var err error
	s.publisher, err = kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadEthClient() {
	s.ethClient = eth.NewEthClients(s.ctx, xcontext.Configs(s.ctx).Chain)
	s.ethClient.Start(s.ctx)
	s.accessor = blockchain.NewAccessor(s.ethClient)
}

// loadWalletProvider prefers the keystore, then a raw private key, then a key derived from the
// secret and nonce. Without any of them, participation commands fail with Unauthenticated.
func (s *srv) loadWalletProvider() {
	cfg := xcontext.Configs(s.ctx).Wallet
	switch {
	case cfg.KeystoreDir != "":
		s.provider = wallet.NewKeystoreProvider(cfg.KeystoreDir, cfg.Account, cfg.Passphrase)

	case cfg.PrivateKey != "":
		provider, err := wallet.NewHexKeyProvider(cfg.PrivateKey)
		if err != nil {
			panic(err)
		}
		s.provider = provider

	case cfg.Secret != "":
		provider, err := wallet.NewDerivedKeyProvider(cfg.Secret, cfg.Nonce)
		if err != nil {
			panic(err)
		}
		s.provider = provider
	}
}

func (s *srv) loadDomains() {
	apiGenerator := api.NewGenerator()

	s.walletDomain = domain.NewWalletDomain(s.accessor, s.provider, s.viewStore)
	s.gameDomain = domain.NewGameDomain(
		s.accessor, apiGenerator, s.provider, s.publisher, s.viewStore)
	s.organisationDomain = domain.NewOrganisationDomain(
		s.accessor, apiGenerator, s.gameDomain, s.viewStore)
	s.reportingDomain = domain.NewReportingDomain(
		s.accessor, s.organisationDomain, s.gameDomain, s.snapshotRepo, s.viewStore)
	s.snapshotDomain = domain.NewSnapshotDomain(s.viewStore)
}

// loadChain loads everything the query and participation commands need.
func (s *srv) loadChain() {
	s.loadStore()
	s.loadPublisher()
	s.loadEthClient()
	s.loadWalletProvider()
	s.loadDomains()
}
