package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/socialharmony/backend/config"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/logger"
	"github.com/socialharmony/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func MockConfigs() config.Configs {
	return config.Configs{
		Env:      "test",
		LogLevel: "silence",
		Chain: config.ChainConfigs{
			Name:            "harmony-testnet",
			ChainID:         ChainID.Int64(),
			Decimals:        18,
			TokenAddress:    TokenAddress.Hex(),
			RegistryAddress: RegistryAddress.Hex(),
			ReceiptTimeout:  5 * time.Second,
		},
		Kafka: config.KafkaConfigs{
			Topic: "game_activity",
		},
		Store: config.StoreConfigs{
			Backend:       config.StoreBackendDatabase,
			SchemaVersion: 1,
		},
		Metadata: config.MetadataConfigs{
			Gateways: []string{"https://ipfs.example"},
		},
	}
}

// MockContext returns a context carrying test configs, a silent logger and a private in-memory
// sqlite database with every table migrated.
func MockContext() context.Context {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, MockConfigs())
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.SILENCE))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// WithConfigs updates the configs carried by ctx.
func WithConfigs(ctx context.Context, update func(cfg *config.Configs)) context.Context {
	cfg := xcontext.Configs(ctx)
	update(&cfg)
	return xcontext.WithConfigs(ctx, cfg)
}
