package migration

import (
	"context"
	"errors"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// Migrators are applied in order. The index plus one is the version recorded in the migrations
// table. NOTE: only append to this list.
var migrators = []func(context.Context) error{
	migrate0001,
	migrate0002,
}

func Migrate(ctx context.Context) error {
	db := xcontext.DB(ctx)
	if err := db.AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	var last entity.Migration
	err := db.Order("version DESC").Take(&last).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	for i := last.Version; i < len(migrators); i++ {
		version := i + 1
		xcontext.Logger(ctx).Infof("Applying migration %04d", version)

		if err := migrators[i](ctx); err != nil {
			return err
		}

		if err := db.Create(&entity.Migration{Version: version}).Error; err != nil {
			return err
		}
	}

	return nil
}

// AutoMigrate creates every table with its latest schema. When it is called, no need to call
// Migrate.
func AutoMigrate(ctx context.Context) error {
	return entity.MigrateTable(ctx)
}
