package entity

import (
	"context"

	"github.com/socialharmony/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&Migration{},
		&ViewRecord{},
		&ReportingSnapshot{},
	)
}
