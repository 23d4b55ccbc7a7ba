package migration

import (
	"context"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/xcontext"
)

func migrate0002(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(&entity.ReportingSnapshot{})
}
