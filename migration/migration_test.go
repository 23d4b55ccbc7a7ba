package migration

import (
	"testing"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/socialharmony/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	ctx := testutil.MockContext()

	require.NoError(t, Migrate(ctx))
	// Applying twice is a no-op.
	require.NoError(t, Migrate(ctx))

	var versions []entity.Migration
	require.NoError(t, xcontext.DB(ctx).Order("version").Find(&versions).Error)
	require.Len(t, versions, len(migrators))
	require.Equal(t, 1, versions[0].Version)

	require.True(t, xcontext.DB(ctx).Migrator().HasTable(&entity.ViewRecord{}))
	require.True(t, xcontext.DB(ctx).Migrator().HasTable(&entity.ReportingSnapshot{}))
}
