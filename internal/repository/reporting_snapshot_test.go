package repository

import (
	"testing"
	"time"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_reportingSnapshotRepository(t *testing.T) {
	testcases := []struct {
		name string
		repo ReportingSnapshotRepository
	}{
		{name: "database", repo: NewReportingSnapshotRepository()},
		{name: "redis", repo: NewRedisReportingSnapshotRepository(testutil.NewMemoryRedisClient())},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContext()
			base := time.Now().Add(-time.Hour)

			for i := 0; i < 3; i++ {
				snapshot := &entity.ReportingSnapshot{
					Base:          entity.Base{CreatedAt: base.Add(time.Duration(i) * time.Minute)},
					Chain:         "harmony-testnet",
					GamesPlayed:   i,
					Organisations: 2,
				}
				require.NoError(t, tt.repo.Create(ctx, snapshot))
				require.NotEmpty(t, snapshot.ID)
			}

			require.NoError(t, tt.repo.Create(ctx, &entity.ReportingSnapshot{Chain: "harmony"}))

			latest, err := tt.repo.GetLatest(ctx, "harmony-testnet", 2)
			require.NoError(t, err)
			require.Len(t, latest, 2)
			require.Equal(t, 2, latest[0].GamesPlayed)
			require.Equal(t, 1, latest[1].GamesPlayed)
		})
	}
}
