package domain

import (
	"encoding/json"
	"testing"

	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/stretchr/testify/require"
)

func Test_snapshotDomain_GetSnapshot(t *testing.T) {
	f := newFixture(t)
	d := NewSnapshotDomain(f.viewStore)

	_, err := d.GetSnapshot(f.ctx, &model.GetSnapshotRequest{Kind: "games"})
	require.True(t, errorx.Is(err, errorx.NotFound))

	games, err := f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{})
	require.NoError(t, err)

	resp, err := d.GetSnapshot(f.ctx, &model.GetSnapshotRequest{Kind: "games"})
	require.NoError(t, err)
	require.Equal(t, "games", resp.Kind)
	require.Equal(t, storeKeyAll, resp.Key)
	require.Equal(t, 1, resp.SchemaVersion)

	var stored []model.Game
	require.NoError(t, json.Unmarshal(resp.Data, &stored))
	require.Equal(t, games.Games, stored)

	_, err = d.GetSnapshot(f.ctx, &model.GetSnapshotRequest{Kind: "everything"})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = NewSnapshotDomain(nil).GetSnapshot(f.ctx, &model.GetSnapshotRequest{Kind: "games"})
	require.True(t, errorx.Is(err, errorx.Unavailable))
}
