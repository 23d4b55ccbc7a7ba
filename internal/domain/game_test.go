package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/socialharmony/backend/internal/domain/gameutil"
	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/pubsub"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/stretchr/testify/require"
)

func gameIDs(games []model.Game) []string {
	ids := []string{}
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}

func Test_gameDomain_GetGames(t *testing.T) {
	f := newFixture(t)

	resp, err := f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{
		testutil.ActiveGame.Hex(),
		testutil.PendingGame.Hex(),
		testutil.CompletedGame.Hex(),
		testutil.CancelledGame.Hex(),
	}, gameIDs(resp.Games))

	active := resp.Games[0]
	require.Equal(t, "Water Raffle", active.Title)
	require.Equal(t, "Clean Water", active.OrganisationName)
	require.Equal(t, testutil.OrgOwner1.Hex(), active.Organisation)
	require.Equal(t, gameutil.StatusActive, active.Status)
	require.Equal(t, "1", active.Entries)
	require.Equal(t, "10", active.TotalParticipants)
	require.Equal(t, "1", active.CostPerEntry)
	require.Equal(t, "10", active.Goal)
	require.Equal(t, "2", active.TotalEndorsers)
	require.Equal(t, "2", active.CurrentEndorsers)
	require.True(t, active.Endorsed)

	pending := resp.Games[1]
	require.Equal(t, gameutil.StatusPending, pending.Status)
	require.Equal(t, "0.5", pending.CostPerEntry)
	require.Equal(t, "2", pending.Goal)
	require.False(t, pending.Endorsed)
	require.Equal(t, "<p>Every ticket buys <b>one</b> book.</p>", pending.Story)

	require.Equal(t, gameutil.StatusCompleted, resp.Games[2].Status)
	// Cancelled wins over completed.
	require.Equal(t, gameutil.StatusCancelled, resp.Games[3].Status)

	stored, err := repository.Load[[]model.Game](f.ctx, f.viewStore, entity.ViewKindGames, storeKeyAll)
	require.NoError(t, err)
	require.Equal(t, resp.Games, stored)
}

func Test_gameDomain_GetGames_Filter(t *testing.T) {
	f := newFixture(t)

	resp, err := f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{Status: "pending"})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.PendingGame.Hex()}, gameIDs(resp.Games))

	resp, err = f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{
		Organisation: testutil.OrgOwner1.Hex(),
	})
	require.NoError(t, err)
	require.Equal(t, []string{testutil.ActiveGame.Hex(), testutil.CompletedGame.Hex()}, gameIDs(resp.Games))

	_, err = f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{Status: "unknown"})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{Organisation: "not-an-address"})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	// Filtered listings are not mirrored.
	_, err = repository.Load[[]model.Game](f.ctx, f.viewStore, entity.ViewKindGames, storeKeyAll)
	require.ErrorIs(t, err, repository.ErrViewNotFound)
}

func Test_gameDomain_GetGames_Failures(t *testing.T) {
	t.Run("contract call fails", func(t *testing.T) {
		f := newFixture(t)
		f.chain.FailMethods["endorsements"] = errors.New("rpc unavailable")

		_, err := f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{})
		require.ErrorContains(t, err, "rpc unavailable")
	})

	t.Run("metadata is missing", func(t *testing.T) {
		f := newFixture(t)
		delete(f.documents, "https://meta.example/games/3.json")

		_, err := f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{})
		require.ErrorContains(t, err, "status 404")
	})

	t.Run("backend is unavailable", func(t *testing.T) {
		f := newFixture(t)
		f.gameDomain.accessor = newAccessorWithError(errors.New("no healthy rpc"))

		_, err := f.gameDomain.GetGames(f.ctx, &model.GetGamesRequest{})
		require.ErrorContains(t, err, "no healthy rpc")
	})
}

func Test_gameDomain_GetGame(t *testing.T) {
	f := newFixture(t)

	resp, err := f.gameDomain.GetGame(f.ctx, &model.GetGameRequest{ID: testutil.PendingGame.Hex()})
	require.NoError(t, err)
	require.Equal(t, "Book Drive", resp.Game.Title)

	stored, err := repository.Load[model.Game](f.ctx, f.viewStore, entity.ViewKindGame, testutil.PendingGame.Hex())
	require.NoError(t, err)
	require.Equal(t, resp.Game, stored)

	_, err = f.gameDomain.GetGame(f.ctx, &model.GetGameRequest{ID: "0x00000000000000000000000000000000000099aa"})
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = f.gameDomain.GetGame(f.ctx, &model.GetGameRequest{ID: "0x1234"})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = f.gameDomain.GetGame(f.ctx, &model.GetGameRequest{ID: "xyz"})
	require.True(t, errorx.Is(err, errorx.BadRequest))
}

func Test_gameDomain_Join(t *testing.T) {
	f := newFixture(t)

	before, err := f.gameDomain.GetGame(f.ctx, &model.GetGameRequest{ID: testutil.ActiveGame.Hex()})
	require.NoError(t, err)
	require.Equal(t, "1", before.Game.Entries)

	resp, session, err := f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{
		ID: testutil.ActiveGame.Hex(),
	})
	require.NoError(t, err)

	// Signed in on demand.
	require.True(t, session.Authorized)
	require.Equal(t, testutil.UserAddress, session.Address)

	// The returned game is read again after the transaction.
	require.Equal(t, "2", resp.Game.Entries)
	require.NotEmpty(t, resp.TxHash)
	require.NotEmpty(t, resp.Message)
	require.True(t, f.chain.Games[testutil.ActiveGame].Joined[testutil.UserAddress])
	require.Equal(t, "6000000000000000000", f.chain.Report.Sum.String())

	stored, err := repository.Load[model.Game](f.ctx, f.viewStore, entity.ViewKindGame, testutil.ActiveGame.Hex())
	require.NoError(t, err)
	require.Equal(t, "2", stored.Entries)

	require.Len(t, f.publisher.Published, 1)
	require.Equal(t, "game_activity", f.publisher.Published[0].Topic)
	var activity model.GameActivity
	require.NoError(t, json.Unmarshal(f.publisher.Published[0].Pack.Msg, &activity))
	require.Equal(t, ActionJoin, activity.Action)
	require.Equal(t, testutil.ActiveGame.Hex(), activity.Game)
	require.Equal(t, testutil.UserAddress.Hex(), activity.User)
	require.Equal(t, resp.TxHash, activity.TxHash)

	// Joining twice is rejected with a dedicated code.
	_, session, err = f.gameDomain.Join(f.ctx, session, &model.JoinGameRequest{ID: testutil.ActiveGame.Hex()})
	require.True(t, errorx.Is(err, errorx.AlreadyJoined))
	require.True(t, session.Authorized)
	require.Len(t, f.publisher.Published, 1)
}

func Test_gameDomain_Join_Failures(t *testing.T) {
	t.Run("closed game", func(t *testing.T) {
		f := newFixture(t)

		_, _, err := f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{
			ID: testutil.CompletedGame.Hex(),
		})
		require.True(t, errorx.Is(err, errorx.GameClosed))
	})

	t.Run("no wallet", func(t *testing.T) {
		f := newFixture(t)
		f.gameDomain.provider = nil

		_, session, err := f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{
			ID: testutil.ActiveGame.Hex(),
		})
		require.True(t, errorx.Is(err, errorx.Unauthenticated))
		require.False(t, session.Authorized)
	})

	t.Run("invalid address", func(t *testing.T) {
		f := newFixture(t)

		_, _, err := f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{ID: "game"})
		require.True(t, errorx.Is(err, errorx.BadRequest))
	})

	t.Run("publisher failure does not fail the join", func(t *testing.T) {
		f := newFixture(t)
		f.publisher.PublishFunc = func(ctx context.Context, topic string, pack *pubsub.Pack) error {
			return errors.New("broker down")
		}

		resp, _, err := f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{
			ID: testutil.ActiveGame.Hex(),
		})
		require.NoError(t, err)
		require.Equal(t, "2", resp.Game.Entries)
	})

	t.Run("game not endorsed", func(t *testing.T) {
		f := newFixture(t)

		_, session, err := f.gameDomain.Join(f.ctx, wallet.Session{}, &model.JoinGameRequest{
			ID: testutil.PendingGame.Hex(),
		})
		require.True(t, errorx.Is(err, errorx.GameNotEndorsed))
		require.True(t, session.Authorized)
		require.False(t, f.chain.Games[testutil.PendingGame].Joined[testutil.UserAddress])
		require.Equal(t, "3", f.chain.Report.Count.String())
		require.Empty(t, f.publisher.Published)
	})
}

func Test_gameDomain_Endorse(t *testing.T) {
	f := newFixture(t)

	session, err := f.walletDomain.SignIn(f.ctx)
	require.NoError(t, err)

	resp, session, err := f.gameDomain.Endorse(f.ctx, session, &model.EndorseGameRequest{
		ID: testutil.PendingGame.Hex(),
	})
	require.NoError(t, err)
	require.Equal(t, "2", resp.Game.CurrentEndorsers)
	require.Equal(t, gameutil.StatusPending, resp.Game.Status)

	_, _, err = f.gameDomain.Endorse(f.ctx, session, &model.EndorseGameRequest{
		ID: testutil.PendingGame.Hex(),
	})
	require.True(t, errorx.Is(err, errorx.AlreadyEndorsed))

	// The last required endorsement activates the game.
	f.chain.SetGame(testutil.PendingGame, func(g *testutil.FakeGame) {
		g.Endorsers[common.HexToAddress("0xe3")] = true
	})
	game, err := f.gameDomain.GetGame(f.ctx, &model.GetGameRequest{ID: testutil.PendingGame.Hex()})
	require.NoError(t, err)
	require.Equal(t, gameutil.StatusActive, game.Game.Status)
	require.True(t, game.Game.Endorsed)
}
