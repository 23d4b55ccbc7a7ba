package game_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/socialharmony/backend/contract/game"
	"github.com/socialharmony/backend/pkg/ethutil"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTransactOpts(t *testing.T) *bind.TransactOpts {
	key, err := ethutil.ParsePrivateKey(testutil.UserKey)
	require.NoError(t, err)

	opts, err := bind.NewKeyedTransactorWithChainID(key, testutil.ChainID)
	require.NoError(t, err)
	opts.Context = context.Background()
	return opts
}

func TestGame_Read(t *testing.T) {
	contract, err := game.NewGame(testutil.PendingGame, testutil.NewSampleChain())
	require.NoError(t, err)

	opts := &bind.CallOpts{}
	uri, err := contract.MetadataURI(opts)
	require.NoError(t, err)
	require.Equal(t, "ipfs://QmGame2", uri)

	owner, err := contract.Owner(opts)
	require.NoError(t, err)
	require.Equal(t, testutil.OrgOwner2, owner)

	cancelled, err := contract.IsGameCancelled(opts)
	require.NoError(t, err)
	require.False(t, cancelled)

	price, err := contract.PricePerRound(opts)
	require.NoError(t, err)
	require.Equal(t, "500000000000000000", price.String())

	required, err := contract.RequiredEndorsers(opts)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(3), required)

	endorsements, err := contract.Endorsements(opts)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), endorsements)
}

func TestGame_Join(t *testing.T) {
	ctx := context.Background()
	chain := testutil.NewSampleChain()
	contract, err := game.NewGame(testutil.ActiveGame, chain)
	require.NoError(t, err)

	opts := newTransactOpts(t)
	opts.Value, err = contract.PricePerRound(&bind.CallOpts{})
	require.NoError(t, err)

	tx, err := contract.Join(opts)
	require.NoError(t, err)

	receipt, err := bind.WaitMined(ctx, chain, tx)
	require.NoError(t, err)
	require.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)

	entries, err := contract.TotalParticipants(&bind.CallOpts{})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), entries)

	_, err = contract.Join(opts)
	require.ErrorContains(t, err, "already joined")
}

func TestGame_Endorse(t *testing.T) {
	chain := testutil.NewSampleChain()
	contract, err := game.NewGame(testutil.PendingGame, chain)
	require.NoError(t, err)

	tx, err := contract.Endorse(newTransactOpts(t))
	require.NoError(t, err)

	_, err = bind.WaitMined(context.Background(), chain, tx)
	require.NoError(t, err)

	endorsements, err := contract.Endorsements(&bind.CallOpts{})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(2), endorsements)
}
