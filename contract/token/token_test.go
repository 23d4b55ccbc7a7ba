package token_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/socialharmony/backend/contract/token"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	chain := testutil.NewSampleChain()
	contract, err := token.NewToken(testutil.TokenAddress, chain)
	require.NoError(t, err)

	games, err := contract.GetGameAddresses(&bind.CallOpts{})
	require.NoError(t, err)
	require.Equal(t, []common.Address{
		testutil.ActiveGame,
		testutil.PendingGame,
		testutil.CompletedGame,
		testutil.CancelledGame,
	}, games)

	report, err := contract.GetGamesReporting(&bind.CallOpts{})
	require.NoError(t, err)
	require.Equal(t, testutil.ReportAddress, report)
}

func TestToken_NoCode(t *testing.T) {
	contract, err := token.NewToken(common.HexToAddress("0x1234"), testutil.NewSampleChain())
	require.NoError(t, err)

	_, err = contract.GetGameAddresses(&bind.CallOpts{})
	require.ErrorIs(t, err, bind.ErrNoCode)
}
