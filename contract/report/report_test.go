package report_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/socialharmony/backend/contract/report"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func TestReport_GetLatestReport(t *testing.T) {
	chain := testutil.NewSampleChain()
	contract, err := report.NewReport(testutil.ReportAddress, chain)
	require.NoError(t, err)

	latest, err := contract.GetLatestReport(&bind.CallOpts{})
	require.NoError(t, err)
	require.Equal(t, "5000000000000000000", latest.Sum.String())
	require.Equal(t, big.NewInt(3), latest.Count)
}
