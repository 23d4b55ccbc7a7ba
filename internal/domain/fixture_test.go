package domain

import (
	"context"
	"testing"

	"github.com/socialharmony/backend/internal/domain/blockchain"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/api"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/socialharmony/backend/pkg/wallet"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	ctx       context.Context
	chain     *testutil.FakeChain
	documents map[string]api.JSON
	accessor  blockchain.Accessor
	provider  *wallet.KeyProvider
	publisher *testutil.MockPublisher
	viewStore repository.ViewStore

	gameDomain         *gameDomain
	organisationDomain *organisationDomain
	reportingDomain    *reportingDomain
	walletDomain       *walletDomain
}

func newFixture(t *testing.T) *fixture {
	provider, err := wallet.NewHexKeyProvider(testutil.UserKey)
	require.NoError(t, err)

	f := &fixture{
		ctx:       testutil.MockContext(),
		chain:     testutil.NewSampleChain(),
		documents: testutil.SampleMetadata(),
		provider:  provider,
		publisher: &testutil.MockPublisher{},
		viewStore: repository.NewViewStore(),
	}

	f.accessor = blockchain.NewAccessor(&testutil.MockEthClient{Chain: f.chain})
	apiGenerator := api.MockJSONGenerator(f.documents)

	f.gameDomain = NewGameDomain(f.accessor, apiGenerator, f.provider, f.publisher, f.viewStore)
	f.organisationDomain = NewOrganisationDomain(f.accessor, apiGenerator, f.gameDomain, f.viewStore)
	f.reportingDomain = NewReportingDomain(
		f.accessor, f.organisationDomain, f.gameDomain, repository.NewReportingSnapshotRepository(), f.viewStore)
	f.walletDomain = NewWalletDomain(f.accessor, f.provider, f.viewStore)

	return f
}

func newAccessorWithError(err error) blockchain.Accessor {
	return blockchain.NewAccessor(&testutil.MockEthClient{Chain: testutil.NewFakeChain(), BackendErr: err})
}
