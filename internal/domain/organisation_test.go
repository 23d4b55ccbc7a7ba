package domain

import (
	"testing"

	"github.com/socialharmony/backend/internal/entity"
	"github.com/socialharmony/backend/internal/model"
	"github.com/socialharmony/backend/internal/repository"
	"github.com/socialharmony/backend/pkg/errorx"
	"github.com/socialharmony/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_organisationDomain_GetOrganisations(t *testing.T) {
	f := newFixture(t)

	resp, err := f.organisationDomain.GetOrganisations(f.ctx, &model.GetOrganisationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Organisations, 2)

	first := resp.Organisations[0]
	require.Equal(t, "1", first.ID)
	require.Equal(t, "Clean Water", first.Name)
	require.Equal(t, "https://water.example", first.Website)
	require.Equal(t, []string{"https://meta.example/img/water-1.png"}, first.Images)
	require.Equal(t, testutil.OrgOwner1.Hex(), first.Owner)

	// The second document is served through the ipfs gateway and keeps unknown fields.
	second := resp.Organisations[1]
	require.Equal(t, "2", second.ID)
	require.Equal(t, "Open Books", second.Name)
	require.Equal(t, "education", second.Extra["category"])

	stored, err := repository.Load[[]model.Organisation](f.ctx, f.viewStore, entity.ViewKindCharities, storeKeyAll)
	require.NoError(t, err)
	require.Equal(t, "Open Books", stored[1].Name)
}

func Test_organisationDomain_GetOrganisations_KeepsRegistryOrder(t *testing.T) {
	f := newFixture(t)
	f.chain.Organisations[0], f.chain.Organisations[1] = f.chain.Organisations[1], f.chain.Organisations[0]

	resp, err := f.organisationDomain.GetOrganisations(f.ctx, &model.GetOrganisationsRequest{})
	require.NoError(t, err)
	require.Equal(t, "2", resp.Organisations[0].ID)
	require.Equal(t, "1", resp.Organisations[1].ID)
}

func Test_organisationDomain_GetOrganisations_MetadataFailure(t *testing.T) {
	f := newFixture(t)
	delete(f.documents, "https://ipfs.example/ipfs/QmOrganisation2")

	_, err := f.organisationDomain.GetOrganisations(f.ctx, &model.GetOrganisationsRequest{})
	require.Error(t, err)
}

func Test_organisationDomain_GetOrganisation(t *testing.T) {
	f := newFixture(t)

	resp, err := f.organisationDomain.GetOrganisation(f.ctx, &model.GetOrganisationRequest{ID: "2"})
	require.NoError(t, err)
	require.Equal(t, "Open Books", resp.Organisation.Name)
	require.Equal(t, []string{testutil.PendingGame.Hex(), testutil.CancelledGame.Hex()}, gameIDs(resp.Games))

	_, err = f.organisationDomain.GetOrganisation(f.ctx, &model.GetOrganisationRequest{ID: "9"})
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = f.organisationDomain.GetOrganisation(f.ctx, &model.GetOrganisationRequest{ID: "abc"})
	require.True(t, errorx.Is(err, errorx.BadRequest))
}
